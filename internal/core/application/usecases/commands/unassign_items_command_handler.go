package commands

import (
	"context"
	"errors"

	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// UnassignItemsCommandHandler returns items to the shared pool. Unknown
// identifiers and items already in the pool are skipped silently; the
// command fails only when no requested item exists at all.
type UnassignItemsCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewUnassignItemsCommandHandler creates a handler for returning items to
// the pool.
func NewUnassignItemsCommandHandler(uowFactory ItemUoWFactory) UnassignItemsCommandHandler {
	return UnassignItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unassignment command and reports how many items
// actually moved.
func (h *UnassignItemsCommandHandler) Handle(ctx context.Context, cmd UnassignItemsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	items, err := itemRepo.GetByIDsForUpdate(ctx, cmd.ItemIDs())
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, errs.NewObjectNotFoundErrorWithCause("item_ids", cmd.ItemIDs(),
			errors.New("none of the requested items exist"))
	}

	moved := 0
	for _, item := range items {
		if item.Location().IsPool() {
			continue
		}
		item.ReturnToPool()
		if err = itemRepo.Update(ctx, item); err != nil {
			return 0, err
		}
		moved++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return moved, nil
}
