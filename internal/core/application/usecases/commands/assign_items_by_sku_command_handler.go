package commands

import (
	"context"
	"sort"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// AssignItemsBySKUCommandHandler moves pool items onto a handling unit by
// SKU. The operation is all-or-nothing: when any requested SKU has no pool
// item left, nothing moves and the missing SKUs are reported, so two
// stations racing for the same stock can never split a request between
// them. Both the unit row and the candidate pool rows are locked for the
// duration of the transaction.
type AssignItemsBySKUCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewAssignItemsBySKUCommandHandler creates a handler for pool-to-unit
// assignment.
func NewAssignItemsBySKUCommandHandler(uowFactory PackingUoWFactory) AssignItemsBySKUCommandHandler {
	return AssignItemsBySKUCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
func (h *AssignItemsBySKUCommandHandler) Handle(ctx context.Context, cmd AssignItemsBySKUCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	huRepo := uow.HandlingUnitRepository()
	hu, err := huRepo.GetByCodeForUpdate(ctx, cmd.HUCode())
	if err != nil {
		return err
	}

	items, err := uow.ItemRepository().GetPoolBySKUsForUpdate(ctx, cmd.SKUs())
	if err != nil {
		return err
	}

	found := make(map[string]struct{}, len(items))
	for _, item := range items {
		found[item.SKU()] = struct{}{}
	}
	var missing []string
	for _, sku := range cmd.SKUs() {
		if _, ok := found[sku]; !ok {
			missing = append(missing, sku)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errs.NewCodeConflictErrorWithDetails("missing_skus", cmd.HUCode(), missing)
	}

	if err = hu.AttachItems(items, cmd.AutoLine(), time.Now().UTC()); err != nil {
		return err
	}

	if err = huRepo.Update(ctx, hu); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
