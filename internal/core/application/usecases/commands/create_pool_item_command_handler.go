package commands

import (
	"context"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
)

// CreatePoolItemCommandHandler handles pool item intake.
type CreatePoolItemCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewCreatePoolItemCommandHandler creates a handler for pool item intake.
func NewCreatePoolItemCommandHandler(uowFactory ItemUoWFactory) CreatePoolItemCommandHandler {
	return CreatePoolItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command.
func (h *CreatePoolItemCommandHandler) Handle(ctx context.Context, cmd CreatePoolItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := handlingunit.NewPoolItem(
		cmd.ItemID(), cmd.SKU(), cmd.Name(), cmd.Qty(), cmd.Barcode(),
		handlingunit.Attributes{
			Category: cmd.Category(),
			LengthCm: cmd.LengthCm(),
			WidthCm:  cmd.WidthCm(),
			HeightCm: cmd.HeightCm(),
			WeightG:  cmd.WeightG(),
		})
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
