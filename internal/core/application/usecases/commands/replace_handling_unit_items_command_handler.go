package commands

import (
	"context"
	"errors"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// ReplaceHandlingUnitItemsCommandHandler rebuilds a handling unit from an
// upstream manifest. Re-running the same manifest converges to the same
// state: existing lines are always dropped before the new ones are written,
// and the workflow resets to ReadyForPacking.
type ReplaceHandlingUnitItemsCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewReplaceHandlingUnitItemsCommandHandler creates a handler for the
// full-replace flow.
func NewReplaceHandlingUnitItemsCommandHandler(uowFactory PackingUoWFactory) ReplaceHandlingUnitItemsCommandHandler {
	return ReplaceHandlingUnitItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the full-replace command inside one transaction. Either
// the whole manifest lands or nothing changes.
func (h *ReplaceHandlingUnitItemsCommandHandler) Handle(ctx context.Context, cmd ReplaceHandlingUnitItemsCommand) error {
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

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return err
	}

	now := time.Now().UTC()
	huRepo := uow.HandlingUnitRepository()

	hu, err := huRepo.GetByCodeForUpdate(ctx, cmd.HUCode())
	created := false
	switch {
	case err == nil:
		if err = uow.ItemRepository().RemoveByHandlingUnit(ctx, hu.ID()); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		hu, err = handlingunit.NewHandlingUnit(cmd.HandlingUnitID(), cmd.HUCode(), cmd.ClientID(), now)
		if err != nil {
			return err
		}
		created = true
	default:
		return err
	}

	lines := make([]*handlingunit.Item, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		line, lineErr := handlingunit.NewLineItem(
			kernel.NewUUID(), hu.ID(), spec.LineNo,
			spec.SKU, spec.Name, spec.Qty, spec.Barcode,
			handlingunit.Attributes{
				Category: spec.Category,
				LengthCm: spec.LengthCm,
				WidthCm:  spec.WidthCm,
				HeightCm: spec.HeightCm,
				WeightG:  spec.WeightG,
			})
		if lineErr != nil {
			return lineErr
		}
		lines = append(lines, line)
	}

	if err = hu.ReplaceLines(cmd.ClientID(), lines, now); err != nil {
		return err
	}

	if created {
		err = huRepo.Add(ctx, hu)
	} else {
		err = huRepo.Update(ctx, hu)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
