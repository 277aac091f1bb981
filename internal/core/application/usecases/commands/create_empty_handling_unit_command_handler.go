package commands

import (
	"context"
	"errors"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// CreateEmptyHandlingUnitCommandHandler prepares an empty handling unit in
// ReadyForPacking status, or re-points an existing one at a new client.
type CreateEmptyHandlingUnitCommandHandler struct {
	uowFactory PackingUoWFactory
}

// NewCreateEmptyHandlingUnitCommandHandler creates a handler for empty
// handling unit preparation.
func NewCreateEmptyHandlingUnitCommandHandler(uowFactory PackingUoWFactory) CreateEmptyHandlingUnitCommandHandler {
	return CreateEmptyHandlingUnitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. The owning client must exist; the handling
// unit is created when the code is unknown and only re-owned otherwise.
func (h *CreateEmptyHandlingUnitCommandHandler) Handle(ctx context.Context, cmd CreateEmptyHandlingUnitCommand) error {
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
	existing, err := huRepo.GetByCodeForUpdate(ctx, cmd.HUCode())
	switch {
	case err == nil:
		changed, setErr := existing.SetClient(cmd.ClientID(), now)
		if setErr != nil {
			return setErr
		}
		if changed {
			if err = huRepo.Update(ctx, existing); err != nil {
				return err
			}
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		hu, newErr := handlingunit.NewHandlingUnit(cmd.HandlingUnitID(), cmd.HUCode(), cmd.ClientID(), now)
		if newErr != nil {
			return newErr
		}
		if err = huRepo.Add(ctx, hu); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
