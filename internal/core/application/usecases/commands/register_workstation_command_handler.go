package commands

import (
	"context"
	"errors"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// RegisterWorkstationCommandHandler registers a packing station or updates
// the details of a known one.
type RegisterWorkstationCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewRegisterWorkstationCommandHandler creates a handler for workstation
// registration.
func NewRegisterWorkstationCommandHandler(uowFactory SessionUoWFactory) RegisterWorkstationCommandHandler {
	return RegisterWorkstationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterWorkstationCommandHandler) Handle(ctx context.Context, cmd RegisterWorkstationCommand) error {
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

	wsRepo := uow.WorkstationRepository()
	existing, err := wsRepo.GetByCode(ctx, cmd.WorkstationCode())
	switch {
	case err == nil:
		existing.UpdateDetails(cmd.Area(), cmd.Description())
		if err = wsRepo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		ws, newErr := session.NewWorkstation(
			cmd.WorkstationID(), cmd.WorkstationCode(), cmd.Area(), cmd.Description(), time.Now().UTC())
		if newErr != nil {
			return newErr
		}
		if err = wsRepo.Add(ctx, ws); err != nil {
			return err
		}
	default:
		return err
	}

	return uow.Commit(ctx)
}
