package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// StartSessionCommandHandler handles workstation login. Every active
// session the picker still holds is force-closed first, so a crashed
// station never locks a packer out; then a fresh session opens at the
// requested station.
type StartSessionCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewStartSessionCommandHandler creates a handler for workstation login.
func NewStartSessionCommandHandler(uowFactory SessionUoWFactory) StartSessionCommandHandler {
	return StartSessionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the login and returns the newly opened session.
func (h *StartSessionCommandHandler) Handle(ctx context.Context, cmd StartSessionCommand) (*session.Session, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ws, err := uow.WorkstationRepository().GetByCode(ctx, cmd.WorkstationCode())
	if err != nil {
		return nil, err
	}
	if !ws.IsActive() {
		return nil, errs.NewObjectNotFoundErrorWithCause("workstation_id", cmd.WorkstationCode(),
			fmt.Errorf("workstation %s is out of service", cmd.WorkstationCode()))
	}

	now := time.Now().UTC()
	sessionRepo := uow.SessionRepository()

	previous, err := sessionRepo.GetActiveByPickerForUpdate(ctx, cmd.Picker())
	if err != nil {
		return nil, err
	}
	for _, s := range previous {
		s.Close(now)
		if err = sessionRepo.Update(ctx, s); err != nil {
			return nil, err
		}
	}

	newSession, err := session.NewSession(cmd.SessionID(), cmd.Picker(), ws.ID(), now)
	if err != nil {
		return nil, err
	}
	if err = sessionRepo.Add(ctx, newSession); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newSession, nil
}
