package commands

import (
	"context"
	"time"
)

// CloseSessionsCommandHandler handles packer logout. Closing is idempotent;
// logging out with no open session succeeds and reports zero closures.
type CloseSessionsCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewCloseSessionsCommandHandler creates a handler for packer logout.
func NewCloseSessionsCommandHandler(uowFactory SessionUoWFactory) CloseSessionsCommandHandler {
	return CloseSessionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the logout and reports how many sessions were closed.
func (h *CloseSessionsCommandHandler) Handle(ctx context.Context, cmd CloseSessionsCommand) (int, error) {
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

	sessionRepo := uow.SessionRepository()
	sessions, err := sessionRepo.GetActiveByPicker(ctx, cmd.Picker())
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	for _, s := range sessions {
		s.Close(now)
		if err = sessionRepo.Update(ctx, s); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(sessions), nil
}
