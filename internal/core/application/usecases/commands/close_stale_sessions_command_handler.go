package commands

import (
	"context"
	"time"
)

// CloseStaleSessionsCommandHandler closes sessions that have been idle for
// longer than the configured ttl. Run periodically by the job scheduler.
type CloseStaleSessionsCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewCloseStaleSessionsCommandHandler creates a handler for stale session
// cleanup.
func NewCloseStaleSessionsCommandHandler(uowFactory SessionUoWFactory) CloseStaleSessionsCommandHandler {
	return CloseStaleSessionsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cleanup and reports how many sessions were closed.
func (h *CloseStaleSessionsCommandHandler) Handle(ctx context.Context, cmd CloseStaleSessionsCommand) (int, error) {
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

	now := time.Now().UTC()
	sessionRepo := uow.SessionRepository()
	stale, err := sessionRepo.GetStale(ctx, now.Add(-cmd.TTL()))
	if err != nil {
		return 0, err
	}

	for _, s := range stale {
		s.Close(now)
		if err = sessionRepo.Update(ctx, s); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
