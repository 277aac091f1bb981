package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionSweeperJob closes packing sessions whose pickers stopped working
// without logging out. Runs every minute.
type SessionSweeperJob struct {
	handler commands.CloseStaleSessionsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionSweeperJob creates a new job for closing stale sessions.
// Sessions idle longer than ttl are closed on the next sweep.
func NewSessionSweeperJob(handler commands.CloseStaleSessionsCommandHandler, ttl time.Duration, logger *slog.Logger) *SessionSweeperJob {
	return &SessionSweeperJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "session_sweeper_job"),
	}
}

// Start begins the session sweeper job to run every minute.
func (j *SessionSweeperJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCloseStaleSessionsCommand(j.ttl)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session sweeper job misconfigured", "error", err)
			return
		}

		closed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Session sweeper job failed", "error", err)
			return
		}

		if closed > 0 {
			j.logger.InfoContext(ctx, "Closed stale packing sessions", "count", closed, "ttl", j.ttl.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweeper job started (running every minute)", "ttl", j.ttl.String())
	return nil
}

// Stop stops the session sweeper job.
func (j *SessionSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session sweeper job stopped")
}
