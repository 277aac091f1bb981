package commands

import (
	"errors"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var (
	ErrCloseStaleSessionsCommandIsNotConstructed = errors.New(
		"CloseStaleSessionsCommand must be created via NewCloseStaleSessionsCommand constructor",
	)
	ErrSessionTTLIsInvalid = errors.New("session ttl must be greater than 0")
)

// CloseStaleSessionsCommand represents the periodic cleanup of sessions
// whose packers walked away without logging out.
type CloseStaleSessionsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCloseStaleSessionsCommand creates a cleanup command. Sessions idle for
// longer than ttl are closed.
func NewCloseStaleSessionsCommand(ttl time.Duration) (CloseStaleSessionsCommand, error) {
	staleCommand := CloseStaleSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setTTL(ttl); err != nil {
		return CloseStaleSessionsCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseStaleSessionsCommand) Validate() error {
	return c.guard.Validate(ErrCloseStaleSessionsCommandIsNotConstructed)
}

// TTL returns the idle duration after which a session counts as stale.
func (c CloseStaleSessionsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *CloseStaleSessionsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return ErrSessionTTLIsInvalid
	}

	c.ttl = ttl
	return nil
}
