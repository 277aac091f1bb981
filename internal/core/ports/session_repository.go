package ports

import (
	"context"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for packer sessions.
type SessionRepository interface {
	// Add persists a new session.
	Add(ctx context.Context, aggregate *session.Session) error

	// Update persists changes to an existing session.
	Update(ctx context.Context, aggregate *session.Session) error

	// Get retrieves a session by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*session.Session, error)

	// GetActiveByPicker retrieves the picker's active sessions. The store
	// keeps at most one active session per picker; callers still range
	// over the result so data predating that constraint drains cleanly.
	GetActiveByPicker(ctx context.Context, picker string) ([]*session.Session, error)

	// GetActiveByPickerForUpdate retrieves the picker's active sessions
	// while holding their row locks until the surrounding transaction
	// ends. Login takeover reads through this so concurrent logins for
	// the same picker serialize.
	GetActiveByPickerForUpdate(ctx context.Context, picker string) ([]*session.Session, error)

	// GetAllActive retrieves every active session ordered by login time.
	GetAllActive(ctx context.Context) ([]*session.Session, error)

	// GetStale retrieves active sessions with no activity since the cutoff.
	GetStale(ctx context.Context, cutoff time.Time) ([]*session.Session, error)
}

// WorkstationRepository defines the persistence contract for workstations.
type WorkstationRepository interface {
	// Add persists a new workstation.
	Add(ctx context.Context, aggregate *session.Workstation) error

	// Update persists changes to an existing workstation.
	Update(ctx context.Context, aggregate *session.Workstation) error

	// Get retrieves a workstation by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*session.Workstation, error)

	// GetByCode retrieves a workstation by its station code.
	GetByCode(ctx context.Context, code string) (*session.Workstation, error)

	// GetAll retrieves every workstation ordered by code.
	GetAll(ctx context.Context) ([]*session.Workstation, error)
}
