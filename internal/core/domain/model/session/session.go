package session

import (
	"errors"
	"strings"
	"time"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session instance was
	// not created through NewSession or RestoreSession.
	ErrSessionIsNotConstructed = errors.New(
		"Session must be created via NewSession constructor")

	// ErrSessionIsClosed indicates a mutation attempt on a session that
	// has already been logged out.
	ErrSessionIsClosed = errors.New("session is closed")
)

// Session tracks one packer's login at a workstation. A packer holds at
// most one active session: opening a new one closes every previous session
// of the same picker, so a station crash never leaves the user locked out.
//
// The session also carries the packer's working context, the handling unit
// and client codes last touched, used by supervisor dashboards.
type Session struct {
	id kernel.UUID

	// picker is the username of the logged-in packer
	picker string

	workstationID kernel.UUID

	loginTime  time.Time
	logoutTime *time.Time
	isActive   bool

	currentHUCode     *string
	currentClientCode *string

	// lastActivity is bumped on every workflow action and drives stale
	// session cleanup
	lastActivity time.Time

	isConstructed bool
}

// NewSession opens a new active session for the picker at the given
// workstation.
func NewSession(id kernel.UUID, picker string, workstationID kernel.UUID, now time.Time) (*Session, error) {
	s := &Session{
		loginTime:     now,
		lastActivity:  now,
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setPicker(picker),
		s.setWorkstationID(workstationID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSession reconstructs a Session from persistence.
func RestoreSession(
	id kernel.UUID,
	picker string,
	workstationID kernel.UUID,
	loginTime time.Time,
	logoutTime *time.Time,
	isActive bool,
	currentHUCode, currentClientCode *string,
	lastActivity time.Time,
) (*Session, error) {
	s, err := NewSession(id, picker, workstationID, loginTime)
	if err != nil {
		return nil, err
	}

	s.logoutTime = logoutTime
	s.isActive = isActive
	s.currentHUCode = currentHUCode
	s.currentClientCode = currentClientCode
	s.lastActivity = lastActivity
	return s, nil
}

// Validate ensures the Session was created through a constructor.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// IsEqual compares two sessions by identifier.
func (s *Session) IsEqual(other *Session) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID {
	return s.id
}

// Picker returns the logged-in packer's username.
func (s *Session) Picker() string {
	return s.picker
}

// WorkstationID returns the identifier of the workstation the packer
// logged in at.
func (s *Session) WorkstationID() kernel.UUID {
	return s.workstationID
}

// LoginTime returns when the session was opened.
func (s *Session) LoginTime() time.Time {
	return s.loginTime
}

// LogoutTime returns when the session was closed, nil while active.
func (s *Session) LogoutTime() *time.Time {
	return s.logoutTime
}

// IsActive reports whether the session is still open.
func (s *Session) IsActive() bool {
	return s.isActive
}

// CurrentHUCode returns the code of the handling unit the packer last
// worked on, nil when none.
func (s *Session) CurrentHUCode() *string {
	return s.currentHUCode
}

// CurrentClientCode returns the client code of the packer's current work,
// nil when none.
func (s *Session) CurrentClientCode() *string {
	return s.currentClientCode
}

// LastActivity returns the timestamp of the packer's last workflow action.
func (s *Session) LastActivity() time.Time {
	return s.lastActivity
}

// Close logs the session out. Closing an already closed session is a no-op
// so the bulk close-all flow stays idempotent.
func (s *Session) Close(now time.Time) {
	if !s.isActive {
		return
	}
	s.isActive = false
	s.logoutTime = &now
}

// SetContext records the handling unit and client the packer is working on
// and counts as activity. Fails on closed sessions.
func (s *Session) SetContext(huCode, clientCode string, now time.Time) error {
	if !s.isActive {
		return ErrSessionIsClosed
	}

	hu := strings.TrimSpace(huCode)
	client := strings.TrimSpace(clientCode)
	if hu != "" {
		s.currentHUCode = &hu
	}
	if client != "" {
		s.currentClientCode = &client
	}
	s.lastActivity = now
	return nil
}

// Touch bumps the activity timestamp. Fails on closed sessions.
func (s *Session) Touch(now time.Time) error {
	if !s.isActive {
		return ErrSessionIsClosed
	}
	s.lastActivity = now
	return nil
}

// IsStale reports whether an active session has seen no activity for longer
// than ttl. Closed sessions are never stale.
func (s *Session) IsStale(now time.Time, ttl time.Duration) bool {
	return s.isActive && now.Sub(s.lastActivity) > ttl
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setPicker(picker string) error {
	picker = strings.TrimSpace(picker)
	if picker == "" {
		return errs.NewValueIsRequiredError("picker")
	}
	s.picker = picker
	return nil
}

func (s *Session) setWorkstationID(workstationID kernel.UUID) error {
	if err := workstationID.Validate(); err != nil {
		return err
	}
	s.workstationID = workstationID
	return nil
}
