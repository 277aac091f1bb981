package commands

import (
	"errors"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand represents a packer logging in at a workstation.
type StartSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID       kernel.UUID
	picker          string
	workstationCode string

	guard guard.ConstructorGuard
}

// NewStartSessionCommand creates a login command.
func NewStartSessionCommand(sessionID kernel.UUID, picker, workstationCode string) (StartSessionCommand, error) {
	sessionCommand := StartSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sessionCommand.setSessionID(sessionID),
		sessionCommand.setPicker(picker),
		sessionCommand.setWorkstationCode(workstationCode),
	); err != nil {
		return StartSessionCommand{}, err
	}

	return sessionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}

// SessionID returns the identifier for the new session.
func (c StartSessionCommand) SessionID() kernel.UUID { return c.sessionID }

// Picker returns the logging-in packer's username.
func (c StartSessionCommand) Picker() string { return c.picker }

// WorkstationCode returns the station the packer logs in at.
func (c StartSessionCommand) WorkstationCode() string { return c.workstationCode }

func (c *StartSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *StartSessionCommand) setPicker(picker string) error {
	picker = strings.TrimSpace(picker)
	if picker == "" {
		return ErrPickerIsRequired
	}

	c.picker = picker
	return nil
}

func (c *StartSessionCommand) setWorkstationCode(workstationCode string) error {
	workstationCode = strings.TrimSpace(workstationCode)
	if workstationCode == "" {
		return ErrWorkstationCodeIsRequired
	}

	c.workstationCode = workstationCode
	return nil
}
