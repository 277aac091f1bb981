package commands

import (
	"errors"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var ErrRegisterWorkstationCommandIsNotConstructed = errors.New(
	"RegisterWorkstationCommand must be created via NewRegisterWorkstationCommand constructor",
)

// RegisterWorkstationCommand represents registering or updating a packing
// station. Registration is an upsert keyed by the station code.
type RegisterWorkstationCommand struct { //nolint:recvcheck //using for validation
	workstationID   kernel.UUID
	workstationCode string
	area            string
	description     string

	guard guard.ConstructorGuard
}

// NewRegisterWorkstationCommand creates a registration command. The
// workstation ID is used only when the code is new.
func NewRegisterWorkstationCommand(workstationID kernel.UUID, workstationCode, area, description string) (RegisterWorkstationCommand, error) {
	wsCommand := RegisterWorkstationCommand{
		area:        strings.TrimSpace(area),
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wsCommand.setWorkstationID(workstationID),
		wsCommand.setWorkstationCode(workstationCode),
	); err != nil {
		return RegisterWorkstationCommand{}, err
	}

	return wsCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterWorkstationCommand) Validate() error {
	return c.guard.Validate(ErrRegisterWorkstationCommandIsNotConstructed)
}

// WorkstationID returns the identifier to use when creating a new station.
func (c RegisterWorkstationCommand) WorkstationID() kernel.UUID { return c.workstationID }

// WorkstationCode returns the station code.
func (c RegisterWorkstationCommand) WorkstationCode() string { return c.workstationCode }

// Area returns the warehouse area the station belongs to.
func (c RegisterWorkstationCommand) Area() string { return c.area }

// Description returns the free-form station description.
func (c RegisterWorkstationCommand) Description() string { return c.description }

func (c *RegisterWorkstationCommand) setWorkstationID(workstationID kernel.UUID) error {
	if err := workstationID.Validate(); err != nil {
		return err
	}

	c.workstationID = workstationID
	return nil
}

func (c *RegisterWorkstationCommand) setWorkstationCode(workstationCode string) error {
	workstationCode = strings.TrimSpace(workstationCode)
	if workstationCode == "" {
		return ErrWorkstationCodeIsRequired
	}

	c.workstationCode = workstationCode
	return nil
}
