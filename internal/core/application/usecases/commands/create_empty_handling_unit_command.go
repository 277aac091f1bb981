package commands

import (
	"errors"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var (
	ErrCreateEmptyHandlingUnitCommandIsNotConstructed = errors.New(
		"CreateEmptyHandlingUnitCommand must be created via NewCreateEmptyHandlingUnitCommand constructor",
	)
	ErrHUCodeIsRequired = errors.New("hu_code is required")
)

// CreateEmptyHandlingUnitCommand represents a request to prepare an empty
// handling unit for a client. The operation is an upsert: a known code has
// its owning client corrected instead of failing, so label re-prints stay
// harmless.
type CreateEmptyHandlingUnitCommand struct { //nolint:recvcheck //using for validation
	handlingUnitID kernel.UUID
	huCode         string
	clientID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateEmptyHandlingUnitCommand creates a command to prepare an empty
// handling unit. The handling unit ID is used only when the code is new.
func NewCreateEmptyHandlingUnitCommand(handlingUnitID kernel.UUID, huCode string, clientID kernel.UUID) (CreateEmptyHandlingUnitCommand, error) {
	huCommand := CreateEmptyHandlingUnitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		huCommand.setHandlingUnitID(handlingUnitID),
		huCommand.setHUCode(huCode),
		huCommand.setClientID(clientID),
	); err != nil {
		return CreateEmptyHandlingUnitCommand{}, err
	}

	return huCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEmptyHandlingUnitCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmptyHandlingUnitCommandIsNotConstructed)
}

// HandlingUnitID returns the identifier to use when creating a new unit.
func (c CreateEmptyHandlingUnitCommand) HandlingUnitID() kernel.UUID {
	return c.handlingUnitID
}

// HUCode returns the scannable handling unit code.
func (c CreateEmptyHandlingUnitCommand) HUCode() string {
	return c.huCode
}

// ClientID returns the owning client's identifier.
func (c CreateEmptyHandlingUnitCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c *CreateEmptyHandlingUnitCommand) setHandlingUnitID(handlingUnitID kernel.UUID) error {
	if err := handlingUnitID.Validate(); err != nil {
		return err
	}

	c.handlingUnitID = handlingUnitID
	return nil
}

func (c *CreateEmptyHandlingUnitCommand) setHUCode(huCode string) error {
	huCode = strings.TrimSpace(huCode)
	if huCode == "" {
		return ErrHUCodeIsRequired
	}

	c.huCode = huCode
	return nil
}

func (c *CreateEmptyHandlingUnitCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
