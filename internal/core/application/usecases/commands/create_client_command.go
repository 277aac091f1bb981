package commands

import (
	"errors"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
	ErrClientNameIsRequired = errors.New("name is required")
	ErrClientCodeIsRequired = errors.New("code is required")
)

// CreateClientCommand represents a request to register a new client whose
// goods flow through the packing area. Client codes and names are unique
// case-insensitively.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	name     string
	code     string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a new client.
// Validates that the client ID is valid and name and code are not empty.
func NewCreateClientCommand(clientID kernel.UUID, name, code string) (CreateClientCommand, error) {
	clientCommand := CreateClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setClientID(clientID),
		clientCommand.setName(name),
		clientCommand.setCode(code),
	); err != nil {
		return CreateClientCommand{}, err
	}

	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the unique identifier for the new client.
func (c CreateClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the client's display name.
func (c CreateClientCommand) Name() string {
	return c.name
}

// Code returns the client's short code.
func (c CreateClientCommand) Code() string {
	return c.code
}

func (c *CreateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateClientCommand) setName(name string) error {
	if name == "" {
		return ErrClientNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateClientCommand) setCode(code string) error {
	if code == "" {
		return ErrClientCodeIsRequired
	}

	c.code = code
	return nil
}
