package commands

import (
	"errors"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var ErrCloseSessionsCommandIsNotConstructed = errors.New(
	"CloseSessionsCommand must be created via NewCloseSessionsCommand constructor",
)

// CloseSessionsCommand represents a packer logging out: every active
// session of the picker is closed, however many a crashed station left
// behind.
type CloseSessionsCommand struct { //nolint:recvcheck //using for validation
	picker string

	guard guard.ConstructorGuard
}

// NewCloseSessionsCommand creates a logout command.
func NewCloseSessionsCommand(picker string) (CloseSessionsCommand, error) {
	closeCommand := CloseSessionsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := closeCommand.setPicker(picker); err != nil {
		return CloseSessionsCommand{}, err
	}

	return closeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseSessionsCommand) Validate() error {
	return c.guard.Validate(ErrCloseSessionsCommandIsNotConstructed)
}

// Picker returns the logging-out packer's username.
func (c CloseSessionsCommand) Picker() string {
	return c.picker
}

func (c *CloseSessionsCommand) setPicker(picker string) error {
	picker = strings.TrimSpace(picker)
	if picker == "" {
		return ErrPickerIsRequired
	}

	c.picker = picker
	return nil
}
