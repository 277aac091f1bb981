package commands

import (
	"errors"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var (
	ErrUnassignItemsCommandIsNotConstructed = errors.New(
		"UnassignItemsCommand must be created via NewUnassignItemsCommand constructor",
	)
	ErrItemIDListIsEmpty = errors.New("at least one item_id is required")
)

// UnassignItemsCommand represents a request to return items to the shared
// pool regardless of which handling unit they sit on.
type UnassignItemsCommand struct { //nolint:recvcheck //using for validation
	itemIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignItemsCommand creates an unassignment command. Duplicate
// identifiers are dropped keeping the first occurrence.
func NewUnassignItemsCommand(itemIDs []kernel.UUID) (UnassignItemsCommand, error) {
	unassignCommand := UnassignItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := unassignCommand.setItemIDs(itemIDs); err != nil {
		return UnassignItemsCommand{}, err
	}

	return unassignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignItemsCommand) Validate() error {
	return c.guard.Validate(ErrUnassignItemsCommandIsNotConstructed)
}

// ItemIDs returns the identifiers of the items to return to the pool.
func (c UnassignItemsCommand) ItemIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(c.itemIDs))
	copy(out, c.itemIDs)
	return out
}

func (c *UnassignItemsCommand) setItemIDs(itemIDs []kernel.UUID) error {
	seen := make(map[string]struct{}, len(itemIDs))
	normalized := make([]kernel.UUID, 0, len(itemIDs))
	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id.String()]; dup {
			continue
		}
		seen[id.String()] = struct{}{}
		normalized = append(normalized, id)
	}

	if len(normalized) == 0 {
		return ErrItemIDListIsEmpty
	}

	c.itemIDs = normalized
	return nil
}
