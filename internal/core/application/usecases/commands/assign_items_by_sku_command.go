package commands

import (
	"errors"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var (
	ErrAssignItemsBySKUCommandIsNotConstructed = errors.New(
		"AssignItemsBySKUCommand must be created via NewAssignItemsBySKUCommand constructor",
	)
	ErrSKUListIsEmpty = errors.New("at least one sku is required")
)

// AssignItemsBySKUCommand represents a request to pull every matching pool
// item onto a handling unit by SKU. The SKU list is normalized when the
// command is built: entries are trimmed, blanks dropped and duplicates
// removed keeping the first occurrence.
type AssignItemsBySKUCommand struct { //nolint:recvcheck //using for validation
	huCode   string
	skus     []string
	autoLine bool

	guard guard.ConstructorGuard
}

// NewAssignItemsBySKUCommand creates an assignment command. When autoLine
// is set, attached items receive consecutive line numbers continuing from
// the unit's current maximum.
func NewAssignItemsBySKUCommand(huCode string, skus []string, autoLine bool) (AssignItemsBySKUCommand, error) {
	assignCommand := AssignItemsBySKUCommand{
		autoLine: autoLine,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setHUCode(huCode),
		assignCommand.setSKUs(skus),
	); err != nil {
		return AssignItemsBySKUCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignItemsBySKUCommand) Validate() error {
	return c.guard.Validate(ErrAssignItemsBySKUCommandIsNotConstructed)
}

// HUCode returns the target handling unit code.
func (c AssignItemsBySKUCommand) HUCode() string {
	return c.huCode
}

// SKUs returns the normalized SKU list.
func (c AssignItemsBySKUCommand) SKUs() []string {
	out := make([]string, len(c.skus))
	copy(out, c.skus)
	return out
}

// AutoLine reports whether attached items get consecutive line numbers.
func (c AssignItemsBySKUCommand) AutoLine() bool {
	return c.autoLine
}

func (c *AssignItemsBySKUCommand) setHUCode(huCode string) error {
	huCode = strings.TrimSpace(huCode)
	if huCode == "" {
		return ErrHUCodeIsRequired
	}

	c.huCode = huCode
	return nil
}

func (c *AssignItemsBySKUCommand) setSKUs(skus []string) error {
	seen := make(map[string]struct{}, len(skus))
	normalized := make([]string, 0, len(skus))
	for _, sku := range skus {
		sku = strings.TrimSpace(sku)
		if sku == "" {
			continue
		}
		if _, dup := seen[sku]; dup {
			continue
		}
		seen[sku] = struct{}{}
		normalized = append(normalized, sku)
	}

	if len(normalized) == 0 {
		return ErrSKUListIsEmpty
	}

	c.skus = normalized
	return nil
}
