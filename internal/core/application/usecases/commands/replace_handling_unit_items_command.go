package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var (
	ErrReplaceHandlingUnitItemsCommandIsNotConstructed = errors.New(
		"ReplaceHandlingUnitItemsCommand must be created via NewReplaceHandlingUnitItemsCommand constructor",
	)
	ErrItemSKUIsRequired  = errors.New("sku is required")
	ErrItemNameIsRequired = errors.New("name is required")
	ErrItemQtyIsInvalid   = errors.New("qty must be greater than 0")
	ErrLineNoIsInvalid    = errors.New("line_no must be greater than 0")
)

// ItemSpec describes one item line in a full-replace request. Physical
// attributes are optional and may be corrected later at verification time.
type ItemSpec struct {
	LineNo   int
	SKU      string
	Name     string
	Qty      int
	Barcode  string
	Category *string
	LengthCm *float64
	WidthCm  *float64
	HeightCm *float64
	WeightG  *float64
}

func (s ItemSpec) validate() error {
	var errList []error
	if s.LineNo < 1 {
		errList = append(errList, fmt.Errorf("%w: got %d", ErrLineNoIsInvalid, s.LineNo))
	}
	if strings.TrimSpace(s.SKU) == "" {
		errList = append(errList, ErrItemSKUIsRequired)
	}
	if strings.TrimSpace(s.Name) == "" {
		errList = append(errList, ErrItemNameIsRequired)
	}
	if s.Qty < 1 {
		errList = append(errList, fmt.Errorf("%w: got %d", ErrItemQtyIsInvalid, s.Qty))
	}
	return errors.Join(errList...)
}

// ReplaceHandlingUnitItemsCommand represents an idempotent full replace of
// a handling unit's content: the unit is created if unknown, its previous
// lines are dropped, the workflow resets to ReadyForPacking, and the given
// lines become the new content.
type ReplaceHandlingUnitItemsCommand struct { //nolint:recvcheck //using for validation
	handlingUnitID kernel.UUID
	huCode         string
	clientID       kernel.UUID
	items          []ItemSpec

	guard guard.ConstructorGuard
}

// NewReplaceHandlingUnitItemsCommand creates a full-replace command.
// Every item spec must carry a positive line number, SKU, name and
// quantity; the handling unit ID is used only when the code is new.
func NewReplaceHandlingUnitItemsCommand(
	handlingUnitID kernel.UUID,
	huCode string,
	clientID kernel.UUID,
	items []ItemSpec,
) (ReplaceHandlingUnitItemsCommand, error) {
	replaceCommand := ReplaceHandlingUnitItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		replaceCommand.setHandlingUnitID(handlingUnitID),
		replaceCommand.setHUCode(huCode),
		replaceCommand.setClientID(clientID),
		replaceCommand.setItems(items),
	); err != nil {
		return ReplaceHandlingUnitItemsCommand{}, err
	}

	return replaceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceHandlingUnitItemsCommand) Validate() error {
	return c.guard.Validate(ErrReplaceHandlingUnitItemsCommandIsNotConstructed)
}

// HandlingUnitID returns the identifier to use when creating a new unit.
func (c ReplaceHandlingUnitItemsCommand) HandlingUnitID() kernel.UUID {
	return c.handlingUnitID
}

// HUCode returns the scannable handling unit code.
func (c ReplaceHandlingUnitItemsCommand) HUCode() string {
	return c.huCode
}

// ClientID returns the owning client's identifier.
func (c ReplaceHandlingUnitItemsCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Items returns the new content of the unit.
func (c ReplaceHandlingUnitItemsCommand) Items() []ItemSpec {
	out := make([]ItemSpec, len(c.items))
	copy(out, c.items)
	return out
}

func (c *ReplaceHandlingUnitItemsCommand) setHandlingUnitID(handlingUnitID kernel.UUID) error {
	if err := handlingUnitID.Validate(); err != nil {
		return err
	}

	c.handlingUnitID = handlingUnitID
	return nil
}

func (c *ReplaceHandlingUnitItemsCommand) setHUCode(huCode string) error {
	huCode = strings.TrimSpace(huCode)
	if huCode == "" {
		return ErrHUCodeIsRequired
	}

	c.huCode = huCode
	return nil
}

func (c *ReplaceHandlingUnitItemsCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *ReplaceHandlingUnitItemsCommand) setItems(items []ItemSpec) error {
	for i, spec := range items {
		if err := spec.validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	c.items = make([]ItemSpec, len(items))
	copy(c.items, items)
	return nil
}
