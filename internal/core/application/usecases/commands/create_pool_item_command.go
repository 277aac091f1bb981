package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var ErrCreatePoolItemCommandIsNotConstructed = errors.New(
	"CreatePoolItemCommand must be created via NewCreatePoolItemCommand constructor",
)

// CreatePoolItemCommand represents a request to intake one item into the
// shared unassigned pool, where it waits to be pulled onto a handling unit
// by SKU.
type CreatePoolItemCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	sku      string
	name     string
	qty      int
	barcode  string
	category *string
	lengthCm *float64
	widthCm  *float64
	heightCm *float64
	weightG  *float64

	guard guard.ConstructorGuard
}

// NewCreatePoolItemCommand creates a pool intake command. Barcode and the
// physical attributes are optional.
func NewCreatePoolItemCommand(
	itemID kernel.UUID,
	sku, name string,
	qty int,
	barcode string,
	category *string,
	lengthCm, widthCm, heightCm, weightG *float64,
) (CreatePoolItemCommand, error) {
	itemCommand := CreatePoolItemCommand{
		barcode:  strings.TrimSpace(barcode),
		category: category,
		lengthCm: lengthCm,
		widthCm:  widthCm,
		heightCm: heightCm,
		weightG:  weightG,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setSKU(sku),
		itemCommand.setName(name),
		itemCommand.setQty(qty),
	); err != nil {
		return CreatePoolItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePoolItemCommand) Validate() error {
	return c.guard.Validate(ErrCreatePoolItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new item.
func (c CreatePoolItemCommand) ItemID() kernel.UUID { return c.itemID }

// SKU returns the stock keeping unit code.
func (c CreatePoolItemCommand) SKU() string { return c.sku }

// Name returns the item's display name.
func (c CreatePoolItemCommand) Name() string { return c.name }

// Qty returns the piece count.
func (c CreatePoolItemCommand) Qty() int { return c.qty }

// Barcode returns the optional scannable barcode.
func (c CreatePoolItemCommand) Barcode() string { return c.barcode }

// Category returns the optional handling category.
func (c CreatePoolItemCommand) Category() *string { return c.category }

// LengthCm returns the optional length.
func (c CreatePoolItemCommand) LengthCm() *float64 { return c.lengthCm }

// WidthCm returns the optional width.
func (c CreatePoolItemCommand) WidthCm() *float64 { return c.widthCm }

// HeightCm returns the optional height.
func (c CreatePoolItemCommand) HeightCm() *float64 { return c.heightCm }

// WeightG returns the optional weight.
func (c CreatePoolItemCommand) WeightG() *float64 { return c.weightG }

func (c *CreatePoolItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *CreatePoolItemCommand) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return ErrItemSKUIsRequired
	}

	c.sku = sku
	return nil
}

func (c *CreatePoolItemCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePoolItemCommand) setQty(qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: got %d", ErrItemQtyIsInvalid, qty)
	}

	c.qty = qty
	return nil
}
