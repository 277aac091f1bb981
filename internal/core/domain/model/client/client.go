// Package client contains the owning-organization aggregate. A client owns
// zero or more handling units; besides identity it only carries a display
// name and a short business code used on labels and picking screens.
package client

import (
	"errors"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
)

var (
	// ErrClientIsNotConstructed is returned when a Client instance was not
	// created through NewClient or RestoreClient.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

	// ErrClientNameIsRequired indicates a missing display name.
	ErrClientNameIsRequired = errors.New("client name is required")

	// ErrClientCodeIsRequired indicates a missing business code.
	ErrClientCodeIsRequired = errors.New("client code is required")
)

// Client represents the organization that owns a handling unit.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name is trimmed and non-empty
//   - Code is trimmed, uppercased and non-empty; uniqueness is
//     case-insensitive and enforced by the repository
type Client struct {
	id   kernel.UUID
	name string
	code string

	isConstructed bool
}

// NormalizeCode maps a raw client code to its canonical stored form:
// surrounding whitespace removed, letters uppercased. Lookups and uniqueness
// checks operate on this form so "acme" and "ACME " are the same client.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NewClient creates a new Client with validation.
//
// The name is trimmed; the code is normalized via NormalizeCode. Returns an
// error if the id is invalid or either value is empty after trimming.
func NewClient(id kernel.UUID, name, code string) (*Client, error) {
	c := &Client{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setCode(code),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a Client from persistence. Values are assumed
// to already be in canonical form but are re-validated.
func RestoreClient(id kernel.UUID, name, code string) (*Client, error) {
	return NewClient(id, name, code)
}

// Validate ensures the Client was created through a constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// IsEqual compares two clients by identifier.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// Code returns the client's canonical business code.
func (c *Client) Code() string {
	return c.code
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrClientNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Client) setCode(code string) error {
	code = NormalizeCode(code)
	if code == "" {
		return ErrClientCodeIsRequired
	}
	c.code = code
	return nil
}
