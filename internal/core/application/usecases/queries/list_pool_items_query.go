package queries

import (
	"errors"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var ErrListPoolItemsQueryIsNotConstructed = errors.New(
	"ListPoolItemsQuery must be created via NewListPoolItemsQuery constructor",
)

// ListPoolItemsQuery retrieves unassigned items from the shared pool,
// optionally narrowed to one SKU.
type ListPoolItemsQuery struct {
	sku string

	guard guard.ConstructorGuard
}

// NewListPoolItemsQuery creates a pool listing query. An empty SKU lists
// the whole pool.
func NewListPoolItemsQuery(sku string) ListPoolItemsQuery {
	return ListPoolItemsQuery{sku: strings.TrimSpace(sku), guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListPoolItemsQuery) Validate() error {
	return q.guard.Validate(ErrListPoolItemsQueryIsNotConstructed)
}

// SKU returns the SKU filter, empty for no filter.
func (q ListPoolItemsQuery) SKU() string {
	return q.sku
}

// ListPoolItemsQueryResponse represents one pool item in the read model.
type ListPoolItemsQueryResponse struct {
	ID       kernel.UUID
	SKU      string
	Name     string
	Qty      int
	Barcode  string
	Category *string
}
