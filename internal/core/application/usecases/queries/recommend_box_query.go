package queries

import (
	"errors"
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/services/packaging"
	"github.com/bintangns/WMS-Prototype/internal/pkg/guard"
)

var ErrRecommendBoxQueryIsNotConstructed = errors.New(
	"RecommendBoxQuery must be created via NewRecommendBoxQuery constructor",
)

// RecommendBoxQuery asks for a packaging recommendation for one handling
// unit. The shipping distance tunes the padding model; a non-positive
// distance falls back to the default lane length.
type RecommendBoxQuery struct {
	huCode     string
	distanceKm float64

	guard guard.ConstructorGuard
}

// NewRecommendBoxQuery creates a packaging recommendation query.
func NewRecommendBoxQuery(huCode string, distanceKm float64) (RecommendBoxQuery, error) {
	huCode = strings.TrimSpace(huCode)
	if huCode == "" {
		return RecommendBoxQuery{}, ErrHUCodeIsRequired
	}

	if distanceKm <= 0 {
		distanceKm = packaging.DefaultDistanceKm
	}

	return RecommendBoxQuery{
		huCode:     huCode,
		distanceKm: distanceKm,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RecommendBoxQuery) Validate() error {
	return q.guard.Validate(ErrRecommendBoxQueryIsNotConstructed)
}

// HUCode returns the handling unit code to recommend packaging for.
func (q RecommendBoxQuery) HUCode() string {
	return q.huCode
}

// DistanceKm returns the shipping lane distance in kilometers.
func (q RecommendBoxQuery) DistanceKm() float64 {
	return q.distanceKm
}

// BubbleWrapLineResponse identifies one line that needs bubble wrap.
type BubbleWrapLineResponse struct {
	ItemID   kernel.UUID
	LineNo   int
	SKU      string
	Category string
}

// RecommendBoxQueryResponse represents a packaging recommendation in the
// read model.
type RecommendBoxQueryResponse struct {
	HUCode          string
	ClientName      string
	ContainerCode   string
	NeedBubbleWrap  bool
	BubbleWrapItems []BubbleWrapLineResponse
}
