package queries

import (
	"context"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/handlingunit"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/services/packaging"
	"github.com/bintangns/WMS-Prototype/internal/core/ports"
)

// RecommendBoxQueryHandler turns a handling unit's content into a
// packaging recommendation. The unit is read as a plain snapshot, no lock
// is taken and nothing is written; two calls with the same content and
// distance return the same answer.
type RecommendBoxQueryHandler struct {
	huRepo      ports.HandlingUnitRepository
	clientRepo  ports.ClientRepository
	recommender *packaging.Recommender
}

// NewRecommendBoxQueryHandler creates a handler for packaging
// recommendation queries.
func NewRecommendBoxQueryHandler(
	huRepo ports.HandlingUnitRepository,
	clientRepo ports.ClientRepository,
	recommender *packaging.Recommender,
) RecommendBoxQueryHandler {
	return RecommendBoxQueryHandler{
		huRepo:      huRepo,
		clientRepo:  clientRepo,
		recommender: recommender,
	}
}

// Handle executes the query. A unit with no lines or with a line missing
// physical dimensions cannot be recommended for and fails with a
// precondition error.
func (h RecommendBoxQueryHandler) Handle(
	ctx context.Context,
	query RecommendBoxQuery,
) (RecommendBoxQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RecommendBoxQueryResponse{}, err
	}

	hu, err := h.huRepo.GetByCode(ctx, query.HUCode())
	if err != nil {
		return RecommendBoxQueryResponse{}, err
	}

	owner, err := h.clientRepo.Get(ctx, hu.ClientID())
	if err != nil {
		return RecommendBoxQueryResponse{}, err
	}

	lines := hu.Lines()
	profiles := make([]packaging.ItemProfile, 0, len(lines))
	byID := make(map[string]*handlingunit.Item, len(lines))
	for _, line := range lines {
		dims, dimsErr := line.Dimensions()
		if dimsErr != nil {
			return RecommendBoxQueryResponse{}, dimsErr
		}

		category := ""
		if line.Category() != nil {
			category = *line.Category()
		}

		profiles = append(profiles, packaging.ItemProfile{
			ID:       line.ID(),
			Category: category,
			Dims:     dims,
		})
		byID[line.ID().String()] = line
	}

	recommendation, err := h.recommender.Recommend(ctx, profiles, query.DistanceKm())
	if err != nil {
		return RecommendBoxQueryResponse{}, err
	}

	wrapLines := make([]BubbleWrapLineResponse, 0, len(recommendation.BubbleWrapItems))
	for _, wrap := range recommendation.BubbleWrapItems {
		wrapLine := BubbleWrapLineResponse{ItemID: wrap.ItemID, Category: wrap.Category}
		if line, ok := byID[wrap.ItemID.String()]; ok {
			wrapLine.SKU = line.SKU()
			if lineNo := line.Location().LineNo(); lineNo != nil {
				wrapLine.LineNo = *lineNo
			}
		}
		wrapLines = append(wrapLines, wrapLine)
	}

	return RecommendBoxQueryResponse{
		HUCode:          hu.Code(),
		ClientName:      owner.Name(),
		ContainerCode:   recommendation.ContainerCode,
		NeedBubbleWrap:  recommendation.NeedBubbleWrap,
		BubbleWrapItems: wrapLines,
	}, nil
}
