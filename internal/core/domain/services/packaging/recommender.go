package packaging

import (
	"context"
	"errors"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// ErrRecommenderIsNotConstructed is returned when a Recommender was not
// created through NewRecommender.
var ErrRecommenderIsNotConstructed = errors.New(
	"Recommender must be created via NewRecommender constructor")

// Classifier maps a feature vector to a container code. Implementations are
// opaque to the workflow; the production one scores against the packing
// material catalog.
type Classifier interface {
	Classify(ctx context.Context, features FeatureVector) (string, error)
}

// WrapItem names one line that must be bubble wrapped.
type WrapItem struct {
	ItemID   kernel.UUID
	Category string
}

// Recommendation is the packing advice for one handling unit.
type Recommendation struct {
	ContainerCode   string
	NeedBubbleWrap  bool
	BubbleWrapItems []WrapItem
}

// Recommender derives packaging features from a handling unit's items and
// asks the classifier for a container. The derivation is deterministic:
// identical items and distance always produce the identical vector.
type Recommender struct {
	schema     FeatureSchema
	classifier Classifier

	isConstructed bool
}

// NewRecommender creates a packaging recommender.
func NewRecommender(schema FeatureSchema, classifier Classifier) (*Recommender, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	if classifier == nil {
		return nil, errs.NewValueIsRequiredError("classifier")
	}

	return &Recommender{
		schema:        schema,
		classifier:    classifier,
		isConstructed: true,
	}, nil
}

// Validate ensures the Recommender was created through its constructor.
func (r *Recommender) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecommenderIsNotConstructed
	}
	return nil
}

// Recommend builds the feature vector for the given item profiles and
// returns the classifier's container choice together with the bubble wrap
// advice. Fails with a precondition error when there is nothing to pack.
func (r *Recommender) Recommend(ctx context.Context, items []ItemProfile, distanceKm float64) (Recommendation, error) {
	if err := r.Validate(); err != nil {
		return Recommendation{}, err
	}
	if len(items) == 0 {
		return Recommendation{}, errs.NewPreconditionFailedErrorWithCause("items",
			errors.New("handling unit has no items to pack"))
	}

	vector := r.schema.Vector(BuildFeatures(items, distanceKm))
	code, err := r.classifier.Classify(ctx, vector)
	if err != nil {
		return Recommendation{}, err
	}

	var wrapItems []WrapItem
	for _, it := range items {
		if category := it.NormalizedCategory(); NeedsBubbleWrap(category) {
			wrapItems = append(wrapItems, WrapItem{ItemID: it.ID, Category: category})
		}
	}

	return Recommendation{
		ContainerCode:   code,
		NeedBubbleWrap:  len(wrapItems) > 0,
		BubbleWrapItems: wrapItems,
	}, nil
}
