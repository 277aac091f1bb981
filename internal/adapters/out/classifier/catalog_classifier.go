package classifier

import (
	"context"
	"errors"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/services/packaging"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// ErrEnvelopeFeaturesMissing is returned when the feature schema does not
// carry the effective envelope axes the catalog lookup needs.
var ErrEnvelopeFeaturesMissing = errors.New(
	"feature vector is missing eff_L, eff_W or eff_H")

// CatalogClassifier chooses the smallest catalog container whose usable
// volume holds the padded envelope, falling back to the largest container
// when nothing fits. It replaces the trained model with a deterministic
// rule so recommendations stay reproducible without model artifacts.
type CatalogClassifier struct{}

// NewCatalogClassifier creates a catalog backed classifier.
func NewCatalogClassifier() *CatalogClassifier {
	return &CatalogClassifier{}
}

// Classify implements packaging.Classifier.
func (c *CatalogClassifier) Classify(_ context.Context, features packaging.FeatureVector) (string, error) {
	length, okL := features.Get("eff_L")
	width, okW := features.Get("eff_W")
	height, okH := features.Get("eff_H")
	if !okL || !okW || !okH {
		return "", errs.NewValueIsInvalidErrorWithCause("features", ErrEnvelopeFeaturesMissing)
	}

	needed := length * width * height

	var best *ContainerSpec
	var largest *ContainerSpec
	for i := range containerSpecs {
		spec := &containerSpecs[i]
		if largest == nil || spec.VolumeCm3 > largest.VolumeCm3 {
			largest = spec
		}
		if spec.VolumeCm3 < needed {
			continue
		}
		if best == nil || spec.VolumeCm3 < best.VolumeCm3 {
			best = spec
		}
	}

	if best == nil {
		best = largest
	}
	return best.Code, nil
}
