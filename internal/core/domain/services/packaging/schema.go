package packaging

import (
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"
)

// FeatureSchema fixes the order in which named features are laid out in the
// classifier input vector. The order comes from the classifier's training
// artifact and must be loaded, never hardcoded: a reordered vector silently
// produces garbage recommendations.
type FeatureSchema struct {
	order []string

	isConstructed bool
}

// NewFeatureSchema creates a schema from the trained feature order.
func NewFeatureSchema(order []string) (FeatureSchema, error) {
	if len(order) == 0 {
		return FeatureSchema{}, errs.NewValueIsRequiredError("feature_order")
	}

	copied := make([]string, len(order))
	copy(copied, order)
	return FeatureSchema{order: copied, isConstructed: true}, nil
}

// Validate ensures the schema was created through its constructor.
func (s FeatureSchema) Validate() error {
	if !s.isConstructed {
		return errs.NewValueIsRequiredError("feature_order")
	}
	return nil
}

// Order returns the feature names in vector order.
func (s FeatureSchema) Order() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Vector lays the named features out in schema order. Features the schema
// does not know are dropped; features missing from the input are zero.
func (s FeatureSchema) Vector(features map[string]float64) FeatureVector {
	values := make([]float64, len(s.order))
	for i, name := range s.order {
		values[i] = features[name]
	}
	return FeatureVector{names: s.Order(), values: values}
}

// FeatureVector is a classifier input: feature values in the schema's
// trained order.
type FeatureVector struct {
	names  []string
	values []float64
}

// Values returns the raw vector in schema order.
func (v FeatureVector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

// Get returns a feature value by name.
func (v FeatureVector) Get(name string) (float64, bool) {
	for i, n := range v.names {
		if n == name {
			return v.values[i], true
		}
	}
	return 0, false
}
