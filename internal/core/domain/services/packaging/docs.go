// Package packaging derives packing material recommendations for handling
// units.
//
// The pipeline has three deterministic stages. First, item profiles are
// aggregated into named features: category counts, dimension and weight
// aggregates, and a padded envelope computed by trying three stacking
// orientations and keeping the smallest. Second, a FeatureSchema lays the
// features out in the fixed order the classifier was trained on. Third, an
// opaque Classifier maps the vector to a container code from the packing
// material catalog. Bubble wrap advice is rule based on the item
// categories and independent of the classifier.
package packaging
