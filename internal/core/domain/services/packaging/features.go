package packaging

import (
	"strings"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/model/kernel"
)

// DefaultDistanceKm is assumed when no shipping distance is known for a
// handling unit. Distance only nudges the padding heuristic, so a rough
// default is acceptable.
const DefaultDistanceKm = 25.0

// CategoryNeutral is substituted for items without a handling category.
const CategoryNeutral = "Neutral"

// allCategories is the closed set of handling categories the feature vector
// counts, in canonical order.
var allCategories = []string{
	"Chemical", "Electronics", "Fragile", "Frozen",
	"Liquid", "Luxury", "Neutral", "Voucher",
}

// bubbleCategories are the categories that require bubble wrap. Wrap
// presence also thickens the padding around the computed envelope.
var bubbleCategories = map[string]struct{}{
	"Fragile":     {},
	"Electronics": {},
	"Luxury":      {},
}

// NeedsBubbleWrap reports whether items of the given category are wrapped.
func NeedsBubbleWrap(category string) bool {
	_, ok := bubbleCategories[category]
	return ok
}

// ItemProfile is the physical snapshot of one handling unit line used for
// feature derivation. All dimensions must be resolved before building
// profiles; the category defaults to Neutral when blank.
type ItemProfile struct {
	ID       kernel.UUID
	Category string
	Dims     kernel.Dimensions
}

// NormalizedCategory returns the item's category, Neutral when unset.
func (p ItemProfile) NormalizedCategory() string {
	if c := strings.TrimSpace(p.Category); c != "" {
		return c
	}
	return CategoryNeutral
}

// Envelope is the padded bounding box the items are assumed to occupy.
type Envelope struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// VolumeCm3 returns the envelope volume.
func (e Envelope) VolumeCm3() float64 {
	return e.LengthCm * e.WidthCm * e.HeightCm
}

// ComputeEnvelope estimates the padded bounding box for a set of items.
//
// Three stacking orientations are considered: items in a row along length,
// along width, or piled along height. Each candidate is grown by the
// padding on both sides per axis, and the smallest resulting volume wins;
// on a tie the earlier orientation is kept. Padding depends on the wrap
// layer count: 0.5 cm base plus 0.3 cm per layer. Fragile loads shipping
// further than 50 km get a second layer.
func ComputeEnvelope(items []ItemProfile, distanceKm float64) Envelope {
	var sumL, sumW, sumH, maxL, maxW, maxH float64
	wrap := false
	for _, it := range items {
		l, w, h := it.Dims.LengthCm(), it.Dims.WidthCm(), it.Dims.HeightCm()
		sumL += l
		sumW += w
		sumH += h
		maxL = maxFloat(maxL, l)
		maxW = maxFloat(maxW, w)
		maxH = maxFloat(maxH, h)
		if NeedsBubbleWrap(it.NormalizedCategory()) {
			wrap = true
		}
	}

	layers := 0.0
	switch {
	case wrap && distanceKm > 50:
		layers = 2
	case wrap:
		layers = 1
	}
	pad := layers*0.3 + 0.5

	candidates := []Envelope{
		{sumL + 2*pad, maxW + 2*pad, maxH + 2*pad},
		{maxL + 2*pad, sumW + 2*pad, maxH + 2*pad},
		{maxL + 2*pad, maxW + 2*pad, sumH + 2*pad},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.VolumeCm3() < best.VolumeCm3() {
			best = c
		}
	}
	return best
}

// BuildFeatures derives the full named feature set for a handling unit's
// items: per-category counts, aggregate dimensions and weights, and the
// padded envelope axes.
func BuildFeatures(items []ItemProfile, distanceKm float64) map[string]float64 {
	features := make(map[string]float64, len(allCategories)+14)
	for _, c := range allCategories {
		features["cnt_"+strings.ToLower(c)] = 0
	}

	var sumL, sumW, sumH, sumVol, sumWeight float64
	var maxL, maxW, maxH, maxWeight float64
	for _, it := range items {
		features["cnt_"+strings.ToLower(it.NormalizedCategory())]++

		l, w, h := it.Dims.LengthCm(), it.Dims.WidthCm(), it.Dims.HeightCm()
		weight := it.Dims.WeightG()
		sumL += l
		sumW += w
		sumH += h
		sumVol += it.Dims.VolumeCm3()
		sumWeight += weight
		maxL = maxFloat(maxL, l)
		maxW = maxFloat(maxW, w)
		maxH = maxFloat(maxH, h)
		maxWeight = maxFloat(maxWeight, weight)
	}

	env := ComputeEnvelope(items, distanceKm)

	features["n_items"] = float64(len(items))
	features["distance_km"] = distanceKm
	features["max_L"] = maxL
	features["max_W"] = maxW
	features["max_H"] = maxH
	features["sum_L"] = sumL
	features["sum_W"] = sumW
	features["sum_H"] = sumH
	features["sum_vol"] = sumVol
	features["max_weight"] = maxWeight
	features["sum_weight"] = sumWeight
	features["eff_L"] = env.LengthCm
	features["eff_W"] = env.WidthCm
	features["eff_H"] = env.HeightCm
	return features
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
