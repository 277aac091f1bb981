package classifier_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bintangns/WMS-Prototype/internal/adapters/out/classifier"
	"github.com/bintangns/WMS-Prototype/internal/core/domain/services/packaging"
	"github.com/bintangns/WMS-Prototype/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envelopeVector(t *testing.T, l, w, h float64) packaging.FeatureVector {
	t.Helper()
	schema, err := packaging.NewFeatureSchema([]string{"eff_L", "eff_W", "eff_H"})
	require.NoError(t, err)
	return schema.Vector(map[string]float64{"eff_L": l, "eff_W": w, "eff_H": h})
}

func TestCatalogClassifier_Classify(t *testing.T) {
	ctx := context.Background()
	c := classifier.NewCatalogClassifier()

	t.Run("should pick the smallest container that holds the envelope", func(t *testing.T) {
		// 10*10*10 = 1000 cm3 fits code 009 (1188) but not 015 (512).
		code, err := c.Classify(ctx, envelopeVector(t, 10, 10, 10))

		require.NoError(t, err)
		assert.Equal(t, "009", code)
	})

	t.Run("should fall back to the largest container when nothing fits", func(t *testing.T) {
		code, err := c.Classify(ctx, envelopeVector(t, 100, 100, 100))

		require.NoError(t, err)
		assert.Equal(t, "007", code)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		first, err := c.Classify(ctx, envelopeVector(t, 25, 20, 15))
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			again, err := c.Classify(ctx, envelopeVector(t, 25, 20, 15))
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("should fail when the schema lacks the envelope axes", func(t *testing.T) {
		schema, err := packaging.NewFeatureSchema([]string{"n_items"})
		require.NoError(t, err)

		_, err = c.Classify(ctx, schema.Vector(map[string]float64{"n_items": 2}))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, classifier.ErrEnvelopeFeaturesMissing)
	})
}

func TestSpec(t *testing.T) {
	t.Run("should zero pad short codes", func(t *testing.T) {
		spec, ok := classifier.Spec("7")

		require.True(t, ok)
		assert.Equal(t, "007", spec.Code)
		assert.Equal(t, classifier.TypeBox, spec.Type)
	})

	t.Run("should miss unknown codes", func(t *testing.T) {
		_, ok := classifier.Spec("999")
		assert.False(t, ok)
	})
}

func TestLoadFeatureSchema(t *testing.T) {
	t.Run("should load the trained order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "expected_features.json")
		content := `{"feature_order": ["n_items", "distance_km", "eff_L", "eff_W", "eff_H"]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		schema, err := classifier.LoadFeatureSchema(path)

		require.NoError(t, err)
		assert.Equal(t,
			[]string{"n_items", "distance_km", "eff_L", "eff_W", "eff_H"}, schema.Order())
	})

	t.Run("should load the shipped sample covering every built feature", func(t *testing.T) {
		schema, err := classifier.LoadFeatureSchema(
			filepath.Join("..", "..", "..", "..", "configs", "expected_features.json"))
		require.NoError(t, err)

		built := packaging.BuildFeatures(nil, packaging.DefaultDistanceKm)
		names := make([]string, 0, len(built))
		for name := range built {
			names = append(names, name)
		}
		assert.ElementsMatch(t, names, schema.Order())
	})

	t.Run("should fill undeclared names with zero on reindex", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "expected_features.json")
		content := `{"feature_order": ["n_items", "cnt_frozen", "eff_L"]}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		schema, err := classifier.LoadFeatureSchema(path)
		require.NoError(t, err)

		vector := schema.Vector(map[string]float64{"n_items": 3, "eff_L": 12.5, "sum_vol": 99})

		assert.Equal(t, []float64{3, 0, 12.5}, vector.Values())
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := classifier.LoadFeatureSchema(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})

	t.Run("should fail on an empty order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "expected_features.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"feature_order": []}`), 0o600))

		_, err := classifier.LoadFeatureSchema(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
