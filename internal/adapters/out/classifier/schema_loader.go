package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bintangns/WMS-Prototype/internal/core/domain/services/packaging"
)

// featureMeta mirrors the training artifact's metadata file.
type featureMeta struct {
	FeatureOrder []string `json:"feature_order"`
}

// LoadFeatureSchema reads the trained feature order from a JSON file of the
// form {"feature_order": ["n_items", ...]}. The file is produced together
// with the classifier artifact and must be loaded at startup; deriving the
// order in code would silently drift from what the classifier was built
// against.
func LoadFeatureSchema(path string) (packaging.FeatureSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return packaging.FeatureSchema{}, fmt.Errorf("read feature schema %s: %w", path, err)
	}

	var meta featureMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return packaging.FeatureSchema{}, fmt.Errorf("parse feature schema %s: %w", path, err)
	}

	return packaging.NewFeatureSchema(meta.FeatureOrder)
}
