package geo

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/climatescope-data/internal/model"
)

// loadGeoJSON computes feature extents of a GeoJSON FeatureCollection.
func loadGeoJSON(path string) (map[string]model.BBox, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geo: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	var fc geojson.FeatureCollection
	if err := json.NewDecoder(f).Decode(&fc); err != nil {
		return nil, eris.Wrapf(err, "geo: decode %s", path)
	}

	boxes := make(map[string]model.BBox, len(fc.Features))
	for i, ft := range fc.Features {
		iso, _ := ft.Properties[ISOProperty].(string)
		if iso == "" || ft.Geometry == nil {
			zap.L().Debug("geo: skipping feature without iso or geometry", zap.Int("feature", i))
			continue
		}
		key := strings.ToLower(iso)
		if _, dup := boxes[key]; dup {
			continue
		}
		b := ft.Geometry.Bounds()
		if b == nil || b.IsEmpty() {
			continue
		}
		boxes[key] = model.BBox{b.Min(0), b.Min(1), b.Max(0), b.Max(1)}
	}
	return boxes, nil
}
