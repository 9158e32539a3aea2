// Package geo computes map extents for geographies from Natural Earth boundaries.
package geo

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/climatescope-data/internal/model"
)

// ISOProperty is the feature attribute holding the two-letter country code.
const ISOProperty = "ISO_A2"

// LoadBoundingBoxes reads boundaries from a GeoJSON FeatureCollection or an
// ESRI shapefile and returns one bounding box per lowercased ISO code. The
// first feature of a code wins.
func LoadBoundingBoxes(path string) (map[string]model.BBox, error) {
	if strings.EqualFold(filepath.Ext(path), ".shp") {
		return loadShapefile(path)
	}
	return loadGeoJSON(path)
}

// Attach pairs each geography with its bounding box. A geography missing
// from boxes gets a nil box and a warning.
func Attach(geographies []model.Geography, boxes map[string]model.BBox) []model.GeographyOverview {
	log := zap.L().With(zap.String("component", "geo"))

	out := make([]model.GeographyOverview, 0, len(geographies))
	for _, g := range geographies {
		o := model.GeographyOverview{Geography: g}
		if b, ok := boxes[g.ISO]; ok {
			o.BBox = &b
		} else {
			log.Warn("missing bbox", zap.String("iso", g.ISO), zap.String("geography", g.Name))
		}
		out = append(out, o)
	}
	return out
}
