package geo

import (
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"

	"github.com/sells-group/climatescope-data/internal/model"
)

// loadShapefile reads shape extents and the ISO attribute from a .shp/.dbf pair.
func loadShapefile(path string) (map[string]model.BBox, error) {
	reader, err := shp.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "geo: open shapefile %s", path)
	}
	defer func() { _ = reader.Close() }()

	isoIdx := fieldIndex(reader, ISOProperty)
	if isoIdx < 0 {
		return nil, eris.Errorf("geo: shapefile %s has no %s field", path, ISOProperty)
	}

	boxes := make(map[string]model.BBox)
	for reader.Next() {
		_, shape := reader.Shape()
		if shape == nil {
			continue
		}

		iso := strings.ToLower(strings.TrimSpace(reader.Attribute(isoIdx)))
		if iso == "" {
			continue
		}
		if _, dup := boxes[iso]; dup {
			continue
		}

		b := shape.BBox()
		boxes[iso] = model.BBox{b.MinX, b.MinY, b.MaxX, b.MaxY}
	}
	return boxes, nil
}

// fieldIndex returns the index of a named field in the shapefile, or -1 if not found.
func fieldIndex(reader *shp.Reader, name string) int {
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}
