package geo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/climatescope-data/internal/model"
)

const featureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"ISO_A2": "UY", "NAME": "Uruguay"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-58.4, -30.1], [-53.2, -33.7], [-54.9, -34.9], [-58.4, -30.1]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"ISO_A2": "CL"},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[-70.0, -18.0], [-68.0, -20.0], [-70.0, -20.0], [-70.0, -18.0]]],
          [[[-75.0, -50.0], [-72.0, -55.0], [-74.0, -55.0], [-75.0, -50.0]]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"ISO_A2": "UY"},
      "geometry": {"type": "Point", "coordinates": [0, 0]}
    },
    {
      "type": "Feature",
      "properties": {"NAME": "Nowhere"},
      "geometry": {"type": "Point", "coordinates": [1, 1]}
    }
  ]
}`

func TestLoadBoundingBoxes_GeoJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ne-110m_bbox.geojson")
	require.NoError(t, os.WriteFile(path, []byte(featureCollection), 0o644))

	boxes, err := LoadBoundingBoxes(path)
	require.NoError(t, err)
	require.Len(t, boxes, 2)
	assert.Equal(t, model.BBox{-58.4, -34.9, -53.2, -30.1}, boxes["uy"])
	assert.Equal(t, model.BBox{-75.0, -55.0, -68.0, -18.0}, boxes["cl"])
}

func TestLoadBoundingBoxes_GeoJSONMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "FeatureCollection", "features": [`), 0o644))

	_, err := LoadBoundingBoxes(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geo: decode")
}

func TestLoadBoundingBoxes_Shapefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.shp")

	w, err := shp.Create(path, shp.POINT)
	require.NoError(t, err)
	require.NoError(t, w.SetFields([]shp.Field{shp.StringField(ISOProperty, 2)}))
	assert.Equal(t, int32(0), w.Write(&shp.Point{X: -56.0, Y: -32.5}))
	require.NoError(t, w.WriteAttribute(0, 0, "UY"))
	assert.Equal(t, int32(1), w.Write(&shp.Point{X: 10.0, Y: 51.0}))
	require.NoError(t, w.WriteAttribute(1, 0, "DE"))
	w.Close()

	// The writer names the attribute table "<base>dbf"; the reader expects "<base>.dbf".
	base := strings.TrimSuffix(path, ".shp")
	require.NoError(t, os.Rename(base+"dbf", base+".dbf"))

	boxes, err := LoadBoundingBoxes(path)
	require.NoError(t, err)
	assert.Equal(t, model.BBox{-56.0, -32.5, -56.0, -32.5}, boxes["uy"])
	assert.Equal(t, model.BBox{10.0, 51.0, 10.0, 51.0}, boxes["de"])
}

func TestAttach(t *testing.T) {
	geos := []model.Geography{{ISO: "uy", Name: "Uruguay"}, {ISO: "zz", Name: "Atlantis"}}
	boxes := map[string]model.BBox{"uy": {-58.4, -34.9, -53.2, -30.1}}

	got := Attach(geos, boxes)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].BBox)
	assert.Equal(t, boxes["uy"], *got[0].BBox)
	assert.Nil(t, got[1].BBox)

	data, err := json.Marshal(got[1])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bbox":null`)
}
