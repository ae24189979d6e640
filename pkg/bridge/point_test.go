package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geotoolbox/wpsbridge/pkg/wps"
)

func TestInputToPoint_GeoJSON(t *testing.T) {
	b := New()

	t.Run("point", func(t *testing.T) {
		pt, err := b.inputToPoint(wps.Value{
			Data: `{"type":"Point","coordinates":[5.0,45.0]}`,
		})
		require.NoError(t, err)
		assert.Equal(t, 5.0, pt.Point.X())
		assert.Equal(t, 45.0, pt.Point.Y())
		assert.Empty(t, pt.CRS)
	})

	t.Run("crs_member", func(t *testing.T) {
		pt, err := b.inputToPoint(wps.Value{
			Data: `{"type":"Point","coordinates":[5.0,45.0],"crs":{"type":"name","properties":{"name":"EPSG:2154"}}}`,
		})
		require.NoError(t, err)
		assert.Equal(t, "EPSG:2154", pt.CRS)
	})

	t.Run("polygon_collapses_to_centroid", func(t *testing.T) {
		pt, err := b.inputToPoint(wps.Value{
			Data: `{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2],[0,0]]]}`,
		})
		require.NoError(t, err)
		assert.InDelta(t, 1.0, pt.Point.X(), 1e-9)
		assert.InDelta(t, 1.0, pt.Point.Y(), 1e-9)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := b.inputToPoint(wps.Value{Data: `not json`})
		var valErr *InvalidParameterValueError
		assert.ErrorAs(t, err, &valErr)
	})

	t.Run("unknown_format", func(t *testing.T) {
		_, err := b.inputToPoint(wps.Value{
			Data:   `<wkt>POINT(1 2)</wkt>`,
			Format: &wps.Format{MimeType: "application/wkt"},
		})
		var fmtErr *UnsupportedFormatError
		assert.ErrorAs(t, err, &fmtErr)
	})

	t.Run("empty_declared_format", func(t *testing.T) {
		_, err := b.inputToPoint(wps.Value{
			Data:   `{"type":"Point","coordinates":[1,2]}`,
			Format: &wps.Format{},
		})
		var fmtErr *UnsupportedFormatError
		assert.ErrorAs(t, err, &fmtErr)
	})

	t.Run("nil_format_defaults_to_geojson", func(t *testing.T) {
		pt, err := b.inputToPoint(wps.Value{
			Data: `{"type":"Point","coordinates":[1,2]}`,
		})
		require.NoError(t, err)
		assert.Equal(t, 1.0, pt.Point.X())
	})
}

func TestInputToPoint_GML(t *testing.T) {
	b := New()

	t.Run("pos", func(t *testing.T) {
		pt, err := b.inputToPoint(wps.Value{
			Data:   `<gml:Point srsName="EPSG:4326"><gml:pos>2.35 48.85</gml:pos></gml:Point>`,
			Format: &wps.FormatGML,
		})
		require.NoError(t, err)
		assert.Equal(t, 2.35, pt.Point.X())
		assert.Equal(t, 48.85, pt.Point.Y())
		assert.Equal(t, "EPSG:4326", pt.CRS)
	})

	t.Run("coordinates", func(t *testing.T) {
		pt, err := b.inputToPoint(wps.Value{
			Data:   `<gml:Point><gml:coordinates>2.35,48.85</gml:coordinates></gml:Point>`,
			Format: &wps.FormatGML,
		})
		require.NoError(t, err)
		assert.Equal(t, 2.35, pt.Point.X())
		assert.Equal(t, 48.85, pt.Point.Y())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := b.inputToPoint(wps.Value{
			Data:   `<gml:Point></gml:Point>`,
			Format: &wps.FormatGML,
		})
		var valErr *InvalidParameterValueError
		assert.ErrorAs(t, err, &valErr)
	})
}
