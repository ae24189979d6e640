package bridge

import (
	"encoding/json"
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
	"github.com/geotoolbox/wpsbridge/pkg/wps"
)

// gmlPoint is the subset of a GML point payload the decoder understands.
// Coordinates may arrive either as a space separated pos element or as a
// comma separated coordinates element.
type gmlPoint struct {
	SRSName     string `xml:"srsName,attr"`
	Pos         string `xml:"pos"`
	Coordinates string `xml:"coordinates"`
}

// inputToPoint decodes a point payload into a referenced point. A value
// without a declared format is read as GeoJSON; a declared format the
// decoder cannot interpret is fatal. GeoJSON payloads that carry a non point
// geometry collapse to the geometry centroid.
func (b *Bridge) inputToPoint(v wps.Value) (processing.ReferencedPoint, error) {
	if v.Format != nil {
		switch v.Format.MimeType {
		case wps.FormatGML.MimeType:
			return parseGMLPoint(v.Bytes())
		case wps.FormatGeoJSON.MimeType, "application/json":
		default:
			return processing.ReferencedPoint{}, &UnsupportedFormatError{MimeType: v.Format.MimeType}
		}
	}
	return parseGeoJSONPoint(v.Bytes())
}

func parseGMLPoint(data []byte) (processing.ReferencedPoint, error) {
	var p gmlPoint
	if err := xml.Unmarshal(data, &p); err != nil {
		return processing.ReferencedPoint{}, invalidValuef("bad GML point: %v", err)
	}

	raw := p.Pos
	sep := " "
	if raw == "" {
		raw = p.Coordinates
		sep = ","
	}
	parts := strings.SplitN(strings.TrimSpace(raw), sep, 3)
	if len(parts) < 2 {
		return processing.ReferencedPoint{}, invalidValuef("GML point has no coordinates")
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return processing.ReferencedPoint{}, invalidValuef("bad GML coordinate: %s", parts[0])
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return processing.ReferencedPoint{}, invalidValuef("bad GML coordinate: %s", parts[1])
	}

	return processing.ReferencedPoint{Point: orb.Point{x, y}, CRS: p.SRSName}, nil
}

func parseGeoJSONPoint(data []byte) (processing.ReferencedPoint, error) {
	geom, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return processing.ReferencedPoint{}, invalidValuef("bad GeoJSON point: %v", err)
	}

	var point orb.Point
	switch g := geom.Geometry().(type) {
	case orb.Point:
		point = g
	default:
		point, _ = planar.CentroidArea(g)
	}

	return processing.ReferencedPoint{Point: point, CRS: geoJSONCRS(data)}, nil
}

// geoJSONCRS extracts the legacy crs member some producers still emit. The
// member was dropped from the GeoJSON spec but remains the only way a plain
// geometry payload can carry a reference system.
func geoJSONCRS(data []byte) string {
	var envelope struct {
		CRS *struct {
			Properties struct {
				Name string `json:"name"`
			} `json:"properties"`
		} `json:"crs"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.CRS == nil {
		return ""
	}
	return envelope.CRS.Properties.Name
}
