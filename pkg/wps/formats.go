// Package wps defines the protocol-facing input and output shapes advertised
// to process-execution clients: literal, complex and bounding box
// descriptors, plus the value objects submitted at execution time.
package wps

// Format describes one supported encoding of a complex value.
type Format struct {
	MimeType string `json:"mime_type"`
	Encoding string `json:"encoding,omitempty"`
	Schema   string `json:"schema,omitempty"`
}

// NewFormat returns a Format with the given MIME type.
func NewFormat(mimeType string) Format {
	return Format{MimeType: mimeType}
}

// Well-known formats.
var (
	FormatGeoJSON = Format{MimeType: "application/vnd.geo+json", Schema: "http://geojson.org/geojson-spec.html"}
	FormatGML     = Format{MimeType: "application/gml+xml"}
	FormatWMS     = Format{MimeType: "application/x-ogc-wms"}
	FormatWFS     = Format{MimeType: "application/x-ogc-wfs"}
	FormatWCS     = Format{MimeType: "application/x-ogc-wcs"}
	FormatHTML    = Format{MimeType: "text/html"}
	FormatBinary  = Format{MimeType: "application/octet-stream"}
)

// Metadata is a key/value annotation attached to a descriptor. It is the
// open-ended side channel for information the three descriptor shapes cannot
// express natively; consumers interpret keys by convention and pass unknown
// keys through opaquely.
type Metadata struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
