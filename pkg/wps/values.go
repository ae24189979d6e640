package wps

import "fmt"

// Value is one submitted execution value. Data holds the raw payload; Format
// is the declared format of a complex payload; CRS is set on bounding box
// values; Href references a remote payload to be fetched instead of Data.
type Value struct {
	Data   any     `json:"data,omitempty"`
	Format *Format `json:"format,omitempty"`
	CRS    string  `json:"crs,omitempty"`
	Href   string  `json:"href,omitempty"`
}

// String returns the payload rendered as a string.
func (v Value) String() string {
	switch d := v.Data.(type) {
	case string:
		return d
	case []byte:
		return string(d)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", d)
	}
}

// Bytes returns the payload rendered as bytes.
func (v Value) Bytes() []byte {
	switch d := v.Data.(type) {
	case []byte:
		return d
	case string:
		return []byte(d)
	case nil:
		return nil
	default:
		return []byte(fmt.Sprintf("%v", d))
	}
}
