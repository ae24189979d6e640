package wps

// InputBase carries the fields common to the three input shapes.
type InputBase struct {
	Identifier string     `json:"identifier"`
	Title      string     `json:"title"`
	Abstract   string     `json:"abstract,omitempty"`
	MinOccurs  int        `json:"min_occurs"`
	MaxOccurs  int        `json:"max_occurs"`
	Metadata   []Metadata `json:"metadata,omitempty"`
}

// AppendMetadata attaches additional metadata entries, preserving order.
func (b *InputBase) AppendMetadata(md ...Metadata) {
	b.Metadata = append(b.Metadata, md...)
}

// Input is one advertised process input. Exactly one of the three concrete
// shapes is produced per native parameter definition.
type Input interface {
	isInput()
	AppendMetadata(md ...Metadata)
}

// AllowedRange is a single inclusive numeric interval.
type AllowedRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// LiteralInput advertises a typed scalar input.
type LiteralInput struct {
	InputBase
	DataType      string        `json:"data_type"`
	AllowedValues []string      `json:"allowed_values,omitempty"`
	AllowedRange  *AllowedRange `json:"allowed_range,omitempty"`
	Default       any           `json:"default,omitempty"`
}

// ComplexInput advertises a structured input with one or more supported
// formats.
type ComplexInput struct {
	InputBase
	SupportedFormats []Format `json:"supported_formats,omitempty"`
}

// BoundingBoxInput advertises a rectangular extent input.
type BoundingBoxInput struct {
	InputBase
	CRSs []string `json:"crss"`
}

func (*LiteralInput) isInput()     {}
func (*ComplexInput) isInput()     {}
func (*BoundingBoxInput) isInput() {}
