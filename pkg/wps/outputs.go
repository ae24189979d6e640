package wps

// OutputBase carries the fields common to the output shapes.
type OutputBase struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	Abstract   string `json:"abstract,omitempty"`
}

// Output is one advertised process output. The encoder resolves its data,
// format and location in place once the algorithm has produced a result.
type Output interface {
	isOutput()
}

// LiteralOutput advertises a typed scalar result.
type LiteralOutput struct {
	OutputBase
	DataType string `json:"data_type"`

	// Data is the inline result value, set at execution time.
	Data any `json:"data,omitempty"`
}

// ComplexOutput advertises a structured result, delivered either inline or
// as a reference URL.
type ComplexOutput struct {
	OutputBase
	SupportedFormats []Format `json:"supported_formats,omitempty"`
	AsReference      bool     `json:"as_reference"`

	// Resolved at execution time.
	OutputFormat string `json:"output_format,omitempty"`
	URL          string `json:"url,omitempty"`
	File         string `json:"file,omitempty"`
	Data         any    `json:"data,omitempty"`
}

func (*LiteralOutput) isOutput() {}
func (*ComplexOutput) isOutput() {}
