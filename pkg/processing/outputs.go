package processing

// OutputKind identifies the native kind of an output definition.
type OutputKind string

const (
	OutputString      OutputKind = "outputString"
	OutputNumber      OutputKind = "outputNumber"
	OutputVectorLayer OutputKind = "outputVector"
	OutputRasterLayer OutputKind = "outputRaster"
	OutputMapLayer    OutputKind = "outputLayer"
	OutputHTML        OutputKind = "outputHtml"
	OutputFile        OutputKind = "outputFile"
)

// IsLayerOutput reports whether the result is a map layer merged into the
// destination project.
func (k OutputKind) IsLayerOutput() bool {
	switch k {
	case OutputVectorLayer, OutputRasterLayer, OutputMapLayer:
		return true
	}
	return false
}

// OutputDef is a native output definition as declared by an algorithm.
type OutputDef struct {
	Kind        OutputKind
	Name        string
	Description string
}
