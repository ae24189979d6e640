package processing

// ParameterKind identifies the native kind of a parameter definition.
type ParameterKind string

const (
	ParamString            ParameterKind = "string"
	ParamBoolean           ParameterKind = "boolean"
	ParamEnum              ParameterKind = "enum"
	ParamNumber            ParameterKind = "number"
	ParamField             ParameterKind = "field"
	ParamCRS               ParameterKind = "crs"
	ParamBand              ParameterKind = "band"
	ParamFile              ParameterKind = "file"
	ParamFileDestination   ParameterKind = "fileDestination"
	ParamFolderDestination ParameterKind = "folderDestination"
	ParamExtent            ParameterKind = "extent"
	ParamPoint             ParameterKind = "point"
	ParamVectorLayer       ParameterKind = "vector"
	ParamRasterLayer       ParameterKind = "raster"
	ParamMapLayer          ParameterKind = "layer"
	ParamMultipleLayers    ParameterKind = "multilayer"
	ParamFeatureSource     ParameterKind = "source"
	ParamFeatureSink       ParameterKind = "sink"
	ParamVectorDestination ParameterKind = "vectorDestination"
	ParamRasterDestination ParameterKind = "rasterDestination"
)

// IsLayerInput reports whether values of this kind travel as layer names.
func (k ParameterKind) IsLayerInput() bool {
	switch k {
	case ParamVectorLayer, ParamRasterLayer, ParamMapLayer, ParamMultipleLayers, ParamFeatureSource:
		return true
	}
	return false
}

// IsDestinationLayer reports whether this kind designates a location a
// result layer is written to.
func (k ParameterKind) IsDestinationLayer() bool {
	switch k {
	case ParamFeatureSink, ParamVectorDestination, ParamRasterDestination:
		return true
	}
	return false
}

// NumberKind is the numeric sub-kind of a number parameter.
type NumberKind int

const (
	NumberInteger NumberKind = iota
	NumberDouble
)

// FieldKind is the required sub-type of a field parameter.
type FieldKind int

const (
	FieldAny FieldKind = iota
	FieldNumeric
	FieldString
	FieldDateTime
)

func (k FieldKind) String() string {
	switch k {
	case FieldNumeric:
		return "Numeric"
	case FieldString:
		return "String"
	case FieldDateTime:
		return "DateTime"
	default:
		return "Any"
	}
}

// FileBehavior distinguishes file parameters pointing at a single file from
// those pointing at a folder.
type FileBehavior int

const (
	BehaviorFile FileBehavior = iota
	BehaviorFolder
)

// ParameterDef is a native parameter definition as declared by an algorithm.
// Only the fields relevant to the definition's Kind are meaningful.
type ParameterDef struct {
	Kind        ParameterKind
	Name        string
	Description string
	Optional    bool

	// Default may be a plain value or a boxed Variant.
	Default any

	// Enum parameters.
	Options       []string
	AllowMultiple bool

	// Number parameters.
	NumberKind NumberKind
	Minimum    float64
	Maximum    float64

	// Field parameters.
	ParentLayerParameterName string
	FieldKind                FieldKind

	// File parameters. Extension carries a leading dot (".csv").
	Behavior  FileBehavior
	Extension string

	// Destination parameters. DefaultFileExtension has no leading dot.
	DefaultFileExtension string

	// Layer parameters. DataTypes restricts acceptable source types;
	// LayerType is the element type of a multilayer parameter.
	DataTypes           []SourceType
	LayerType           SourceType
	MinimumNumberInputs int

	// Sink and vector destination parameters.
	SinkDataType SourceType

	// Destination parameters only: cleared when the produced layer must be
	// written to a file rather than kept in memory.
	SupportsNonFileBasedOutput bool

	// Freeform annotations attached by the algorithm author.
	Metadata map[string]string
}

// Variant is a boxed, possibly null default value. It keeps "no value"
// distinct from "value" until it is unwrapped at the translation boundary.
type Variant struct {
	Valid bool
	Value any
}

// NullVariant returns a Variant holding no value.
func NullVariant() Variant { return Variant{} }

// NewVariant returns a Variant holding v.
func NewVariant(v any) Variant { return Variant{Valid: true, Value: v} }
