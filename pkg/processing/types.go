package processing

// SourceType enumerates the acceptable source data types of a layer
// parameter.
type SourceType int

const (
	TypeMapLayer SourceType = iota
	TypeVectorAnyGeometry
	TypeVectorPoint
	TypeVectorLine
	TypeVectorPolygon
	TypeRaster
	TypeFile
	TypeVector
)

func (t SourceType) String() string {
	switch t {
	case TypeMapLayer:
		return "TypeMapLayer"
	case TypeVectorAnyGeometry:
		return "TypeVectorAnyGeometry"
	case TypeVectorPoint:
		return "TypeVectorPoint"
	case TypeVectorLine:
		return "TypeVectorLine"
	case TypeVectorPolygon:
		return "TypeVectorPolygon"
	case TypeRaster:
		return "TypeRaster"
	case TypeFile:
		return "TypeFile"
	case TypeVector:
		return "TypeVector"
	default:
		return "TypeUnknown"
	}
}

// LayerType is the broad nature of a map layer.
type LayerType int

const (
	VectorLayerType LayerType = iota
	RasterLayerType
)

// GeometryType is the geometry class of a vector layer.
type GeometryType int

const (
	PointGeometry GeometryType = iota
	LineGeometry
	PolygonGeometry
	UnknownGeometry
)

// SelectBehavior controls how a new selection combines with the current one.
type SelectBehavior int

const (
	// SetSelection replaces the current selection.
	SetSelection SelectBehavior = iota
	// IntersectSelection keeps only features present in both the current
	// and the new selection.
	IntersectSelection
)
