package processing

import "github.com/paulmach/orb"

// Rect is an axis-aligned rectangle in layer coordinates.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Bound returns the rectangle as an orb bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{r.MinX, r.MinY}, Max: orb.Point{r.MaxX, r.MaxY}}
}

// ReferencedRect is a rectangle paired with the coordinate reference system
// it is expressed in.
type ReferencedRect struct {
	Rect Rect
	CRS  string
}

// ReferencedPoint is a point paired with an optional coordinate reference
// system. CRS is empty when the submitted geometry carried none.
type ReferencedPoint struct {
	Point orb.Point
	CRS   string
}

// OutputLayerDef is the decoded argument for a destination sink parameter.
// The client only supplies the desired display name; the sink path is
// synthesized server side so the produced layer is always file backed.
type OutputLayerDef struct {
	// Sink is the relative output path the algorithm writes to.
	Sink string

	// Destination is the project handle receiving the produced layer.
	Destination Project

	// DestinationName is the display name requested by the client.
	DestinationName string
}

// FeatureSourceDef is the decoded argument for a feature source parameter.
type FeatureSourceDef struct {
	// Source is the resolved layer path or identifier.
	Source string

	// SelectedFeaturesOnly restricts the source to the layer's current
	// feature selection.
	SelectedFeaturesOnly bool
}
