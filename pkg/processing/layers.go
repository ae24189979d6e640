package processing

// Layer is a live map layer registered in a project.
type Layer interface {
	// Name returns the layer name used to reference it in submitted values.
	Name() string

	// Type returns the broad nature of the layer.
	Type() LayerType
}

// VectorLayer is a layer holding discrete features. Selection is a stateful,
// queryable operation on the live layer object.
type VectorLayer interface {
	Layer

	// GeometryType returns the geometry class of the layer's features.
	GeometryType() GeometryType

	// SelectByRect marks the features intersecting rect as selected.
	SelectByRect(rect Rect, behavior SelectBehavior) error

	// SelectByExpression marks the features matching a filter expression
	// as selected.
	SelectByExpression(expression string, behavior SelectBehavior) error

	// SelectedFeatureIDs returns the identifiers of the currently selected
	// features in ascending order.
	SelectedFeatureIDs() []int

	// ClearSelection removes any current selection.
	ClearSelection()
}

// RasterLayer is a gridded layer. It carries no feature selection.
type RasterLayer interface {
	Layer
}

// Project resolves layer names to live layer objects.
type Project interface {
	// MapLayers returns every registered layer in registration order.
	MapLayers() []Layer

	// MapLayer returns the layer registered under name, or nil.
	MapLayer(name string) Layer
}
