package project

import (
	"fmt"
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/paulmach/orb"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
)

// MemoryProject is an in-memory layer registry.
type MemoryProject struct {
	mu     sync.RWMutex
	order  []string
	layers map[string]processing.Layer
}

// NewMemoryProject creates an empty in-memory project.
func NewMemoryProject() *MemoryProject {
	return &MemoryProject{layers: make(map[string]processing.Layer)}
}

// AddMapLayer registers a layer. Re-registering a name replaces the layer.
func (p *MemoryProject) AddMapLayer(l processing.Layer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	name := l.Name()
	if _, ok := p.layers[name]; !ok {
		p.order = append(p.order, name)
	}
	p.layers[name] = l
}

// MapLayers returns all layers in registration order.
func (p *MemoryProject) MapLayers() []processing.Layer {
	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make([]processing.Layer, 0, len(p.order))
	for _, name := range p.order {
		result = append(result, p.layers[name])
	}
	return result
}

// MapLayer returns the layer registered under name, or nil.
func (p *MemoryProject) MapLayer(name string) processing.Layer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.layers[name]
}

// Count returns the number of registered layers.
func (p *MemoryProject) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.layers)
}

// Feature is one record of an in-memory vector layer.
type Feature struct {
	ID         int
	Geometry   orb.Geometry
	Attributes map[string]any
}

// MemoryVectorLayer is an in-memory vector layer with stateful feature
// selection. Rectangle selection matches features whose geometry bounds
// intersect the rectangle; expression selection evaluates an expr filter
// against each feature's attributes.
type MemoryVectorLayer struct {
	name     string
	geomType processing.GeometryType
	features []Feature

	mu       sync.Mutex
	selected map[int]struct{}
}

// NewMemoryVectorLayer creates a vector layer holding the given features.
func NewMemoryVectorLayer(name string, geomType processing.GeometryType, features []Feature) *MemoryVectorLayer {
	return &MemoryVectorLayer{
		name:     name,
		geomType: geomType,
		features: features,
		selected: make(map[int]struct{}),
	}
}

func (l *MemoryVectorLayer) Name() string { return l.name }

func (l *MemoryVectorLayer) Type() processing.LayerType { return processing.VectorLayerType }

func (l *MemoryVectorLayer) GeometryType() processing.GeometryType { return l.geomType }

// SelectByRect implements processing.VectorLayer.
func (l *MemoryVectorLayer) SelectByRect(rect processing.Rect, behavior processing.SelectBehavior) error {
	rb := rect.Bound()

	matched := make(map[int]struct{})
	for _, f := range l.features {
		if f.Geometry == nil {
			continue
		}
		gb := f.Geometry.Bound()
		if gb.Min[0] <= rb.Max[0] && gb.Max[0] >= rb.Min[0] &&
			gb.Min[1] <= rb.Max[1] && gb.Max[1] >= rb.Min[1] {
			matched[f.ID] = struct{}{}
		}
	}

	l.applySelection(matched, behavior)
	return nil
}

// SelectByExpression implements processing.VectorLayer.
func (l *MemoryVectorLayer) SelectByExpression(expression string, behavior processing.SelectBehavior) error {
	program, err := expr.Compile(expression, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("compiling selection expression: %w", err)
	}

	matched := make(map[int]struct{})
	for _, f := range l.features {
		out, err := expr.Run(program, f.Attributes)
		if err != nil {
			return fmt.Errorf("evaluating selection expression: %w", err)
		}
		if ok, _ := out.(bool); ok {
			matched[f.ID] = struct{}{}
		}
	}

	l.applySelection(matched, behavior)
	return nil
}

// SelectedFeatureIDs implements processing.VectorLayer.
func (l *MemoryVectorLayer) SelectedFeatureIDs() []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make([]int, 0, len(l.selected))
	for id := range l.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ClearSelection implements processing.VectorLayer.
func (l *MemoryVectorLayer) ClearSelection() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.selected = make(map[int]struct{})
}

func (l *MemoryVectorLayer) applySelection(matched map[int]struct{}, behavior processing.SelectBehavior) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch behavior {
	case processing.IntersectSelection:
		next := make(map[int]struct{})
		for id := range matched {
			if _, ok := l.selected[id]; ok {
				next[id] = struct{}{}
			}
		}
		l.selected = next
	default:
		l.selected = matched
	}
}

// MemoryRasterLayer is an in-memory raster layer stub carrying only its
// registry identity.
type MemoryRasterLayer struct {
	name string
}

// NewMemoryRasterLayer creates a raster layer.
func NewMemoryRasterLayer(name string) *MemoryRasterLayer {
	return &MemoryRasterLayer{name: name}
}

func (l *MemoryRasterLayer) Name() string { return l.name }

func (l *MemoryRasterLayer) Type() processing.LayerType { return processing.RasterLayerType }
