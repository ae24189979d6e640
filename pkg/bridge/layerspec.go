package bridge

import (
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
	"github.com/geotoolbox/wpsbridge/pkg/project"
)

// ParseLayerSpec parses a layer reference string. A file scheme resolves the
// path through the context; a layer scheme or no scheme passes the path
// through unchanged; any other scheme is a client-input fault.
//
// With allowSelection set, the query parameters 'rect' (comma-separated
// bounding rectangle) and 'select' (filter expression) apply a feature
// selection to the live layer. The rectangle is applied first; an expression
// then intersects the rectangle's result, so both together narrow twice.
// Selecting on a non-vector layer is skipped with a warning; any other
// selection failure is fatal.
func (b *Bridge) ParseLayerSpec(spec string, ctx *project.Context, allowSelection bool) (string, bool, error) {
	u, err := url.Parse(spec)
	if err != nil {
		return "", false, invalidValuef("bad layer spec: %s", spec)
	}

	path := u.Path
	if u.Opaque != "" {
		path = u.Opaque
	}

	switch u.Scheme {
	case "file":
		path = ctx.ResolvePath(path)
	case "", "layer":
		// Pass through unchanged.
	default:
		return "", false, invalidValuef("bad scheme: %s", spec)
	}

	if !allowSelection {
		return path, false, nil
	}

	query := u.Query()
	rects := query["rect"]
	requests := query["select"]
	if len(rects) == 0 && len(requests) == 0 {
		return path, false, nil
	}

	layer := ctx.MapLayer(path)
	if layer == nil {
		b.log.Error("no layer path for spec", zap.String("spec", spec))
		return "", false, invalidValuef("no layer '%s' found", path)
	}

	vec, ok := layer.(processing.VectorLayer)
	if !ok {
		b.log.Warn("can apply selection only to vector layer",
			zap.String("layer", layer.Name()))
		return path, true, nil
	}

	b.log.Debug("applying features selection", zap.String("spec", spec))

	behavior := processing.SetSelection
	if len(rects) > 0 {
		rect, err := parseSelectionRect(rects[len(rects)-1])
		if err != nil {
			return "", false, &SelectionError{Err: err}
		}
		if err := vec.SelectByRect(rect, behavior); err != nil {
			return "", false, &SelectionError{Err: err}
		}
		behavior = processing.IntersectSelection
	}
	if len(requests) > 0 {
		if err := vec.SelectByExpression(requests[len(requests)-1], behavior); err != nil {
			return "", false, &SelectionError{Err: err}
		}
	}

	return path, true, nil
}

// parseSelectionRect parses the first four comma-separated components of a
// 'rect' query value as min-x, min-y, max-x, max-y.
func parseSelectionRect(raw string) (processing.Rect, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 4 {
		return processing.Rect{}, invalidValuef("bad selection rect: %s", raw)
	}

	var coords [4]float64
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return processing.Rect{}, invalidValuef("bad selection rect: %s", raw)
		}
		coords[i] = v
	}

	return processing.Rect{MinX: coords[0], MinY: coords[1], MaxX: coords[2], MaxY: coords[3]}, nil
}
