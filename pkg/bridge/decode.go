package bridge

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
	"github.com/geotoolbox/wpsbridge/pkg/project"
	"github.com/geotoolbox/wpsbridge/pkg/wps"
)

// InputToProcessing converts the submitted values of one parameter into the
// native argument the algorithm expects, returning the native parameter name
// alongside it. A missing required value is not fatal here: it decodes to a
// nil argument with a warning and is rejected downstream by the framework.
func (b *Bridge) InputToProcessing(ctx context.Context, identifier string, values []wps.Value, alg processing.Algorithm, pctx *project.Context) (string, any, error) {
	param := alg.ParameterDefinition(identifier)
	if param == nil {
		return "", nil, invalidValuef("unknown parameter '%s'", identifier)
	}

	if len(values) == 0 {
		if !param.Optional {
			b.log.Warn("required input has no value", zap.String("input", identifier))
		}
		return param.Name, nil, nil
	}

	var (
		value any
		err   error
	)
	switch {
	case param.Kind.IsDestinationLayer():
		// The produced layer must remain addressable after the request,
		// so in-memory outputs are disabled and the sink path is
		// synthesized server side. The client only picks the display
		// name.
		param.SupportsNonFileBasedOutput = false
		value = &processing.OutputLayerDef{
			Sink:            fmt.Sprintf("./%s.%s", param.Name, param.DefaultFileExtension),
			Destination:     pctx.Destination,
			DestinationName: values[0].String(),
		}

	case param.Kind == processing.ParamFeatureSource:
		source, hasSelection, perr := b.ParseLayerSpec(values[0].String(), pctx, true)
		if perr != nil {
			return "", nil, perr
		}
		value = processing.FeatureSourceDef{Source: source, SelectedFeaturesOnly: hasSelection}

	case param.Kind.IsLayerInput():
		if len(values) > 1 {
			layers := make([]string, 0, len(values))
			for _, v := range values {
				p, _, perr := b.ParseLayerSpec(v.String(), pctx, false)
				if perr != nil {
					return "", nil, perr
				}
				layers = append(layers, p)
			}
			value = layers
		} else {
			value, _, err = b.ParseLayerSpec(values[0].String(), pctx, false)
		}

	case param.Kind == processing.ParamPoint:
		value, err = b.inputToPoint(values[0])

	case param.Kind == processing.ParamEnum:
		value, err = decodeEnum(param, values)

	case param.Kind == processing.ParamExtent:
		value, err = inputToExtent(values[0])

	case param.Kind == processing.ParamCRS:
		// May be an authority code or a property expression; the
		// algorithm reinterprets it.
		value = values[0].Data

	case param.Kind == processing.ParamFileDestination || param.Kind == processing.ParamFolderDestination:
		submitted := values[0].String()
		normalized := filepath.Base(filepath.Clean(submitted))
		if normalized != submitted {
			b.log.Warn("value for file or folder destination has been truncated",
				zap.String("input", identifier),
				zap.String("from", submitted),
				zap.String("to", normalized))
		}
		value = normalized

	case param.Kind == processing.ParamFile:
		if param.Behavior == processing.BehaviorFolder {
			value = values[0].String()
			break
		}
		value, err = b.inputToFile(ctx, values[0], param, pctx)

	default:
		value = values[0].Data
	}
	if err != nil {
		return "", nil, err
	}

	return param.Name, value, nil
}

// decodeEnum maps submitted option strings back to their indices in the
// option list.
func decodeEnum(param *processing.ParameterDef, values []wps.Value) (any, error) {
	if param.AllowMultiple && len(values) > 1 {
		indices := make([]int, 0, len(values))
		for _, v := range values {
			i, err := enumIndex(param, v.String())
			if err != nil {
				return nil, err
			}
			indices = append(indices, i)
		}
		return indices, nil
	}
	return enumIndex(param, values[0].String())
}

func enumIndex(param *processing.ParameterDef, option string) (int, error) {
	i := slices.Index(param.Options, option)
	if i < 0 {
		return 0, invalidValuef("'%s' is not an option of parameter '%s'", option, param.Name)
	}
	return i, nil
}

// inputToExtent parses a bounding box value into a referenced rectangle. The
// submitted component order is min-x, max-x, min-y, max-y.
func inputToExtent(v wps.Value) (processing.ReferencedRect, error) {
	coords, err := extentCoords(v.Data)
	if err != nil {
		return processing.ReferencedRect{}, err
	}
	rect := processing.Rect{
		MinX: coords[0],
		MaxX: coords[1],
		MinY: coords[2],
		MaxY: coords[3],
	}
	return processing.ReferencedRect{Rect: rect, CRS: v.CRS}, nil
}

func extentCoords(data any) ([4]float64, error) {
	var coords [4]float64

	toFloats := func(parts []string) error {
		if len(parts) < 4 {
			return invalidValuef("extent needs four components, got %d", len(parts))
		}
		for i := 0; i < 4; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
			if err != nil {
				return invalidValuef("bad extent component: %s", parts[i])
			}
			coords[i] = v
		}
		return nil
	}

	switch d := data.(type) {
	case []float64:
		if len(d) < 4 {
			return coords, invalidValuef("extent needs four components, got %d", len(d))
		}
		copy(coords[:], d[:4])
	case [4]float64:
		coords = d
	case []string:
		if err := toFloats(d); err != nil {
			return coords, err
		}
	case string:
		if err := toFloats(strings.Split(d, ",")); err != nil {
			return coords, err
		}
	default:
		return coords, invalidValuef("unsupported extent data: %v", data)
	}

	return coords, nil
}

// inputToFile stages the submitted payload as a file inside the execution
// working directory, named after the parameter with its declared extension,
// and returns the base name for the algorithm to resolve.
func (b *Bridge) inputToFile(ctx context.Context, v wps.Value, param *processing.ParameterDef, pctx *project.Context) (string, error) {
	name := param.Name + param.Extension
	target := filepath.Join(pctx.WorkDir, name)

	if err := os.MkdirAll(pctx.WorkDir, 0o755); err != nil {
		return "", fmt.Errorf("creating workdir: %w", err)
	}

	b.log.Debug("saving input data", zap.String("file", target))

	if v.Href != "" {
		ok, err := b.fetcher.Exists(ctx, v.Href)
		if err != nil {
			return "", fmt.Errorf("checking input reference %s: %w", v.Href, err)
		}
		if !ok {
			return "", invalidValuef("input reference not found: %s", v.Href)
		}

		rc, err := b.fetcher.Get(ctx, v.Href)
		if err != nil {
			return "", fmt.Errorf("fetching input reference %s: %w", v.Href, err)
		}
		defer rc.Close()

		f, err := os.Create(target)
		if err != nil {
			return "", fmt.Errorf("creating input file: %w", err)
		}
		defer f.Close()

		if _, err := io.Copy(f, rc); err != nil {
			return "", fmt.Errorf("saving input reference: %w", err)
		}
		return name, nil
	}

	if err := os.WriteFile(target, v.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("saving input data: %w", err)
	}
	return name, nil
}
