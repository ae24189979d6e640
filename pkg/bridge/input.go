package bridge

import (
	"slices"
	"sort"
	"strings"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
	"github.com/geotoolbox/wpsbridge/pkg/project"
	"github.com/geotoolbox/wpsbridge/pkg/wps"
)

// ParseInputDefinition translates one native parameter definition into the
// single protocol input shape advertising it. When a map context is supplied
// the candidate layers of the project narrow the allowed values of layer
// inputs. The translation is total over the supported kinds; an unknown kind
// aborts with UnsupportedInputKindError.
func (b *Bridge) ParseInputDefinition(param *processing.ParameterDef, mc *project.MapContext) (wps.Input, error) {
	base := wps.InputBase{
		Identifier: param.Name,
		Title:      strings.ReplaceAll(param.Name, "_", " "),
		Abstract:   param.Description,
		MinOccurs:  1,
		MaxOccurs:  1,
		Metadata: []wps.Metadata{
			{Key: metaType, Value: string(param.Kind)},
		},
	}
	if param.Optional {
		base.MinOccurs = 0
	}

	// Defaults may arrive boxed; unwrap once before dispatch.
	def := unwrapVariant(param.Default)

	var (
		inp wps.Input
		err error
	)
	switch param.Kind {
	case processing.ParamString, processing.ParamBoolean, processing.ParamEnum,
		processing.ParamNumber, processing.ParamField, processing.ParamCRS,
		processing.ParamBand:
		inp, err = b.parseLiteralInput(param, base, def)

	case processing.ParamVectorLayer, processing.ParamRasterLayer,
		processing.ParamMapLayer, processing.ParamMultipleLayers,
		processing.ParamFeatureSource, processing.ParamFeatureSink,
		processing.ParamVectorDestination, processing.ParamRasterDestination:
		inp, err = b.parseLayerInput(param, base, def, mc)

	case processing.ParamExtent:
		// Advertise the default only; the effective CRS is resolved at
		// execution time.
		inp = &wps.BoundingBoxInput{InputBase: base, CRSs: []string{defaultExtentCRS}}

	case processing.ParamFile, processing.ParamFileDestination,
		processing.ParamFolderDestination:
		inp, err = b.parseFileInput(param, base, def)

	case processing.ParamPoint:
		inp = &wps.ComplexInput{
			InputBase:        base,
			SupportedFormats: []wps.Format{wps.FormatGeoJSON, wps.FormatGML},
		}

	default:
		err = &UnsupportedInputKindError{Name: param.Name, Kind: param.Kind}
	}
	if err != nil {
		return nil, err
	}

	appendFreeformMetadata(inp, param)
	return inp, nil
}

// parseLiteralInput handles the scalar literal kinds.
func (b *Bridge) parseLiteralInput(param *processing.ParameterDef, base wps.InputBase, def any) (wps.Input, error) {
	lit := &wps.LiteralInput{InputBase: base, Default: def}

	switch param.Kind {
	case processing.ParamString:
		lit.DataType = "string"

	case processing.ParamBoolean:
		lit.DataType = "boolean"

	case processing.ParamEnum:
		options := param.Options
		lit.DataType = "string"
		lit.AllowedValues = options
		if param.AllowMultiple {
			lit.MaxOccurs = len(options)
		}
		if def != nil {
			// Native enum defaults are indices into the option list;
			// clients see the option string.
			switch d := def.(type) {
			case int:
				if d < 0 || d >= len(options) {
					return nil, invalidValuef("enum default index out of range: %d", d)
				}
				lit.Default = options[d]
			case []int:
				if len(d) == 0 || d[0] < 0 || d[0] >= len(options) {
					return nil, invalidValuef("unsupported default value: %v", def)
				}
				lit.Default = options[d[0]]
			default:
				return nil, invalidValuef("unsupported default value: %v", def)
			}
		}

	case processing.ParamNumber:
		if param.NumberKind == processing.NumberInteger {
			lit.DataType = "integer"
		} else {
			lit.DataType = "float"
		}
		lit.AllowedRange = &wps.AllowedRange{Min: param.Minimum, Max: param.Maximum}

	case processing.ParamField:
		lit.DataType = "string"
		lit.AppendMetadata(
			wps.Metadata{Key: metaParentLayer, Value: param.ParentLayerParameterName},
			wps.Metadata{Key: metaDataType, Value: param.FieldKind.String()},
		)

	case processing.ParamCRS:
		lit.DataType = "string"

	case processing.ParamBand:
		lit.DataType = "nonNegativeInteger"
	}

	return lit, nil
}

// parseLayerInput handles layer sources and destination sinks. Layers travel
// as name or URI strings in both directions, so every layer kind is a
// string-typed literal input.
func (b *Bridge) parseLayerInput(param *processing.ParameterDef, base wps.InputBase, def any, mc *project.MapContext) (wps.Input, error) {
	lit := &wps.LiteralInput{InputBase: base, DataType: "string", Default: def}

	switch {
	case param.Kind.IsLayerInput():
		b.resolveAllowedLayers(param, lit, mc)

	case param.Kind == processing.ParamRasterDestination:
		lit.AppendMetadata(wps.Metadata{Key: metaExtension, Value: param.DefaultFileExtension})

	case param.Kind == processing.ParamVectorDestination || param.Kind == processing.ParamFeatureSink:
		lit.AppendMetadata(
			wps.Metadata{Key: metaDataType, Value: param.SinkDataType.String()},
			wps.Metadata{Key: metaExtension, Value: param.DefaultFileExtension},
		)
	}

	return lit, nil
}

// resolveAllowedLayers records the acceptable source types of a layer input
// and, when a map context is available, narrows the allowed values to the
// names of the project layers admissible for those types.
func (b *Bridge) resolveAllowedLayers(param *processing.ParameterDef, lit *wps.LiteralInput, mc *project.MapContext) {
	if param.Kind == processing.ParamMultipleLayers {
		if param.MinimumNumberInputs >= 1 {
			lit.MinOccurs = param.MinimumNumberInputs
		} else {
			lit.MinOccurs = 0
		}
		lit.MaxOccurs = b.maxMultiLayerOccurs
	}

	datatypes := param.DataTypes
	if len(datatypes) == 0 {
		switch param.Kind {
		case processing.ParamVectorLayer, processing.ParamFeatureSource:
			datatypes = []processing.SourceType{processing.TypeVector}
		case processing.ParamRasterLayer:
			datatypes = []processing.SourceType{processing.TypeRaster}
		case processing.ParamMultipleLayers:
			datatypes = []processing.SourceType{param.LayerType}
		default:
			datatypes = []processing.SourceType{processing.TypeMapLayer}
		}
	}

	names := make([]string, len(datatypes))
	for i, t := range datatypes {
		names[i] = t.String()
	}
	lit.AppendMetadata(wps.Metadata{Key: metaDataTypes, Value: strings.Join(names, ",")})

	// Nothing more to do without a project context.
	if mc == nil || mc.Project == nil {
		return
	}

	allowed := []string{}
	for _, lyr := range mc.Project.MapLayers() {
		if layerAllowed(lyr, datatypes) {
			allowed = append(allowed, lyr.Name())
		}
	}
	lit.AllowedValues = allowed

	if param.Kind == processing.ParamMultipleLayers {
		lit.MaxOccurs = len(allowed)
	}
}

// layerAllowed reports whether a project layer's own nature intersects the
// declared acceptable source types.
func layerAllowed(lyr processing.Layer, datatypes []processing.SourceType) bool {
	has := func(t processing.SourceType) bool { return slices.Contains(datatypes, t) }

	switch lyr.Type() {
	case processing.VectorLayerType:
		vec, ok := lyr.(processing.VectorLayer)
		if !ok {
			return has(processing.TypeVectorAnyGeometry) || has(processing.TypeVector) || has(processing.TypeMapLayer)
		}
		geomtype := vec.GeometryType()
		return (geomtype == processing.PointGeometry && has(processing.TypeVectorPoint)) ||
			(geomtype == processing.LineGeometry && has(processing.TypeVectorLine)) ||
			(geomtype == processing.PolygonGeometry && has(processing.TypeVectorPolygon)) ||
			has(processing.TypeVectorAnyGeometry) ||
			has(processing.TypeVector) ||
			has(processing.TypeMapLayer)

	case processing.RasterLayerType:
		return has(processing.TypeRaster) || has(processing.TypeMapLayer)
	}

	return false
}

// parseFileInput handles file parameters and file or folder destinations.
func (b *Bridge) parseFileInput(param *processing.ParameterDef, base wps.InputBase, def any) (wps.Input, error) {
	switch param.Kind {
	case processing.ParamFile:
		if param.Behavior == processing.BehaviorFolder {
			return &wps.LiteralInput{InputBase: base, DataType: "string", Default: def}, nil
		}
		cplx := &wps.ComplexInput{InputBase: base}
		if param.Extension != "" {
			if typ := mimeTypeByExtension(param.Extension); typ != "" {
				cplx.SupportedFormats = []wps.Format{wps.NewFormat(typ)}
			}
			cplx.AppendMetadata(wps.Metadata{Key: metaExtension, Value: param.Extension})
		}
		return cplx, nil

	case processing.ParamFileDestination:
		lit := &wps.LiteralInput{InputBase: base, DataType: "string", Default: def}
		lit.AppendMetadata(wps.Metadata{
			Key:   metaFormat,
			Value: mimeTypeByExtension("." + param.DefaultFileExtension),
		})
		return lit, nil

	default: // folderDestination
		return &wps.LiteralInput{InputBase: base, DataType: "string", Default: def}, nil
	}
}

// unwrapVariant reduces a boxed default value to its underlying scalar, or
// nil when the box holds no value.
func unwrapVariant(v any) any {
	switch boxed := v.(type) {
	case processing.Variant:
		if !boxed.Valid {
			return nil
		}
		return boxed.Value
	case *processing.Variant:
		if boxed == nil || !boxed.Valid {
			return nil
		}
		return boxed.Value
	}
	return v
}

// appendFreeformMetadata copies the definition's own annotations onto the
// translated input, key-prefixed to avoid collisions with reserved entries.
func appendFreeformMetadata(inp wps.Input, param *processing.ParameterDef) {
	if len(param.Metadata) == 0 {
		return
	}
	keys := make([]string, 0, len(param.Metadata))
	for k := range param.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		inp.AppendMetadata(wps.Metadata{Key: metaFreeformPrefix + k, Value: param.Metadata[k]})
	}
}
