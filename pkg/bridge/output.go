package bridge

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
	"github.com/geotoolbox/wpsbridge/pkg/wps"
)

// ParseOutputDefinition translates one native output definition into the
// protocol output shape advertising it. Layer outputs are merged into the
// destination project and delivered only as service references. For generic
// file outputs the algorithm catalog is consulted: a destination-file input
// declared under the same name determines the output's real MIME type and
// may override the reference-mode default.
func (b *Bridge) ParseOutputDefinition(outdef *processing.OutputDef, alg processing.Algorithm) (wps.Output, error) {
	base := wps.OutputBase{
		Identifier: outdef.Name,
		Title:      outdef.Description,
		Abstract:   outdef.Description,
	}

	switch outdef.Kind {
	case processing.OutputString:
		return &wps.LiteralOutput{OutputBase: base, DataType: "string"}, nil

	case processing.OutputNumber:
		return &wps.LiteralOutput{OutputBase: base, DataType: "float"}, nil

	case processing.OutputVectorLayer:
		return &wps.ComplexOutput{
			OutputBase:       base,
			SupportedFormats: []wps.Format{wps.FormatWMS, wps.FormatWFS},
			AsReference:      true,
		}, nil

	case processing.OutputRasterLayer:
		return &wps.ComplexOutput{
			OutputBase:       base,
			SupportedFormats: []wps.Format{wps.FormatWMS, wps.FormatWCS},
			AsReference:      true,
		}, nil

	case processing.OutputMapLayer:
		return &wps.ComplexOutput{
			OutputBase:       base,
			SupportedFormats: []wps.Format{wps.FormatWMS},
			AsReference:      true,
		}, nil

	case processing.OutputHTML:
		return &wps.ComplexOutput{
			OutputBase:       base,
			SupportedFormats: []wps.Format{wps.NewFormat(mimeTypeByExtension(".html"))},
			AsReference:      b.outputFileAsReference,
		}, nil

	case processing.OutputFile:
		asReference := b.outputFileAsReference
		mimeType := ""
		if alg != nil {
			if indef := alg.ParameterDefinition(outdef.Name); indef != nil && indef.Kind == processing.ParamFileDestination {
				mimeType = mimeTypeByExtension("." + indef.DefaultFileExtension)
				if raw, ok := indef.Metadata[metaAsReference]; ok {
					if v, err := strconv.ParseBool(raw); err == nil {
						asReference = v
					}
				}
			}
		}
		if mimeType == "" {
			b.log.Warn("cannot set file type for output", zap.String("output", outdef.Name))
			mimeType = wps.FormatBinary.MimeType
		}
		return &wps.ComplexOutput{
			OutputBase:       base,
			SupportedFormats: []wps.Format{wps.NewFormat(mimeType)},
			AsReference:      asReference,
		}, nil

	default:
		return nil, &UnsupportedOutputKindError{Name: outdef.Name, Kind: outdef.Kind}
	}
}
