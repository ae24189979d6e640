package bridge

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
	"github.com/geotoolbox/wpsbridge/pkg/project"
	"github.com/geotoolbox/wpsbridge/pkg/wps"
)

// ProcessingToOutput writes an algorithm result value into the matching
// advertised output. Layer results become a reference to an OWS endpoint
// built from outputURI; file results are staged through the store URL of the
// execution context.
func (b *Bridge) ProcessingToOutput(outdef *processing.OutputDef, value any, out wps.Output, outputURI string, pctx *project.Context) error {
	switch outdef.Kind {
	case processing.OutputString:
		lit, ok := out.(*wps.LiteralOutput)
		if !ok {
			return fmt.Errorf("output '%s': expected literal output, got %T", outdef.Name, out)
		}
		lit.Data = fmt.Sprint(value)
		return nil

	case processing.OutputNumber:
		lit, ok := out.(*wps.LiteralOutput)
		if !ok {
			return fmt.Errorf("output '%s': expected literal output, got %T", outdef.Name, out)
		}
		lit.Data = value
		return nil

	case processing.OutputVectorLayer, processing.OutputRasterLayer, processing.OutputMapLayer:
		co, ok := out.(*wps.ComplexOutput)
		if !ok {
			return fmt.Errorf("output '%s': expected complex output, got %T", outdef.Name, out)
		}
		co.AsReference = true
		co.OutputFormat = wps.FormatWMS.MimeType
		query := url.Values{"layer": {fmt.Sprint(value)}}
		co.URL = outputURI + "&" + query.Encode()
		return nil

	case processing.OutputHTML:
		co, ok := out.(*wps.ComplexOutput)
		if !ok {
			return fmt.Errorf("output '%s': expected complex output, got %T", outdef.Name, out)
		}
		co.OutputFormat = wps.FormatHTML.MimeType
		b.toOutputFile(co, fmt.Sprint(value), pctx)
		return nil

	case processing.OutputFile:
		co, ok := out.(*wps.ComplexOutput)
		if !ok {
			return fmt.Errorf("output '%s': expected complex output, got %T", outdef.Name, out)
		}
		name := fmt.Sprint(value)
		mimeType := mimeTypeByExtension(filepath.Ext(name))
		if mimeType == "" {
			b.log.Warn("cannot resolve mime type for output file",
				zap.String("output", outdef.Name), zap.String("file", name))
			mimeType = wps.FormatBinary.MimeType
		}
		co.OutputFormat = mimeType
		b.toOutputFile(co, name, pctx)
		return nil

	default:
		return &UnsupportedOutputKindError{Name: outdef.Name, Kind: outdef.Kind}
	}
}

// toOutputFile points the output at a produced file in the working
// directory. Whether the result travels inline or by reference was decided
// when the output was described; here only its location is resolved:
// reference mode publishes the store URL, inline mode the file to read back.
func (b *Bridge) toOutputFile(co *wps.ComplexOutput, value string, pctx *project.Context) {
	name := filepath.Base(value)
	if co.AsReference {
		co.URL = strings.ReplaceAll(pctx.StoreURL, "{file}", name)
	} else {
		co.File = filepath.Join(pctx.WorkDir, name)
	}
}
