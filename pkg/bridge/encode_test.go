package bridge

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
	"github.com/geotoolbox/wpsbridge/pkg/wps"
)

func TestProcessingToOutput_Literals(t *testing.T) {
	b := New()
	pctx := testContext(t)

	str := &wps.LiteralOutput{}
	err := b.ProcessingToOutput(&processing.OutputDef{Kind: processing.OutputString, Name: "LABEL"},
		"forty-two", str, "", pctx)
	require.NoError(t, err)
	assert.Equal(t, "forty-two", str.Data)

	num := &wps.LiteralOutput{}
	err = b.ProcessingToOutput(&processing.OutputDef{Kind: processing.OutputNumber, Name: "COUNT"},
		42.0, num, "", pctx)
	require.NoError(t, err)
	assert.Equal(t, 42.0, num.Data)
}

func TestProcessingToOutput_Layer(t *testing.T) {
	b := New()
	pctx := testContext(t)

	co := &wps.ComplexOutput{}
	err := b.ProcessingToOutput(&processing.OutputDef{Kind: processing.OutputVectorLayer, Name: "OUTPUT"},
		"buffered", co, "http://maps.test/ows?service=WMS", pctx)
	require.NoError(t, err)

	assert.True(t, co.AsReference)
	assert.Equal(t, "application/x-ogc-wms", co.OutputFormat)
	assert.Equal(t, "http://maps.test/ows?service=WMS&layer=buffered", co.URL)
}

func TestProcessingToOutput_FileByReference(t *testing.T) {
	b := New()
	pctx := testContext(t)

	co := &wps.ComplexOutput{AsReference: true}
	err := b.ProcessingToOutput(&processing.OutputDef{Kind: processing.OutputFile, Name: "REPORT"},
		"report.csv", co, "", pctx)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", co.OutputFormat)
	assert.Equal(t, "http://store.test/report.csv", co.URL)
	assert.Empty(t, co.File)
}

func TestProcessingToOutput_FileInline(t *testing.T) {
	b := New()
	pctx := testContext(t)

	co := &wps.ComplexOutput{}
	err := b.ProcessingToOutput(&processing.OutputDef{Kind: processing.OutputHTML, Name: "REPORT"},
		"subdir/report.html", co, "", pctx)
	require.NoError(t, err)

	assert.Equal(t, "text/html", co.OutputFormat)
	assert.Equal(t, filepath.Join(pctx.WorkDir, "report.html"), co.File)
	assert.Empty(t, co.URL)
}

func TestProcessingToOutput_FileMimeFallback(t *testing.T) {
	b, logs := observedBridge()
	pctx := testContext(t)

	co := &wps.ComplexOutput{AsReference: true}
	err := b.ProcessingToOutput(&processing.OutputDef{Kind: processing.OutputFile, Name: "DUMP"},
		"dump.zzz", co, "", pctx)
	require.NoError(t, err)

	assert.Equal(t, "application/octet-stream", co.OutputFormat)
	assert.Equal(t, 1, logs.FilterMessage("cannot resolve mime type for output file").Len())
}

func TestProcessingToOutput_ShapeMismatch(t *testing.T) {
	b := New()
	pctx := testContext(t)

	err := b.ProcessingToOutput(&processing.OutputDef{Kind: processing.OutputString, Name: "LABEL"},
		"x", &wps.ComplexOutput{}, "", pctx)
	assert.Error(t, err)

	err = b.ProcessingToOutput(&processing.OutputDef{Kind: processing.OutputVectorLayer, Name: "OUTPUT"},
		"x", &wps.LiteralOutput{}, "", pctx)
	assert.Error(t, err)
}

func TestProcessingToOutput_UnknownKind(t *testing.T) {
	b := New()
	pctx := testContext(t)

	err := b.ProcessingToOutput(&processing.OutputDef{Kind: "outputMatrix", Name: "TABLE"},
		nil, &wps.ComplexOutput{}, "", pctx)

	var kindErr *UnsupportedOutputKindError
	assert.ErrorAs(t, err, &kindErr)
}
