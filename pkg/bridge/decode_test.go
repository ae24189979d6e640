package bridge

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
	"github.com/geotoolbox/wpsbridge/pkg/project"
	"github.com/geotoolbox/wpsbridge/pkg/wps"
)

func testAlgorithm(params ...*processing.ParameterDef) processing.Algorithm {
	return &processing.BasicAlgorithm{AlgName: "test:alg", Params: params}
}

func testContext(t *testing.T) *project.Context {
	t.Helper()
	return project.NewContext(project.NewMemoryProject(), t.TempDir(), "http://store.test/{file}")
}

func TestInputToProcessing_UnknownParameter(t *testing.T) {
	b := New()
	_, _, err := b.InputToProcessing(context.Background(), "NOPE", nil, testAlgorithm(), testContext(t))

	var valErr *InvalidParameterValueError
	assert.ErrorAs(t, err, &valErr)
}

func TestInputToProcessing_MissingValues(t *testing.T) {
	alg := testAlgorithm(
		&processing.ParameterDef{Kind: processing.ParamString, Name: "REQUIRED"},
		&processing.ParameterDef{Kind: processing.ParamString, Name: "OPTIONAL", Optional: true},
	)

	b, logs := observedBridge()
	pctx := testContext(t)

	name, value, err := b.InputToProcessing(context.Background(), "REQUIRED", nil, alg, pctx)
	require.NoError(t, err)
	assert.Equal(t, "REQUIRED", name)
	assert.Nil(t, value)
	assert.Equal(t, 1, logs.FilterMessage("required input has no value").Len())

	_, value, err = b.InputToProcessing(context.Background(), "OPTIONAL", nil, alg, pctx)
	require.NoError(t, err)
	assert.Nil(t, value)
	assert.Equal(t, 1, logs.Len(), "optional input must not warn")
}

func TestInputToProcessing_Sink(t *testing.T) {
	alg := testAlgorithm(&processing.ParameterDef{
		Kind:                 processing.ParamFeatureSink,
		Name:                 "OUTPUT",
		DefaultFileExtension: "gpkg",
	})

	b := New()
	pctx := testContext(t)

	name, value, err := b.InputToProcessing(context.Background(),
		"OUTPUT", []wps.Value{{Data: "buffered"}}, alg, pctx)
	require.NoError(t, err)
	assert.Equal(t, "OUTPUT", name)

	def, ok := value.(*processing.OutputLayerDef)
	require.True(t, ok)
	assert.Equal(t, "./OUTPUT.gpkg", def.Sink)
	assert.Equal(t, "buffered", def.DestinationName)
	assert.Same(t, pctx.Destination, def.Destination)
}

func TestInputToProcessing_FeatureSource(t *testing.T) {
	alg := testAlgorithm(&processing.ParameterDef{
		Kind: processing.ParamFeatureSource,
		Name: "INPUT",
	})

	b := New()
	pctx := testContext(t)

	_, value, err := b.InputToProcessing(context.Background(),
		"INPUT", []wps.Value{{Data: "roads"}}, alg, pctx)
	require.NoError(t, err)

	src, ok := value.(processing.FeatureSourceDef)
	require.True(t, ok)
	assert.Equal(t, "roads", src.Source)
	assert.False(t, src.SelectedFeaturesOnly)
}

func TestInputToProcessing_Layers(t *testing.T) {
	alg := testAlgorithm(
		&processing.ParameterDef{Kind: processing.ParamMultipleLayers, Name: "LAYERS"},
		&processing.ParameterDef{Kind: processing.ParamVectorLayer, Name: "INPUT"},
	)

	b := New()
	pctx := testContext(t)

	t.Run("multiple_values", func(t *testing.T) {
		_, value, err := b.InputToProcessing(context.Background(), "LAYERS",
			[]wps.Value{{Data: "layer:a"}, {Data: "layer:b"}}, alg, pctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, value)
	})

	t.Run("file_scheme_resolves", func(t *testing.T) {
		_, value, err := b.InputToProcessing(context.Background(), "INPUT",
			[]wps.Value{{Data: "file:data/roads.shp"}}, alg, pctx)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(pctx.RootDir, "data", "roads.shp"), value)
	})

	t.Run("bad_scheme", func(t *testing.T) {
		_, _, err := b.InputToProcessing(context.Background(), "INPUT",
			[]wps.Value{{Data: "ftp://x"}}, alg, pctx)

		var valErr *InvalidParameterValueError
		assert.ErrorAs(t, err, &valErr)
	})
}

func TestInputToProcessing_Enum(t *testing.T) {
	alg := testAlgorithm(&processing.ParameterDef{
		Kind:          processing.ParamEnum,
		Name:          "STYLE",
		Options:       []string{"Round", "Flat", "Square"},
		AllowMultiple: true,
	})

	b := New()
	pctx := testContext(t)

	t.Run("single", func(t *testing.T) {
		_, value, err := b.InputToProcessing(context.Background(), "STYLE",
			[]wps.Value{{Data: "Flat"}}, alg, pctx)
		require.NoError(t, err)
		assert.Equal(t, 1, value)
	})

	t.Run("multiple", func(t *testing.T) {
		_, value, err := b.InputToProcessing(context.Background(), "STYLE",
			[]wps.Value{{Data: "Square"}, {Data: "Round"}}, alg, pctx)
		require.NoError(t, err)
		assert.Equal(t, []int{2, 0}, value)
	})

	t.Run("unknown_option", func(t *testing.T) {
		_, _, err := b.InputToProcessing(context.Background(), "STYLE",
			[]wps.Value{{Data: "Jagged"}}, alg, pctx)

		var valErr *InvalidParameterValueError
		assert.ErrorAs(t, err, &valErr)
	})
}

func TestInputToProcessing_Extent(t *testing.T) {
	alg := testAlgorithm(&processing.ParameterDef{Kind: processing.ParamExtent, Name: "EXTENT"})

	b := New()
	pctx := testContext(t)

	// Submitted order is min-x, max-x, min-y, max-y.
	_, value, err := b.InputToProcessing(context.Background(), "EXTENT",
		[]wps.Value{{Data: "-4.0,5.5,42.0,51.0", CRS: "EPSG:4326"}}, alg, pctx)
	require.NoError(t, err)

	rect, ok := value.(processing.ReferencedRect)
	require.True(t, ok)
	assert.Equal(t, -4.0, rect.Rect.MinX)
	assert.Equal(t, 5.5, rect.Rect.MaxX)
	assert.Equal(t, 42.0, rect.Rect.MinY)
	assert.Equal(t, 51.0, rect.Rect.MaxY)
	assert.Equal(t, "EPSG:4326", rect.CRS)

	_, _, err = b.InputToProcessing(context.Background(), "EXTENT",
		[]wps.Value{{Data: "1,2,3"}}, alg, pctx)
	assert.Error(t, err)
}

func TestInputToProcessing_DestinationPathTruncated(t *testing.T) {
	alg := testAlgorithm(&processing.ParameterDef{
		Kind: processing.ParamFileDestination,
		Name: "OUTPUT",
	})

	b, logs := observedBridge()
	pctx := testContext(t)

	_, value, err := b.InputToProcessing(context.Background(), "OUTPUT",
		[]wps.Value{{Data: "../../etc/passwd"}}, alg, pctx)
	require.NoError(t, err)
	assert.Equal(t, "passwd", value)
	assert.Equal(t, 1, logs.FilterMessage("value for file or folder destination has been truncated").Len())

	// A plain name passes through silently.
	_, value, err = b.InputToProcessing(context.Background(), "OUTPUT",
		[]wps.Value{{Data: "report.csv"}}, alg, pctx)
	require.NoError(t, err)
	assert.Equal(t, "report.csv", value)
	assert.Equal(t, 1, logs.Len())
}

func TestInputToProcessing_FileInline(t *testing.T) {
	alg := testAlgorithm(&processing.ParameterDef{
		Kind:      processing.ParamFile,
		Name:      "TABLE",
		Extension: ".csv",
	})

	b := New()
	pctx := testContext(t)

	_, value, err := b.InputToProcessing(context.Background(), "TABLE",
		[]wps.Value{{Data: "id,name\n1,one\n"}}, alg, pctx)
	require.NoError(t, err)
	assert.Equal(t, "TABLE.csv", value)

	content, err := os.ReadFile(filepath.Join(pctx.WorkDir, "TABLE.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,one\n", string(content))
}

type stubFetcher struct {
	uri     string
	payload string
	missing bool
}

func (f *stubFetcher) Get(_ context.Context, uri string) (io.ReadCloser, error) {
	f.uri = uri
	return io.NopCloser(strings.NewReader(f.payload)), nil
}

func (f *stubFetcher) Exists(_ context.Context, _ string) (bool, error) {
	return !f.missing, nil
}

func TestInputToProcessing_FileByReference(t *testing.T) {
	alg := testAlgorithm(&processing.ParameterDef{
		Kind:      processing.ParamFile,
		Name:      "TABLE",
		Extension: ".csv",
	})

	fetcher := &stubFetcher{payload: "id\n42\n"}
	b := New(WithFetcher(fetcher))
	pctx := testContext(t)

	_, value, err := b.InputToProcessing(context.Background(), "TABLE",
		[]wps.Value{{Href: "https://data.test/table.csv"}}, alg, pctx)
	require.NoError(t, err)
	assert.Equal(t, "TABLE.csv", value)
	assert.Equal(t, "https://data.test/table.csv", fetcher.uri)

	content, err := os.ReadFile(filepath.Join(pctx.WorkDir, "TABLE.csv"))
	require.NoError(t, err)
	assert.Equal(t, "id\n42\n", string(content))
}

func TestInputToProcessing_FolderPassthrough(t *testing.T) {
	alg := testAlgorithm(&processing.ParameterDef{
		Kind:     processing.ParamFile,
		Name:     "SCRATCH_DIR",
		Behavior: processing.BehaviorFolder,
	})

	b := New()
	pctx := testContext(t)

	// Folder-behavior file parameters carry no payload to stage; the
	// submitted string travels through untouched.
	_, value, err := b.InputToProcessing(context.Background(), "SCRATCH_DIR",
		[]wps.Value{{Data: "/srv/scratch"}}, alg, pctx)
	require.NoError(t, err)
	assert.Equal(t, "/srv/scratch", value)

	if _, err := os.Stat(pctx.WorkDir); !os.IsNotExist(err) {
		t.Fatalf("no file must be staged for a folder parameter")
	}
}

func TestInputToProcessing_MissingReference(t *testing.T) {
	alg := testAlgorithm(&processing.ParameterDef{
		Kind:      processing.ParamFile,
		Name:      "TABLE",
		Extension: ".csv",
	})

	b := New(WithFetcher(&stubFetcher{missing: true}))
	pctx := testContext(t)

	_, _, err := b.InputToProcessing(context.Background(), "TABLE",
		[]wps.Value{{Href: "https://data.test/gone.csv"}}, alg, pctx)

	var valErr *InvalidParameterValueError
	assert.ErrorAs(t, err, &valErr)
}

func TestInputToProcessing_Point(t *testing.T) {
	alg := testAlgorithm(&processing.ParameterDef{Kind: processing.ParamPoint, Name: "CENTER"})

	b := New()
	pctx := testContext(t)

	_, value, err := b.InputToProcessing(context.Background(), "CENTER",
		[]wps.Value{{Data: `{"type":"Point","coordinates":[2.35,48.85]}`}}, alg, pctx)
	require.NoError(t, err)

	pt, ok := value.(processing.ReferencedPoint)
	require.True(t, ok)
	assert.Equal(t, 2.35, pt.Point.X())
	assert.Equal(t, 48.85, pt.Point.Y())
}

func TestInputToProcessing_Passthrough(t *testing.T) {
	alg := testAlgorithm(
		&processing.ParameterDef{Kind: processing.ParamString, Name: "NAME"},
		&processing.ParameterDef{Kind: processing.ParamCRS, Name: "TARGET_CRS"},
	)

	b := New()
	pctx := testContext(t)

	_, value, err := b.InputToProcessing(context.Background(), "NAME",
		[]wps.Value{{Data: "hello"}}, alg, pctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", value)

	_, value, err = b.InputToProcessing(context.Background(), "TARGET_CRS",
		[]wps.Value{{Data: "EPSG:2154"}}, alg, pctx)
	require.NoError(t, err)
	assert.Equal(t, "EPSG:2154", value)
}
