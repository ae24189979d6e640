// Package bridge translates between the native descriptors of the
// processing framework and the protocol-facing shapes advertised to
// process-execution clients. Translation runs in three passes: parameter and
// output definitions are translated once per description request, submitted
// values are decoded into native arguments before an execution, and native
// results are encoded into output values after it.
package bridge

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/geotoolbox/wpsbridge/pkg/storage"
)

const (
	// defaultMaxMultiLayerOccurs caps the advertised cardinality of a
	// multi-layer input when no project context narrows it.
	defaultMaxMultiLayerOccurs = 20

	// defaultExtentCRS is advertised for extent inputs. The effective
	// coordinate system is only known at execution time.
	defaultExtentCRS = "EPSG:4326"
)

// Metadata keys emitted on translated descriptors.
const (
	metaType        = "processing:type"
	metaParentLayer = "processing:parentLayerParameterName"
	metaDataType    = "processing:dataType"
	metaDataTypes   = "processing:dataTypes"
	metaExtension   = "processing:extension"
	metaFormat      = "processing:format"

	// metaFreeformPrefix prefixes freeform descriptor annotations.
	metaFreeformPrefix = "processing:meta:"

	// metaAsReference is the freeform key on a paired destination input
	// overriding the reference-mode default of a file output.
	metaAsReference = "wps:as_reference"
)

// PayloadFetcher resolves an href reference to its payload. Exists is
// consulted before Get so a dangling reference surfaces as a client-input
// fault instead of a download failure.
type PayloadFetcher interface {
	Get(ctx context.Context, uri string) (io.ReadCloser, error)
	Exists(ctx context.Context, uri string) (bool, error)
}

// Bridge holds the translation policy shared by the three passes.
type Bridge struct {
	log                   *zap.Logger
	outputFileAsReference bool
	maxMultiLayerOccurs   int
	fetcher               PayloadFetcher
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger receiving translation warnings.
func WithLogger(log *zap.Logger) Option {
	return func(b *Bridge) { b.log = log }
}

// WithOutputFileAsReference sets the process-wide default for whether file
// outputs are delivered as references.
func WithOutputFileAsReference(asReference bool) Option {
	return func(b *Bridge) { b.outputFileAsReference = asReference }
}

// WithMaxMultiLayerOccurs sets the cardinality cap of multi-layer inputs.
func WithMaxMultiLayerOccurs(n int) Option {
	return func(b *Bridge) { b.maxMultiLayerOccurs = n }
}

// WithFetcher sets the backend resolving referenced input payloads.
func WithFetcher(f PayloadFetcher) Option {
	return func(b *Bridge) { b.fetcher = f }
}

// New creates a Bridge. Without options it logs nowhere, delivers file
// outputs as references and resolves payload references through the default
// scheme-dispatching fetcher.
func New(opts ...Option) *Bridge {
	b := &Bridge{
		log:                   zap.NewNop(),
		outputFileAsReference: true,
		maxMultiLayerOccurs:   defaultMaxMultiLayerOccurs,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.fetcher == nil {
		b.fetcher = storage.NewManager()
	}
	return b
}
