// Package main prints the advertised process description of a registered
// algorithm as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/geotoolbox/wpsbridge/pkg/bridge"
	"github.com/geotoolbox/wpsbridge/pkg/config"
	"github.com/geotoolbox/wpsbridge/pkg/processing"
	"github.com/geotoolbox/wpsbridge/pkg/wps"
)

var (
	configPath = flag.String("config", "", "Path to YAML configuration file")
	algorithm  = flag.String("algorithm", "demo:buffer", "Algorithm identifier to describe")
)

// description is the JSON document printed for one algorithm.
type description struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Inputs      []wps.Input  `json:"inputs"`
	Outputs     []wps.Output `json:"outputs"`
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	registerDemoAlgorithms()

	alg, err := processing.Find(*algorithm)
	if err != nil {
		log.Fatal("algorithm not found", zap.String("algorithm", *algorithm), zap.Error(err))
	}

	b := bridge.New(
		bridge.WithLogger(log),
		bridge.WithOutputFileAsReference(cfg.Server.OutputFileAsReference),
		bridge.WithMaxMultiLayerOccurs(cfg.Processing.MaxMultiLayerOccurs),
	)

	doc := description{Name: alg.Name(), Description: alg.Description()}
	for _, param := range alg.ParameterDefinitions() {
		inp, err := b.ParseInputDefinition(param, nil)
		if err != nil {
			log.Fatal("describing input", zap.String("input", param.Name), zap.Error(err))
		}
		doc.Inputs = append(doc.Inputs, inp)
	}
	for _, outdef := range alg.OutputDefinitions() {
		out, err := b.ParseOutputDefinition(outdef, alg)
		if err != nil {
			log.Fatal("describing output", zap.String("output", outdef.Name), zap.Error(err))
		}
		doc.Outputs = append(doc.Outputs, out)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		log.Fatal("encoding description", zap.Error(err))
	}
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// registerDemoAlgorithms registers a small buffer algorithm so the tool is
// usable without a host framework.
func registerDemoAlgorithms() {
	processing.Register(&processing.BasicAlgorithm{
		AlgName:  "demo:buffer",
		Abstract: "Buffers the features of a vector layer by a fixed distance",
		Params: []*processing.ParameterDef{
			{
				Kind:        processing.ParamFeatureSource,
				Name:        "INPUT",
				Description: "Input layer",
				DataTypes:   []processing.SourceType{processing.TypeVectorAnyGeometry},
			},
			{
				Kind:        processing.ParamNumber,
				Name:        "DISTANCE",
				Description: "Buffer distance",
				NumberKind:  processing.NumberDouble,
				Default:     10.0,
			},
			{
				Kind:        processing.ParamEnum,
				Name:        "END_CAP_STYLE",
				Description: "End cap style",
				Options:     []string{"Round", "Flat", "Square"},
				Default:     0,
			},
			{
				Kind:                 processing.ParamVectorDestination,
				Name:                 "OUTPUT",
				Description:          "Buffered layer",
				DefaultFileExtension: "gpkg",
				SinkDataType:         processing.TypeVectorPolygon,
			},
		},
		Outputs: []*processing.OutputDef{
			{Kind: processing.OutputVectorLayer, Name: "OUTPUT", Description: "Buffered layer"},
		},
	})
}
