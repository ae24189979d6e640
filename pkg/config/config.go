// Package config loads service configuration from YAML files with
// environment overrides.
package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Processing ProcessingConfig `koanf:"processing"`
	Log        LogConfig        `koanf:"log"`
}

type ServerConfig struct {
	// OutputFileAsReference is the process-wide default for whether file
	// outputs are delivered as references rather than inline.
	OutputFileAsReference bool `koanf:"outputfile_as_reference"`

	// WorkdirRoot is the directory under which per-execution working
	// directories are created.
	WorkdirRoot string `koanf:"workdir_root"`

	// StoreURL is the public URL template of stored output files, with a
	// {file} placeholder.
	StoreURL string `koanf:"store_url"`
}

type ProcessingConfig struct {
	// MaxMultiLayerOccurs caps the advertised cardinality of multi-layer
	// inputs when no project context narrows it.
	MaxMultiLayerOccurs int `koanf:"max_multilayer_occurs"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json, text
}

// Global k instance
var k = koanf.New(".")

func Load(path string) (*Config, error) {
	// Defaults
	k.Set("server.outputfile_as_reference", true)
	k.Set("server.workdir_root", "/tmp/wpsbridge")
	k.Set("server.store_url", "http://localhost:8080/store/{file}")
	k.Set("processing.max_multilayer_occurs", 20)
	k.Set("log.level", "info")
	k.Set("log.format", "text")

	// 1. Load from file
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// 2. Load from ENV (WPSBRIDGE_SERVER_STORE_URL -> server.store_url)
	if err := k.Load(env.Provider("WPSBRIDGE_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "WPSBRIDGE_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
