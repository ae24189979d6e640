// Package project provides the execution and description contexts consumed
// by the translation layer: working directory handling, layer lookup and the
// output reference URL template, together with an in-memory project
// implementation.
package project

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/geotoolbox/wpsbridge/pkg/processing"
)

// Context is the per-execution processing context. The working directory is
// exclusive to one in-flight execution.
type Context struct {
	// WorkDir is the absolute working directory of this execution.
	WorkDir string

	// RootDir is the root under which relative paths resolve.
	RootDir string

	// StoreURL is the public URL template of stored output files, with a
	// {file} placeholder.
	StoreURL string

	// Project is the source project used for layer lookups.
	Project processing.Project

	// Destination is the project handle receiving produced layers.
	Destination processing.Project
}

// NewContext creates an execution context with a fresh working directory
// under rootDir.
func NewContext(p processing.Project, rootDir, storeURL string) *Context {
	return &Context{
		WorkDir:     filepath.Join(rootDir, uuid.NewString()),
		RootDir:     rootDir,
		StoreURL:    storeURL,
		Project:     p,
		Destination: NewMemoryProject(),
	}
}

// ResolvePath resolves a possibly relative path against the context root.
func (c *Context) ResolvePath(path string) string {
	path = filepath.Clean(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.RootDir, path)
}

// MapLayer returns the live layer registered under name, or nil.
func (c *Context) MapLayer(name string) processing.Layer {
	if c.Project == nil {
		return nil
	}
	return c.Project.MapLayer(name)
}

// MapContext is the description-time context: the project whose layers are
// candidate values for layer inputs.
type MapContext struct {
	Project processing.Project
}
