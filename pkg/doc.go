// Package pkg provides the core libraries for building Gridfold collages.
//
// # Overview
//
// Gridfold lays every image in a folder out on a single grid canvas. The pkg
// directory is organized by pipeline stage:
//
//  1. [source] - Image discovery and dimension probing
//  2. [layout] - Aspect analysis, grid planning, sampling
//  3. [render] - Cell compositing, canvas assembly, title overlays
//  4. [encode] - Output format encoders and atomic file writes
//  5. [pipeline] - Orchestration (discover → plan → compose → encode)
//
// # Architecture
//
// The typical data flow through Gridfold:
//
//	Folder of images
//	         ↓
//	    [source] package (discover files, probe dimensions)
//	         ↓
//	    [layout] package (detect aspect, plan canvas + grid, sample)
//	         ↓
//	    [render] package (letterbox cells, assemble canvas, draw title)
//	         ↓
//	    [encode] package (JPEG/PNG/GIF/BMP/TIFF/WEBP output)
//
// # Quick Start
//
// Build a collage programmatically:
//
//	import (
//	    "context"
//	    "github.com/gridfold/gridfold/pkg/cache"
//	    "github.com/gridfold/gridfold/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil)
//	opts := pipeline.Options{
//	    Folder:  "photos",
//	    Output:  "photos.jpg",
//	    Columns: 4,
//	}
//	res, err := runner.Execute(context.Background(), &opts)
//
// # Supporting Packages
//
// [cache] - File-backed cache for probed image dimensions, keyed by path,
// size and modification time.
//
// [errors] - Structured errors with machine-readable codes, shared across
// every stage.
//
// [observability] - Hook interfaces for instrumenting pipeline stages and
// cache operations without a hard metrics dependency.
//
// [buildinfo] - ldflags-injected version information.
package pkg
