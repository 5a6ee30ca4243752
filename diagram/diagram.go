// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package diagram draws left-to-right diagrams of fully connected networks.
//
// The layout is computed from layer sizes first; drawing then goes through
// an explicit Canvas. Raster is the built-in Canvas and writes PNG:
//
//	layout, err := diagram.NewLayout([]int{3, 5, 5, 2}, diagram.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	raster, err := diagram.Render(layout, diagram.DefaultTitle)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = raster.WritePNG(f)
package diagram

import (
	"github.com/born-ml/fcn/internal/diagram"
)

// DefaultTitle is the standard diagram caption.
const DefaultTitle = diagram.DefaultTitle

// Type aliases for public API
type (
	Config = diagram.Config
	Layout = diagram.Layout
	Layer  = diagram.Layer
	Edge   = diagram.Edge
	Point  = diagram.Point
	Bounds = diagram.Bounds
	Canvas = diagram.Canvas
	Raster = diagram.Raster
)

// Errors returned by NewLayout and NewRaster.
var (
	ErrInvalidLayers = diagram.ErrInvalidLayers
	ErrInvalidConfig = diagram.ErrInvalidConfig
)

// DefaultConfig returns the default geometry.
func DefaultConfig() Config {
	return diagram.DefaultConfig()
}

// NewLayout computes the diagram geometry for the given layer sizes.
func NewLayout(sizes []int, cfg Config) (*Layout, error) {
	return diagram.NewLayout(sizes, cfg)
}

// Draw renders l onto c.
func Draw(c Canvas, l *Layout, title string) {
	diagram.Draw(c, l, title)
}

// NewRaster creates a blank raster sized for l.
func NewRaster(l *Layout, title string) (*Raster, error) {
	return diagram.NewRaster(l, title)
}

// Render creates a raster for l and draws l onto it.
func Render(l *Layout, title string) (*Raster, error) {
	return diagram.Render(l, title)
}
