// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table holds the precomputed stable-distribution tables: a
// density grid, a cumulative grid and a breakpoint table, produced
// once by the offline generator and consumed read-only at query time.
package table // import "github.com/levystable/go-levy/table"

import (
	"errors"
	"fmt"
	"math"
)

// Canonical production grid geometry. The grids are indexed
// (position, alpha, beta) with the last axis fastest; the position
// axis holds arctan of the standardized x, so the infinite line
// compresses into (-PosLim, PosLim).
const (
	PosN   = 200
	AlphaN = 76
	BetaN  = 101

	PosLim   = math.Pi / 2 * 0.999
	AlphaMin = 0.5
	AlphaMax = 2.0
	BetaMin  = -1.0
	BetaMax  = 1.0
)

var (
	ErrShape    = errors.New("table: inconsistent table shape")
	ErrChecksum = errors.New("table: checksum mismatch")
	ErrFormat   = errors.New("table: not a stable table file")
)

// A Grid is one dense (position, alpha, beta) sample array. Data is
// row-major with beta fastest. The alpha and beta axes always span
// [AlphaMin, AlphaMax] and [BetaMin, BetaMax]; the position axis
// spans [-PosLim, PosLim] for production tables, but the bound is
// recorded per bundle so that coarse tables can be built for testing.
type Grid struct {
	NPos, NAlpha, NBeta int
	PosLim              float64
	Data                []float64
}

// A Breakpoints table gives, per (alpha, beta) cell, the standardized
// x magnitude beyond which the asymptotic tail formula replaces grid
// interpolation.
type Breakpoints struct {
	NAlpha, NBeta int
	Data          []float64
}

// At returns the breakpoint for the cell nearest (alpha, beta) under
// the table's linear axis mapping. The index is truncated, not
// interpolated. Callers must validate alpha and beta first; At
// panics on out-of-range indices.
func (b *Breakpoints) At(alpha, beta float64) float64 {
	i := int((alpha - AlphaMin) / (AlphaMax - AlphaMin) * float64(b.NAlpha-1))
	j := int((beta - BetaMin) / (BetaMax - BetaMin) * float64(b.NBeta-1))
	return b.Data[i*b.NBeta+j]
}

// A Bundle is the complete set of tables for one grid geometry. A
// Bundle is immutable once built or loaded and is safe for
// concurrent use.
type Bundle struct {
	PDF, CDF Grid
	Breaks   Breakpoints
}

// Validate checks the internal consistency of the bundle: matching
// grid shapes, matching breakpoint shape and correct data lengths.
func (b *Bundle) Validate() error {
	if err := b.PDF.validate("pdf"); err != nil {
		return err
	}
	if err := b.CDF.validate("cdf"); err != nil {
		return err
	}
	if b.PDF.NPos != b.CDF.NPos || b.PDF.NAlpha != b.CDF.NAlpha ||
		b.PDF.NBeta != b.CDF.NBeta || b.PDF.PosLim != b.CDF.PosLim {
		return fmt.Errorf("%w: pdf and cdf grids disagree", ErrShape)
	}
	if b.Breaks.NAlpha != b.PDF.NAlpha || b.Breaks.NBeta != b.PDF.NBeta {
		return fmt.Errorf("%w: breakpoints %dx%d for %dx%d grids", ErrShape,
			b.Breaks.NAlpha, b.Breaks.NBeta, b.PDF.NAlpha, b.PDF.NBeta)
	}
	if len(b.Breaks.Data) != b.Breaks.NAlpha*b.Breaks.NBeta {
		return fmt.Errorf("%w: breakpoint data length %d", ErrShape, len(b.Breaks.Data))
	}
	return nil
}

func (g *Grid) validate(name string) error {
	if g.NPos < 4 || g.NAlpha < 4 || g.NBeta < 4 {
		return fmt.Errorf("%w: %s grid %dx%dx%d too small", ErrShape,
			name, g.NPos, g.NAlpha, g.NBeta)
	}
	if g.PosLim <= 0 || g.PosLim >= math.Pi/2 {
		return fmt.Errorf("%w: %s grid position bound %v", ErrShape, name, g.PosLim)
	}
	if len(g.Data) != g.NPos*g.NAlpha*g.NBeta {
		return fmt.Errorf("%w: %s grid data length %d for %dx%dx%d", ErrShape,
			name, len(g.Data), g.NPos, g.NAlpha, g.NBeta)
	}
	return nil
}
