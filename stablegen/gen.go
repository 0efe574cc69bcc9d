// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stablegen generates the stable-distribution table bundle:
// the density and cumulative grids by numerical Fourier inversion,
// and the per-(alpha, beta) breakpoints where the asymptotic tail
// formula takes over from grid interpolation.
//
// This is the one-time offline batch step; nothing here runs on the
// query path. Generating the canonical production geometry is
// compute-heavy (hours, dominated by the low-alpha rows); coarse
// geometries for testing take seconds.
package stablegen // import "github.com/levystable/go-levy/stablegen"

import (
	"math"

	"github.com/levystable/go-levy/interp"
	"github.com/levystable/go-levy/levy"
	"github.com/levystable/go-levy/table"
)

// Config selects the table geometry. The zero value of every field
// means the canonical production value.
type Config struct {
	NPos, NAlpha, NBeta int
	PosLim              float64

	// ScanN is the number of scan points of the breakpoint
	// consistency search (default 100000 over (-50, 9950)).
	ScanN int

	// Progress, if non-nil, is called once per (alpha, beta) cell
	// in each generation phase.
	Progress func(phase string, alpha, beta float64)
}

func (c Config) withDefaults() Config {
	if c.NPos == 0 {
		c.NPos = table.PosN
	}
	if c.NAlpha == 0 {
		c.NAlpha = table.AlphaN
	}
	if c.NBeta == 0 {
		c.NBeta = table.BetaN
	}
	if c.PosLim == 0 {
		c.PosLim = table.PosLim
	}
	if c.ScanN == 0 {
		c.ScanN = 100000
	}
	return c
}

func (c Config) alphaAt(i int) float64 {
	return table.AlphaMin + float64(i)*(table.AlphaMax-table.AlphaMin)/float64(c.NAlpha-1)
}

func (c Config) betaAt(j int) float64 {
	return table.BetaMin + float64(j)*(table.BetaMax-table.BetaMin)/float64(c.NBeta-1)
}

// Generate builds a complete table bundle for the given geometry.
func Generate(cfg Config) (*table.Bundle, error) {
	cfg = cfg.withDefaults()
	b := &table.Bundle{
		PDF: table.Grid{NPos: cfg.NPos, NAlpha: cfg.NAlpha, NBeta: cfg.NBeta,
			PosLim: cfg.PosLim, Data: make([]float64, cfg.NPos*cfg.NAlpha*cfg.NBeta)},
		CDF: table.Grid{NPos: cfg.NPos, NAlpha: cfg.NAlpha, NBeta: cfg.NBeta,
			PosLim: cfg.PosLim, Data: make([]float64, cfg.NPos*cfg.NAlpha*cfg.NBeta)},
		Breaks: table.Breakpoints{NAlpha: cfg.NAlpha, NBeta: cfg.NBeta,
			Data: make([]float64, cfg.NAlpha*cfg.NBeta)},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	fillGrid(&b.PDF, cfg, "pdf", stdPDF)
	fillGrid(&b.CDF, cfg, "cdf", stdCDF)
	fillBreaks(b, cfg)
	return b, nil
}

// fillGrid samples std at every grid node. The position axis holds
// arctan of the standardized x, so node p samples std(tan(p)).
func fillGrid(g *table.Grid, cfg Config, phase string, std func(x, alpha, beta float64) float64) {
	for j := 0; j < g.NAlpha; j++ {
		alpha := cfg.alphaAt(j)
		for k := 0; k < g.NBeta; k++ {
			beta := cfg.betaAt(k)
			if cfg.Progress != nil {
				cfg.Progress(phase, alpha, beta)
			}
			for i := 0; i < g.NPos; i++ {
				p := -g.PosLim + float64(i)*2*g.PosLim/float64(g.NPos-1)
				g.Data[(i*g.NAlpha+j)*g.NBeta+k] = std(math.Tan(p), alpha, beta)
			}
		}
	}
}

// Breakpoint scan geometry: a dense linear scan starting slightly
// negative, with the squared-log comparison restricted to (10, 500).
const (
	scanLo   = -50.0
	scanHi   = 10000.0 - 50.0
	maskLo   = 10.0
	maskHi   = 500.0
	minBreak = 10.0
)

// fillBreaks finds, per (alpha, beta) cell, the standardized x where
// the grid-interpolated complementary CDF and the closed-form tail
// complementary CDF agree best, and records it as the hand-off point
// between interpolation and the tail formula.
func fillBreaks(b *table.Bundle, cfg Config) {
	g := interp.Grid{
		Data:  b.CDF.Data,
		Shape: []int{b.CDF.NPos, b.CDF.NAlpha, b.CDF.NBeta},
		Lower: []float64{-b.CDF.PosLim, table.AlphaMin, table.BetaMin},
		Upper: []float64{b.CDF.PosLim, table.AlphaMax, table.BetaMax},
	}
	dx := (scanHi - scanLo) / float64(cfg.ScanN)
	for j := 0; j < b.Breaks.NAlpha; j++ {
		alpha := cfg.alphaAt(j)
		for k := 0; k < b.Breaks.NBeta; k++ {
			beta := cfg.betaAt(k)
			if cfg.Progress != nil {
				cfg.Progress("breakpoints", alpha, beta)
			}

			best, bestAt := inf, 0
			masked := 0
			for i := 0; i < cfg.ScanN; i++ {
				x := scanLo + (scanHi-scanLo)*float64(i)/float64(cfg.ScanN-1)
				if x <= maskLo || x >= maskHi {
					continue
				}
				y := 1 - g.At([]float64{math.Atan(x), alpha, beta})
				z := 1 - levy.TailCDF(x, alpha, beta)
				d := math.Log(z) - math.Log(y)
				// y can interpolate to >= 1, making the log NaN;
				// such points never win the argmin.
				if d*d < best {
					best, bestAt = d*d, masked
				}
				masked++
			}
			b.Breaks.Data[j*b.Breaks.NBeta+k] = minBreak + dx*float64(bestAt)
		}
	}
}

var inf = math.Inf(1)
