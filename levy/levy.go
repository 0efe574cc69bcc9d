// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package levy

import (
	"errors"
	"fmt"
	"math"

	"github.com/levystable/go-levy/interp"
	"github.com/levystable/go-levy/table"
)

var (
	ErrAlphaRange = errors.New("levy: alpha out of range [0.5, 2]")
	ErrBetaRange  = errors.New("levy: beta out of range [-1, 1]")
	ErrSigmaRange = errors.New("levy: sigma must be positive")
)

// A Dist is an alpha-stable distribution backed by a table bundle.
//
// Alpha in [0.5, 2] is the index of stability, or characteristic
// exponent. Beta in [-1, 1] is the skewness. Mu and Sigma are the
// center and scale (delta and gamma in Nolan's notation; note that at
// alpha=2 a stable sigma corresponds to √2 times the normal sigma).
// Par selects Nolan's parametrization of Mu.
//
// A Dist shares the bundle it was built from and never mutates it, so
// any number of Dists and goroutines may use one bundle concurrently.
type Dist struct {
	Alpha, Beta float64
	Mu, Sigma   float64
	Par         Par

	loc      float64 // Mu converted to parametrization 0
	brk      float64 // |standardized x| where the tail takes over
	pdf, cdf interp.Grid
}

// NewDist returns a Dist for the given parameters, evaluated against
// the tables in tab. It rejects alpha and beta outside the table
// domain and non-positive sigma.
func NewDist(tab *table.Bundle, alpha, beta, mu, sigma float64, par Par) (*Dist, error) {
	if !(alpha >= table.AlphaMin && alpha <= table.AlphaMax) {
		return nil, fmt.Errorf("%w: %v", ErrAlphaRange, alpha)
	}
	if !(beta >= table.BetaMin && beta <= table.BetaMax) {
		return nil, fmt.Errorf("%w: %v", ErrBetaRange, beta)
	}
	if !(sigma > 0) {
		return nil, fmt.Errorf("%w: %v", ErrSigmaRange, sigma)
	}

	d := &Dist{
		Alpha: alpha, Beta: beta, Mu: mu, Sigma: sigma, Par: par,
		loc: ConvertLocation(alpha, beta, mu, sigma, par, Par0),
		brk: tab.Breaks.At(alpha, beta),
		pdf: gridView(&tab.PDF),
		cdf: gridView(&tab.CDF),
	}
	return d, nil
}

// gridView wraps a table grid for interpolation. The position axis
// holds arctan of the standardized x.
func gridView(g *table.Grid) interp.Grid {
	return interp.Grid{
		Data:  g.Data,
		Shape: []int{g.NPos, g.NAlpha, g.NBeta},
		Lower: []float64{-g.PosLim, table.AlphaMin, table.BetaMin},
		Upper: []float64{g.PosLim, table.AlphaMax, table.BetaMax},
	}
}

func (d *Dist) value(x float64, cdf bool) float64 {
	xr := (x - d.loc) / d.Sigma
	var v float64
	if math.Abs(xr) < d.brk {
		g := &d.pdf
		if cdf {
			g = &d.cdf
		}
		v = g.At([]float64{math.Atan(xr), d.Alpha, d.Beta})
	} else {
		v = tail(xr, d.Alpha, d.Beta, cdf)
	}
	if !cdf {
		// Density scaling under the linear change of variables.
		v /= d.Sigma
	}
	return v
}

// PDF returns the probability density of d at x.
//
// Interpolation can overshoot near sharp gradients, so the result may
// be an epsilon below zero in regions where the true density
// underflows; callers that cannot tolerate this should use NegLogPDF,
// which floors the density.
func (d *Dist) PDF(x float64) float64 {
	return d.value(x, false)
}

// PDFEach returns PDF(xs[i]) for each i.
func (d *Dist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.value(x, false)
	}
	return res
}

// CDF returns the cumulative distribution function of d at x.
func (d *Dist) CDF(x float64) float64 {
	return d.value(x, true)
}

// CDFEach returns CDF(xs[i]) for each i.
func (d *Dist) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.value(x, true)
	}
	return res
}

// negLogFloor caps how small (or negative, from interpolation
// overshoot) a density is allowed to get before taking the log, so a
// single far-out sample cannot produce an infinite loss.
const negLogFloor = 1e-100

// NegLogPDF returns -ln(PDF(x)), with the density floored at 1e-100.
func (d *Dist) NegLogPDF(x float64) float64 {
	return -math.Log(math.Max(negLogFloor, d.value(x, false)))
}

// NegLogPDFEach returns NegLogPDF(xs[i]) for each i.
func (d *Dist) NegLogPDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.NegLogPDF(x)
	}
	return res
}
