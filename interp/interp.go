// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package interp provides cubic convolution interpolation over dense
// rectangular grids.
package interp // import "github.com/levystable/go-levy/interp"

import "math"

// A Grid is a dense rectangular grid of samples taken uniformly on
// each axis between that axis' lower and upper bound. Data is stored
// in row-major order with the last axis varying fastest.
//
// Grid supports Catmull-Rom cubic convolution sampling: a 4-tap cubic
// kernel per axis that passes exactly through the grid nodes and
// estimates values between them. Queries outside an axis' bounds do
// not fail; the taps are clamped to the nearest edge nodes, so the
// result is an extrapolation from the edge neighborhood.
//
// The kernel can overshoot near sharp gradients, so interpolated
// values may fall slightly outside the range of the stored samples
// (for example, a density grid may interpolate to an epsilon below
// zero). Grid does not clamp its results; that is up to the caller.
type Grid struct {
	// Data holds the samples, row-major, len = product of Shape.
	Data []float64

	// Shape is the node count per axis. Every entry must be at
	// least 2.
	Shape []int

	// Lower and Upper are the coordinates of the first and last
	// node on each axis. Both must have len(Shape) entries.
	Lower, Upper []float64
}

// maxDims is the largest number of axes At supports. The stable
// distribution tables are 3-dimensional; 4 leaves headroom without
// forcing a heap allocation per query.
const maxDims = 4

// At returns the cubic convolution interpolant of g at point, which
// must have one coordinate per grid axis.
func (g *Grid) At(point []float64) float64 {
	dims := len(g.Shape)
	if dims != len(point) || dims > maxDims {
		panic("interp: point dimensionality does not match grid")
	}

	// Map each coordinate into continuous index space and split it
	// into an integer base node and the four kernel weights for the
	// fractional offset t:
	//
	//   w(-1) = -0.5t³ + t² - 0.5t
	//   w( 0) =  1.5t³ - 2.5t² + 1
	//   w( 1) = -1.5t³ + 2t² + 0.5t
	//   w( 2) =  0.5t³ - 0.5t²
	var floors [maxDims]int
	var weights [maxDims][4]float64
	for j := 0; j < dims; j++ {
		u := (point[j] - g.Lower[j]) * float64(g.Shape[j]-1) / (g.Upper[j] - g.Lower[j])
		f := math.Floor(u)
		t := u - f
		t2 := t * t
		t3 := t2 * t
		floors[j] = int(f)
		weights[j] = [4]float64{
			-0.5*t3 + t2 - 0.5*t,
			1.5*t3 - 2.5*t2 + 1.0,
			-1.5*t3 + 2*t2 + 0.5*t,
			0.5*t3 - 0.5*t2,
		}
	}

	// Sum over the 4^dims taps. Tap i selects one of the four
	// kernel offsets on each axis (two bits per axis); the node
	// index on each axis is clamped to the grid, never wrapped.
	sum := 0.0
	for i := 0; i < 1<<(2*dims); i++ {
		w := 1.0
		idx := 0
		for j := 0; j < dims; j++ {
			n := (i >> (2 * j)) & 3
			k := floors[j] + n - 1
			if k < 0 {
				k = 0
			} else if k > g.Shape[j]-1 {
				k = g.Shape[j] - 1
			}
			idx = idx*g.Shape[j] + k
			w *= weights[j][n]
		}
		sum += w * g.Data[idx]
	}
	return sum
}

// AtEach returns At(points[i]) for each i.
func (g *Grid) AtEach(points [][]float64) []float64 {
	res := make([]float64, len(points))
	for i, p := range points {
		res[i] = g.At(p)
	}
	return res
}
