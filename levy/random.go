// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package levy

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Sampler generates alpha-stable variates directly, without tables,
// using the Chambers-Mallows-Stuck transform of two uniform draws.
//
// Alpha must be in (0, 2] (the transform itself is not restricted to
// the table domain). If Src is nil the global rand source is used.
type Sampler struct {
	Alpha, Beta float64
	Mu, Sigma   float64
	Par         Par
	Src         rand.Source
}

// Rand returns one variate.
func (s Sampler) Rand() float64 {
	if !(s.Alpha > 0 && s.Alpha <= 2) {
		panic("levy: sampler alpha out of range (0, 2]")
	}
	loc := ConvertLocation(s.Alpha, s.Beta, s.Mu, s.Sigma, s.Par, Par0)

	if s.Alpha == 2 {
		// Stable(2, β) is the normal with standard deviation √2·σ.
		n := distuv.Normal{Mu: 0, Sigma: 1, Src: s.Src}
		return loc + s.Sigma*math.Sqrt2*n.Rand()
	}

	alpha := s.Alpha
	// The transform has a removable singularity at alpha=1; a
	// perturbation this small changes nothing else measurably.
	if math.Abs(alpha-1) < 1e-15 {
		alpha = 1 + 1e-15
	}

	var r1, r2 float64
	if s.Src == nil {
		r1, r2 = rand.Float64(), rand.Float64()
	} else {
		rnd := rand.New(s.Src)
		r1, r2 = rnd.Float64(), rnd.Float64()
	}

	a := 1.0 - alpha
	b := r1 - 0.5
	c := a * b * math.Pi
	e := phi(alpha, s.Beta)
	f := math.Pow(-(math.Cos(c)+e*math.Sin(c))/(math.Log(r2)*math.Cos(b*math.Pi)), a/alpha)
	g := math.Tan(math.Pi * b / 2.0)
	h := math.Tan(c / 2.0)
	i := 1.0 - g*g
	j := f * (2.0*(g-h)*(g*h+1.0) - (h*i-2.0*g)*e*2.0*h)
	k := j/(i*(h*h+1.0)) + e*(f-1.0)

	return loc + s.Sigma*k
}

// Sample returns n variates.
func (s Sampler) Sample(n int) []float64 {
	// Draw through one Rand so a non-nil Src is not re-wrapped per
	// variate.
	var rnd *rand.Rand
	if s.Src != nil {
		rnd = rand.New(s.Src)
	}
	res := make([]float64, n)
	for i := range res {
		if rnd != nil {
			res[i] = Sampler{s.Alpha, s.Beta, s.Mu, s.Sigma, s.Par, rnd}.Rand()
		} else {
			res[i] = s.Rand()
		}
	}
	return res
}
