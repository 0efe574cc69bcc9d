// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package levy_test

import (
	"math"
	"sync"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/levystable/go-levy/levy"
	"github.com/levystable/go-levy/stablegen"
	"github.com/levystable/go-levy/table"
)

// The end-to-end tests run against a real generated bundle at a
// coarse geometry: the same physics as the production tables, a few
// seconds instead of hours to build.
var (
	genOnce   sync.Once
	genBundle *table.Bundle
	genErr    error
)

func generatedBundle(t *testing.T) *table.Bundle {
	t.Helper()
	if testing.Short() {
		t.Skip("table generation is slow; skipped with -short")
	}
	genOnce.Do(func() {
		genBundle, genErr = stablegen.Generate(stablegen.Config{
			NPos:   101,
			NAlpha: 31, // alpha step 0.05
			NBeta:  17, // beta step 0.125
			PosLim: math.Atan(40),
			ScanN:  20000,
		})
	})
	if genErr != nil {
		t.Fatal(genErr)
	}
	return genBundle
}

func TestFitRecovery(t *testing.T) {
	tab := generatedBundle(t)

	const alpha, beta, mu, sigma = 1.5, 0.5, 0.0, 1.0
	s := levy.Sampler{Alpha: alpha, Beta: beta, Mu: mu, Sigma: sigma, Src: rand.NewSource(7)}
	samples := s.Sample(2000)

	res, err := levy.Fit(tab, samples, levy.Constraints{}, levy.Par0)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		name      string
		got, want float64
	}{
		{"alpha", res.Alpha, alpha},
		{"beta", res.Beta, beta},
		{"mu", res.Mu, mu},
		{"sigma", res.Sigma, sigma},
	} {
		if math.Abs(c.got-c.want) > 0.15 {
			t.Errorf("%s = %v, want within 0.15 of %v", c.name, c.got, c.want)
		}
	}
}

func TestFitRecoverySymmetric(t *testing.T) {
	tab := generatedBundle(t)

	s := levy.Sampler{Alpha: 1.7, Beta: 0, Mu: 0.5, Sigma: 1, Src: rand.NewSource(11)}
	samples := s.Sample(2000)

	res, err := levy.Fit(tab, samples, levy.Constraints{Beta: levy.Fix(0)}, levy.Par0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Beta != 0 {
		t.Errorf("fixed beta moved: %v", res.Beta)
	}
	if math.Abs(res.Alpha-1.7) > 0.15 || math.Abs(res.Mu-0.5) > 0.15 || math.Abs(res.Sigma-1) > 0.15 {
		t.Errorf("recovered (%v, %v, %v), want ≈ (1.7, 0.5, 1)", res.Alpha, res.Mu, res.Sigma)
	}
}

func TestGeneratedCDFAgainstSample(t *testing.T) {
	// The empirical CDF of a large direct sample should agree with
	// the table-driven CDF at a few fixed points.
	tab := generatedBundle(t)

	d, err := levy.NewDist(tab, 1.5, 0.5, 0, 1, levy.Par0)
	if err != nil {
		t.Fatal(err)
	}
	s := levy.Sampler{Alpha: 1.5, Beta: 0.5, Mu: 0, Sigma: 1, Src: rand.NewSource(13)}
	samples := s.Sample(50000)

	for _, x := range []float64{-3, -1, 0, 1, 3} {
		below := 0
		for _, v := range samples {
			if v <= x {
				below++
			}
		}
		empirical := float64(below) / float64(len(samples))
		if got := d.CDF(x); math.Abs(got-empirical) > 0.01 {
			t.Errorf("CDF(%v) = %v, empirical %v", x, got, empirical)
		}
	}
}
