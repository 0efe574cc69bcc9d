// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package levy

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize"

	"github.com/levystable/go-levy/table"
)

var (
	ErrNoSamples = errors.New("levy: no samples to fit")

	// ErrMuConversion is returned when Mu is fixed under
	// parametrization 1 but alpha, beta or sigma is free: the
	// location shift between parametrizations depends on all three,
	// so there is no well-defined fixed location to optimize
	// around.
	ErrMuConversion = errors.New("levy: fixing mu in parametrization 1 requires fixing alpha, beta and sigma")
)

// A FitResult is a fitted stable parameter vector. Parameters that
// were fixed in the fit are copied through unchanged.
type FitResult struct {
	Alpha, Beta, Mu, Sigma float64

	// NegLogLikelihood is the objective value at the returned
	// parameters.
	NegLogLikelihood float64
}

// Fit estimates the parameters of a stable distribution from samples
// by maximum likelihood, evaluating densities against tab.
//
// By default all four parameters are searched; cs may pin any subset,
// e.g. Constraints{Beta: Fix(0)} fits a symmetric distribution. Mu is
// interpreted (and returned) in parametrization par.
//
// The search runs in parametrization 0 internally and does not fail
// on non-convergence: the best iterate found is returned regardless
// of the minimizer's convergence status.
func Fit(tab *table.Bundle, samples []float64, cs Constraints, par Par) (FitResult, error) {
	if len(samples) == 0 {
		return FitResult{}, ErrNoSamples
	}

	// A fixed Mu is canonicalized before the search and converted
	// back afterward. A free Mu is searched directly in
	// parametrization 0, starting from the default location.
	if cs.Mu.IsFixed() && par != Par0 {
		if !cs.Alpha.IsFixed() || !cs.Beta.IsFixed() || !cs.Sigma.IsFixed() {
			return FitResult{}, ErrMuConversion
		}
		cs.Mu = Fix(ConvertLocation(cs.Alpha.Value(), cs.Beta.Value(),
			cs.Mu.Value(), cs.Sigma.Value(), par, Par0))
	}

	ps := newParamSpace(cs)
	objective := func(v []float64) float64 {
		ps.apply(v)
		alpha, beta, mu, sigma := ps.params()
		d, err := NewDist(tab, alpha, beta, mu, sigma, Par0)
		if err != nil {
			// Reflection keeps candidates inside the domain;
			// this can only trip on NaN excursions.
			return inf
		}
		sum := 0.0
		for _, x := range samples {
			sum += d.NegLogPDF(x)
		}
		return sum
	}

	var nll float64
	if len(ps.free) == 0 {
		// Degenerate fit: nothing to search, evaluate the fixed
		// vector once.
		nll = objective(nil)
	} else {
		// Nelder-Mead pairs with the reflection bounds and, being
		// derivative-free, shrugs off the small objective jumps
		// where the interpolation/tail hand-off shifts between
		// breakpoint cells.
		problem := optimize.Problem{Func: objective}
		res, err := optimize.Minimize(problem, ps.freeVector(), nil, &optimize.NelderMead{})
		if res == nil {
			return FitResult{}, fmt.Errorf("levy: fit failed: %w", err)
		}
		// Non-convergence is deliberately not an error; keep the
		// best iterate.
		ps.apply(res.X)
		nll = res.F
	}

	alpha, beta, loc, sigma := ps.params()
	return FitResult{
		Alpha:            alpha,
		Beta:             beta,
		Mu:               ConvertLocation(alpha, beta, loc, sigma, Par0, par),
		Sigma:            sigma,
		NegLogLikelihood: nll,
	}, nil
}
