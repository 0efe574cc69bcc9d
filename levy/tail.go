// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package levy

import "math"

// phi is the parametrization shift term β·tan(πα/2) shared by the
// location conversion, the sampler and the tail formula.
func phi(alpha, beta float64) float64 {
	return beta * math.Tan(math.Pi*alpha/2)
}

// A Par selects one of Nolan's two standard parametrizations of the
// location parameter.
type Par int

const (
	Par0 Par = iota
	Par1
)

// ConvertLocation converts the location parameter mu of a stable
// distribution with the given alpha, beta and sigma from
// parametrization from to parametrization to.
func ConvertLocation(alpha, beta, mu, sigma float64, from, to Par) float64 {
	switch {
	case from == to:
		return mu
	case from == Par0 && to == Par1:
		return mu - sigma*phi(alpha, beta)
	default:
		return mu + sigma*phi(alpha, beta)
	}
}

// TailPDF returns the asymptotic power-law density of the standard
// stable distribution at x. It is a good approximation only far from
// the origin, beyond the breakpoint recorded in the tables.
func TailPDF(x, alpha, beta float64) float64 {
	return tail(x, alpha, beta, false)
}

// TailCDF returns the asymptotic cumulative distribution at x, in the
// complementary 1-t form with the same asymmetric scaling as TailPDF.
func TailCDF(x, alpha, beta float64) float64 {
	return tail(x, alpha, beta, true)
}

func tail(x, alpha, beta float64, cdf bool) float64 {
	v := math.Sin(math.Pi*alpha/2) * math.Gamma(alpha) / math.Pi *
		math.Pow(math.Abs(x), -alpha-1)
	if x > 0 {
		v *= 1 + beta
	} else {
		v *= 1 - beta
	}
	if cdf {
		return 1 - v
	}
	return v * alpha
}
