// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package levy implements the Lévy alpha-stable distribution family:
// density and cumulative distribution evaluation, maximum-likelihood
// fitting, and random variate generation.
//
// The stable density has no closed form for most parameter
// combinations, so evaluation interpolates a precomputed table of
// samples (see the table and stablegen packages) and switches to the
// closed-form asymptotic tail beyond a per-parameter breakpoint.
// Alpha values below 0.5 are not supported.
package levy // import "github.com/levystable/go-levy/levy"

import "math"

var inf = math.Inf(1)
