// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package levy

// A Constraint either fixes one fit parameter to a value or leaves it
// free for the optimizer. The zero value is free.
type Constraint struct {
	fixed bool
	value float64
}

// Fix returns a Constraint pinning a parameter to v.
func Fix(v float64) Constraint { return Constraint{true, v} }

// Free returns the unconstrained Constraint.
func Free() Constraint { return Constraint{} }

// IsFixed reports whether the constraint pins its parameter.
func (c Constraint) IsFixed() bool { return c.fixed }

// Value returns the pinned value; it is meaningful only if IsFixed.
func (c Constraint) Value() float64 { return c.value }

// Constraints selects which of the four stable parameters a fit may
// vary. The zero value leaves all four free.
type Constraints struct {
	Alpha, Beta, Mu, Sigma Constraint
}

// Parameter slots, in the fixed order the optimizer sees free
// parameters in.
const (
	slotAlpha = iota
	slotBeta
	slotMu
	slotSigma
	numSlots
)

var (
	slotDefault = [numSlots]float64{1.5, 0.0, 0.0, 1.0}
	slotBounds  = [numSlots][2]float64{
		{0.5, 2.0},
		{-1.0, 1.0},
		{-inf, inf},
		{1e-6, 1e10},
	}
)

// A paramSpace is the full 4-parameter vector with a subset of slots
// fixed; the free subset, in slot order, is what the optimizer works
// on. Candidate values are reflected back inside each slot's bounds
// before being written into the full vector.
type paramSpace struct {
	full [numSlots]float64
	free []int
}

func newParamSpace(cs Constraints) *paramSpace {
	ps := &paramSpace{full: slotDefault}
	for i, c := range [numSlots]Constraint{cs.Alpha, cs.Beta, cs.Mu, cs.Sigma} {
		if c.IsFixed() {
			ps.full[i] = c.Value()
		} else {
			ps.free = append(ps.free, i)
		}
	}
	return ps
}

// freeVector returns the current values of the free slots in slot
// order.
func (ps *paramSpace) freeVector() []float64 {
	v := make([]float64, len(ps.free))
	for j, i := range ps.free {
		v[j] = ps.full[i]
	}
	return v
}

// apply writes a candidate free vector into the full vector,
// reflecting each value at the exceeded bound until it is in range.
func (ps *paramSpace) apply(v []float64) {
	for j, i := range ps.free {
		ps.full[i] = reflect(v[j], slotBounds[i][0], slotBounds[i][1])
	}
}

// params returns the complete parameter vector, fixed values intact.
func (ps *paramSpace) params() (alpha, beta, mu, sigma float64) {
	return ps.full[slotAlpha], ps.full[slotBeta], ps.full[slotMu], ps.full[slotSigma]
}

func reflect(x, lower, upper float64) float64 {
	for {
		switch {
		case x < lower:
			x = 2*lower - x
		case x > upper:
			x = 2*upper - x
		default:
			return x
		}
	}
}
