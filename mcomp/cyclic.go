// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import "math"

// CyclicCurve implements the cyclic (Ramberg-Osgood) stress-strain relation
//  ε = σ/E + (σ/K')^(1/n')
// with Masing behaviour after the first reversal.
type CyclicCurve struct {
	E  float64 // elastic modulus
	Kp float64 // cyclic strength coefficient K'
	Np float64 // cyclic strain hardening exponent n'
}

// Invert maps a stress history to the corresponding strain history. The first
// excursion follows the monotonic curve; later excursions branch from the last
// reversal with the factor-of-two rule.
//  Note: a history not starting at zero gets the origin prepended, so the
//  output can be one sample longer than the input; callers take the trailing
//  part matching the input length.
func (o CyclicCurve) Invert(σ []float64) (ε []float64) {
	if len(σ) == 0 {
		return
	}
	s := σ
	if σ[0] != 0 {
		s = make([]float64, 0, len(σ)+1)
		s = append(s, 0)
		s = append(s, σ...)
	}
	ε = make([]float64, len(s))
	var σr, εr float64 // active branch origin (last reversal)
	dir := 0.0         // sign of the active branch
	first := true      // still on the monotonic curve
	for i := 1; i < len(s); i++ {
		d := sgn(s[i] - s[i-1])
		if d != 0 && d != dir {
			if dir != 0 {
				first = false
			}
			σr, εr = s[i-1], ε[i-1]
			dir = d
		}
		Δσ := s[i] - σr
		if first {
			ε[i] = εr + Δσ/o.E + sgn(Δσ)*math.Pow(math.Abs(Δσ)/o.Kp, 1.0/o.Np)
		} else {
			ε[i] = εr + Δσ/o.E + 2.0*sgn(Δσ)*math.Pow(math.Abs(Δσ)/(2.0*o.Kp), 1.0/o.Np)
		}
	}
	return
}

func sgn(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
