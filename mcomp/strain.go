// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// FailStrain holds the strain-based failure limits and the stress-strain data
// of one composite material. Compressive strain limits are negative.
type FailStrain struct {

	// strain limits
	Xet, Xec float64 // axis-1 tensile/compressive strain limits
	Yet, Yec float64 // axis-2 tensile/compressive strain limits
	Se       float64 // in-plane shear strain limit

	// stress-strain data
	E  float64 // elastic modulus
	Nu float64 // Poisson coefficient
	Kp float64 // cyclic strength coefficient K'
	Np float64 // cyclic strain hardening exponent n'

	// presence flags
	OkXet, OkXec, OkYet, OkYec bool
	OkSe                       bool
	OkE, OkNu                  bool
	OkKp, OkNp                 bool
}

// xsel returns the axis-1 strain limit for the sign of ε1
func (o *FailStrain) xsel(ε1 float64) float64 {
	if ε1 < 0 {
		return o.Xec
	}
	return o.Xet
}

// ysel returns the axis-2 strain limit for the sign of ε2
func (o *FailStrain) ysel(ε2 float64) float64 {
	if ε2 < 0 {
		return o.Yec
	}
	return o.Yet
}

// MaxStrain returns the maximum strain failure ratio for one strain sample
func (o *FailStrain) MaxStrain(ε1, ε2, γ12 float64) float64 {
	r := utl.Max(ε1/o.xsel(ε1), ε2/o.ysel(ε2))
	return utl.Max(r, math.Abs(γ12)/o.Se)
}
