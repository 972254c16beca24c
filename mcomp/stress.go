// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mcomp implements failure criteria models for composite materials
package mcomp

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// FailStress holds the stress-based failure limits of one composite material.
// Compressive strengths are negative. Each field has a presence flag; partial
// presence degrades or disables the criteria families that need the field.
type FailStress struct {

	// strengths
	Xt, Xc float64 // axis-1 (fibre) tensile/compressive strengths
	Yt, Yc float64 // axis-2 (transverse) tensile/compressive strengths
	Zt, Zc float64 // axis-3 (through-thickness) tensile/compressive strengths
	S      float64 // in-plane shear strength

	// Tsai-Wu cross-term data
	Fxy float64 // in-plane interaction ratio
	Fyz float64 // through-thickness interaction ratio
	Bxy float64 // in-plane equibiaxial stress limit
	Byz float64 // through-thickness equibiaxial stress limit

	// presence flags
	OkXt, OkXc, OkYt, OkYc bool
	OkZt, OkZc             bool
	OkS                    bool
	OkFxy, OkFyz           bool
	OkBxy, OkByz           bool
}

// xsel returns the axis-1 strength for the sign of σ1
func (o *FailStress) xsel(σ1 float64) float64 {
	if σ1 < 0 {
		return o.Xc
	}
	return o.Xt
}

// ysel returns the axis-2 strength for the sign of σ2
func (o *FailStress) ysel(σ2 float64) float64 {
	if σ2 < 0 {
		return o.Yc
	}
	return o.Yt
}

// MaxStress returns the maximum stress failure ratio for one in-plane sample.
// The shear ratio is considered only if the shear strength is present.
func (o *FailStress) MaxStress(σ1, σ2, σ12 float64) (r float64) {
	r = utl.Max(σ1/o.xsel(σ1), σ2/o.ysel(σ2))
	if o.OkS {
		r = utl.Max(r, math.Abs(σ12)/o.S)
	}
	return
}

// TsaiHill returns the Tsai-Hill failure ratio for one in-plane sample
func (o *FailStress) TsaiHill(σ1, σ2, σ12 float64) (r float64) {
	x := o.xsel(σ1)
	y := o.ysel(σ2)
	r = σ1*σ1/(x*x) - σ1*σ2/(x*x) + σ2*σ2/(y*y)
	if o.OkS {
		r += σ12 * σ12 / (o.S * o.S)
	}
	return
}

// AzziTsaiHill returns the Azzi-Tsai-Hill failure ratio for one in-plane
// sample. Same as Tsai-Hill but the interaction term uses the magnitude of
// the product of the normal stresses.
func (o *FailStress) AzziTsaiHill(σ1, σ2, σ12 float64) (r float64) {
	x := o.xsel(σ1)
	y := o.ysel(σ2)
	r = σ1*σ1/(x*x) - math.Abs(σ1*σ2)/(x*x) + σ2*σ2/(y*y)
	if o.OkS {
		r += σ12 * σ12 / (o.S * o.S)
	}
	return
}
