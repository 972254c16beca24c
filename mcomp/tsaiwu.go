// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import "math"

// TsaiWuCoefs holds the in-plane Tsai-Wu coefficients
type TsaiWuCoefs struct {
	F1, F2   float64 // linear terms
	F11, F22 float64 // quadratic terms
	F66      float64 // shear term; zero if the shear strength is absent
	F12      float64 // cross term
}

// TsaiWuTTCoefs holds the through-thickness Tsai-Wu coefficients, acting on
// the transverse and through-thickness normal stresses. Storage is kept
// separate from TsaiWuCoefs even where quantities share a name, because the
// two derivations draw on different strengths.
type TsaiWuTTCoefs struct {
	F2, F3   float64 // linear terms
	F22, F33 float64 // quadratic terms
	F23      float64 // cross term
}

// CalcTsaiWu computes the in-plane Tsai-Wu coefficients.
//  Note: needs Xt, Xc, Yt and Yc; compressive strengths negative.
//  The cross term comes from the equibiaxial limit when given, from the
//  interaction ratio otherwise, and is zero when neither is given.
func CalcTsaiWu(fs *FailStress) (c TsaiWuCoefs) {
	c.F1 = 1.0/fs.Xt + 1.0/fs.Xc
	c.F2 = 1.0/fs.Yt + 1.0/fs.Yc
	c.F11 = -1.0 / (fs.Xt * fs.Xc)
	c.F22 = -1.0 / (fs.Yt * fs.Yc)
	if fs.OkS {
		c.F66 = 1.0 / (fs.S * fs.S)
	}
	switch {
	case fs.OkBxy:
		B := fs.Bxy
		c.F12 = (1.0 - (c.F1+c.F2)*B - (c.F11+c.F22)*B*B) / (2.0 * B * B)
	case fs.OkFxy:
		c.F12 = fs.Fxy * math.Sqrt(c.F11*c.F22)
	}
	return
}

// CalcTsaiWuTT computes the through-thickness Tsai-Wu coefficients.
//  Note: needs Yt, Yc, Zt and Zc; no shear term in this form.
func CalcTsaiWuTT(fs *FailStress) (c TsaiWuTTCoefs) {
	c.F2 = 1.0/fs.Yt + 1.0/fs.Yc
	c.F3 = 1.0/fs.Zt + 1.0/fs.Zc
	c.F22 = -1.0 / (fs.Yt * fs.Yc)
	c.F33 = -1.0 / (fs.Zt * fs.Zc)
	switch {
	case fs.OkByz:
		B := fs.Byz
		c.F23 = (1.0 - (c.F2+c.F3)*B - (c.F22+c.F33)*B*B) / (2.0 * B * B)
	case fs.OkFyz:
		c.F23 = fs.Fyz * math.Sqrt(c.F22*c.F33)
	}
	return
}

// Eval returns the in-plane Tsai-Wu failure ratio for one stress sample
func (o *TsaiWuCoefs) Eval(σ1, σ2, σ12 float64) float64 {
	return o.F1*σ1 + o.F2*σ2 + o.F11*σ1*σ1 + o.F22*σ2*σ2 + 2.0*o.F12*σ1*σ2 + o.F66*σ12*σ12
}

// Eval returns the through-thickness Tsai-Wu failure ratio for one stress sample
func (o *TsaiWuTTCoefs) Eval(σ2, σ3 float64) float64 {
	return o.F2*σ2 + o.F3*σ3 + o.F22*σ2*σ2 + o.F33*σ3*σ3 + 2.0*o.F23*σ2*σ3
}
