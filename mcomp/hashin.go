// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

// FailHashin holds the Hashin damage initiation data of one composite
// material. This is its own parameter set; it is never aliased with
// FailStress even where strength names coincide. Compressive strengths
// are negative.
type FailHashin struct {

	// strengths
	Xt, Xc float64 // longitudinal tensile/compressive strengths
	Yt, Yc float64 // transverse tensile/compressive strengths
	Sl, St float64 // longitudinal/transverse shear strengths

	// coefficient
	Alp float64 // shear contribution to the fibre tension mode; zero if absent

	// presence flags
	OkXt, OkXc, OkYt, OkYc bool
	OkSl, OkSt             bool
	OkAlp                  bool
}

// Modes returns the four Hashin damage initiation measures for one in-plane
// stress sample. The sign of each normal stress selects the tension or the
// compression mode; the inactive mode of the pair returns zero for this
// sample.
func (o *FailHashin) Modes(σ1, σ2, σ12 float64) (ft, fc, mt, mc float64) {
	rl := σ12 / o.Sl
	if σ1 >= 0 {
		ft = σ1*σ1/(o.Xt*o.Xt) + o.Alp*rl*rl
	} else {
		fc = σ1 * σ1 / (o.Xc * o.Xc)
	}
	if σ2 >= 0 {
		mt = σ2*σ2/(o.Yt*o.Yt) + rl*rl
	} else {
		a := σ2 / (2.0 * o.St)
		b := o.Yc / (2.0 * o.St)
		mc = a*a + (b*b-1.0)*σ2/o.Yc + rl*rl
	}
	return
}
