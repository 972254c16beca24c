// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Mode defines how far a criteria family can be evaluated
type Mode int

const (
	Off    Mode = iota // family cannot be evaluated
	Linear             // strain family only: strains from linear elasticity
	Full               // family fully evaluable
)

// Avail holds the availability of each criteria family
type Avail struct {
	General Mode // max stress, Tsai-Hill, Tsai-Wu, Azzi-Tsai-Hill
	TT      Mode // through-thickness Tsai-Wu
	Strain  Mode // max strain
	Hashin  Mode // Hashin damage initiation modes
}

// Any tells whether at least one family can be evaluated
func (o *Avail) Any() bool {
	return o.General != Off || o.TT != Off || o.Strain != Off || o.Hashin != Off
}

// Props holds the resolved failure properties of one composite material
type Props struct {

	// input records
	Fs FailStress // stress-based limits
	Fe FailStrain // strain-based limits and stress-strain data
	Fh FailHashin // Hashin data

	// derived
	Avail Avail         // per-family availability
	Tw    TsaiWuCoefs   // in-plane Tsai-Wu coefficients
	Twtt  TsaiWuTTCoefs // through-thickness Tsai-Wu coefficients
	G     float64       // shear modulus for strains in Linear mode
}

// Init reads the named parameters of one composite material, checks the sign
// convention, classifies the availability of each criteria family and derives
// the Tsai-Wu coefficients of the enabled forms.
//  Note: missing parameters are not errors; they degrade or disable families.
func (o *Props) Init(prms fun.Prms) (err error) {

	// parse parameters
	for _, p := range prms {
		switch p.N {

		// stress-based limits
		case "xt":
			o.Fs.Xt, o.Fs.OkXt = p.V, true
		case "xc":
			o.Fs.Xc, o.Fs.OkXc = p.V, true
		case "yt":
			o.Fs.Yt, o.Fs.OkYt = p.V, true
		case "yc":
			o.Fs.Yc, o.Fs.OkYc = p.V, true
		case "zt":
			o.Fs.Zt, o.Fs.OkZt = p.V, true
		case "zc":
			o.Fs.Zc, o.Fs.OkZc = p.V, true
		case "s":
			o.Fs.S, o.Fs.OkS = p.V, true
		case "fxy":
			o.Fs.Fxy, o.Fs.OkFxy = p.V, true
		case "fyz":
			o.Fs.Fyz, o.Fs.OkFyz = p.V, true
		case "bxy":
			o.Fs.Bxy, o.Fs.OkBxy = p.V, true
		case "byz":
			o.Fs.Byz, o.Fs.OkByz = p.V, true

		// strain-based limits and stress-strain data
		case "xet":
			o.Fe.Xet, o.Fe.OkXet = p.V, true
		case "xec":
			o.Fe.Xec, o.Fe.OkXec = p.V, true
		case "yet":
			o.Fe.Yet, o.Fe.OkYet = p.V, true
		case "yec":
			o.Fe.Yec, o.Fe.OkYec = p.V, true
		case "se":
			o.Fe.Se, o.Fe.OkSe = p.V, true
		case "E":
			o.Fe.E, o.Fe.OkE = p.V, true
		case "nu":
			o.Fe.Nu, o.Fe.OkNu = p.V, true
		case "kp":
			o.Fe.Kp, o.Fe.OkKp = p.V, true
		case "np":
			o.Fe.Np, o.Fe.OkNp = p.V, true

		// Hashin data
		case "hxt":
			o.Fh.Xt, o.Fh.OkXt = p.V, true
		case "hxc":
			o.Fh.Xc, o.Fh.OkXc = p.V, true
		case "hyt":
			o.Fh.Yt, o.Fh.OkYt = p.V, true
		case "hyc":
			o.Fh.Yc, o.Fh.OkYc = p.V, true
		case "hsl":
			o.Fh.Sl, o.Fh.OkSl = p.V, true
		case "hst":
			o.Fh.St, o.Fh.OkSt = p.V, true
		case "halp":
			o.Fh.Alp, o.Fh.OkAlp = p.V, true

		case "rho":
		default:
			return chk.Err("mcomp: parameter named %q is incorrect\n", p.N)
		}
	}

	// check sign convention
	type prmval struct {
		n  string
		ok bool
		v  float64
	}
	for _, c := range []prmval{
		{"xt", o.Fs.OkXt, o.Fs.Xt},
		{"yt", o.Fs.OkYt, o.Fs.Yt},
		{"zt", o.Fs.OkZt, o.Fs.Zt},
		{"s", o.Fs.OkS, o.Fs.S},
		{"xet", o.Fe.OkXet, o.Fe.Xet},
		{"yet", o.Fe.OkYet, o.Fe.Yet},
		{"se", o.Fe.OkSe, o.Fe.Se},
		{"E", o.Fe.OkE, o.Fe.E},
		{"kp", o.Fe.OkKp, o.Fe.Kp},
		{"np", o.Fe.OkNp, o.Fe.Np},
		{"hxt", o.Fh.OkXt, o.Fh.Xt},
		{"hyt", o.Fh.OkYt, o.Fh.Yt},
		{"hsl", o.Fh.OkSl, o.Fh.Sl},
		{"hst", o.Fh.OkSt, o.Fh.St},
	} {
		if c.ok && c.v <= 0 {
			return chk.Err("mcomp: parameter %q must be positive (%g is invalid)\n", c.n, c.v)
		}
	}
	for _, c := range []prmval{
		{"xc", o.Fs.OkXc, o.Fs.Xc},
		{"yc", o.Fs.OkYc, o.Fs.Yc},
		{"zc", o.Fs.OkZc, o.Fs.Zc},
		{"xec", o.Fe.OkXec, o.Fe.Xec},
		{"yec", o.Fe.OkYec, o.Fe.Yec},
		{"hxc", o.Fh.OkXc, o.Fh.Xc},
		{"hyc", o.Fh.OkYc, o.Fh.Yc},
	} {
		if c.ok && c.v >= 0 {
			return chk.Err("mcomp: compressive parameter %q must be negative (%g is invalid)\n", c.n, c.v)
		}
	}

	// availability of stress-based families
	if o.Fs.OkXt && o.Fs.OkXc && o.Fs.OkYt && o.Fs.OkYc {
		o.Avail.General = Full
	}
	if o.Fs.OkYt && o.Fs.OkYc && o.Fs.OkZt && o.Fs.OkZc {
		o.Avail.TT = Full
	}
	if o.Fh.OkXt && o.Fh.OkXc && o.Fh.OkYt && o.Fh.OkYc && o.Fh.OkSl && o.Fh.OkSt {
		o.Avail.Hashin = Full
	}

	// availability of the strain family
	if o.Fe.OkXet && o.Fe.OkXec && o.Fe.OkYet && o.Fe.OkYec && o.Fe.OkSe {
		switch {
		case o.Fe.OkE && o.Fe.OkKp && o.Fe.OkNp:
			o.Avail.Strain = Full
		case o.Fe.OkE && o.Fe.OkNu:
			o.Avail.Strain = Linear
			o.G = o.Fe.E / (2.0 * (1.0 + o.Fe.Nu))
		}
	}

	// Tsai-Wu coefficients
	if o.Avail.General == Full {
		o.Tw = CalcTsaiWu(&o.Fs)
	}
	if o.Avail.TT == Full {
		o.Twtt = CalcTsaiWuTT(&o.Fs)
	}
	return
}

// Strains maps one stress history to the corresponding strains per the strain
// family mode. In Full mode the history runs through the cyclic curve, taking
// the trailing part when the curve prepends the origin. In Linear mode the
// normal components divide by E and the shear by G.
func (o *Props) Strains(σ []float64, shear bool) (ε []float64) {
	if o.Avail.Strain == Full {
		cc := CyclicCurve{E: o.Fe.E, Kp: o.Fe.Kp, Np: o.Fe.Np}
		ε = cc.Invert(σ)
		return ε[len(ε)-len(σ):]
	}
	d := o.Fe.E
	if shear {
		d = o.G
	}
	ε = make([]float64, len(σ))
	for i, v := range σ {
		ε[i] = v / d
	}
	return
}

// GetPrms returns an example of parameters for a fully described material
func (o Props) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "xt", V: 1500, U: "MPa"},
		&fun.Prm{N: "xc", V: -1200, U: "MPa"},
		&fun.Prm{N: "yt", V: 50, U: "MPa"},
		&fun.Prm{N: "yc", V: -250, U: "MPa"},
		&fun.Prm{N: "zt", V: 50, U: "MPa"},
		&fun.Prm{N: "zc", V: -250, U: "MPa"},
		&fun.Prm{N: "s", V: 70, U: "MPa"},
		&fun.Prm{N: "fxy", V: -0.5},
		&fun.Prm{N: "fyz", V: -0.5},
		&fun.Prm{N: "xet", V: 0.0105},
		&fun.Prm{N: "xec", V: -0.0085},
		&fun.Prm{N: "yet", V: 0.005},
		&fun.Prm{N: "yec", V: -0.014},
		&fun.Prm{N: "se", V: 0.02},
		&fun.Prm{N: "E", V: 138000, U: "MPa"},
		&fun.Prm{N: "nu", V: 0.28},
		&fun.Prm{N: "kp", V: 2100, U: "MPa"},
		&fun.Prm{N: "np", V: 0.16},
		&fun.Prm{N: "hxt", V: 1500, U: "MPa"},
		&fun.Prm{N: "hxc", V: -1200, U: "MPa"},
		&fun.Prm{N: "hyt", V: 50, U: "MPa"},
		&fun.Prm{N: "hyc", V: -250, U: "MPa"},
		&fun.Prm{N: "hsl", V: 70, U: "MPa"},
		&fun.Prm{N: "hst", V: 50, U: "MPa"},
		&fun.Prm{N: "halp", V: 1},
	}
}
