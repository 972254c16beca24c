// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcomp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_tw01(tst *testing.T) {

	verbose()
	chk.PrintTitle("tw01. in-plane coefficients, cross term variants")

	fs := FailStress{
		Xt: 100, Xc: -200, Yt: 10, Yc: -20, S: 50,
		OkXt: true, OkXc: true, OkYt: true, OkYc: true, OkS: true,
	}

	// neither interaction ratio nor biaxial limit: cross term is zero
	c := CalcTsaiWu(&fs)
	io.Pforan("c = %+v\n", c)
	chk.Scalar(tst, "F1", 1e-17, c.F1, 0.005)
	chk.Scalar(tst, "F2", 1e-17, c.F2, 0.05)
	chk.Scalar(tst, "F11", 1e-17, c.F11, 5e-5)
	chk.Scalar(tst, "F22", 1e-17, c.F22, 5e-3)
	chk.Scalar(tst, "F66", 1e-17, c.F66, 4e-4)
	chk.Scalar(tst, "F12", 1e-17, c.F12, 0.0)

	// interaction ratio scales the geometric mean of the quadratic terms
	fs.Fxy, fs.OkFxy = -0.5, true
	c = CalcTsaiWu(&fs)
	chk.Scalar(tst, "F12 from ratio", 1e-17, c.F12, -2.5e-4)

	// an explicit equibiaxial limit has precedence over the ratio
	fs.Bxy, fs.OkBxy = 15, true
	c = CalcTsaiWu(&fs)
	chk.Scalar(tst, "F12 from biaxial limit", 1e-15, c.F12, -0.96125/450.0)

	// ratios are one at the strength points whatever the cross term
	chk.Scalar(tst, "TW(xt,0,0)", 1e-15, c.Eval(100, 0, 0), 1.0)
	chk.Scalar(tst, "TW(0,yc,0)", 1e-15, c.Eval(0, -20, 0), 1.0)
	chk.Scalar(tst, "TW(0,0,-s)", 1e-15, c.Eval(0, 0, -50), 1.0)
}

func Test_twtt01(tst *testing.T) {

	verbose()
	chk.PrintTitle("twtt01. through-thickness coefficients")

	fs := FailStress{
		Yt: 10, Yc: -20, Zt: 5, Zc: -10,
		OkYt: true, OkYc: true, OkZt: true, OkZc: true,
		Fyz: -0.5, OkFyz: true,
	}
	c := CalcTsaiWuTT(&fs)
	io.Pforan("c = %+v\n", c)
	chk.Scalar(tst, "F2", 1e-17, c.F2, 0.05)
	chk.Scalar(tst, "F3", 1e-17, c.F3, 0.1)
	chk.Scalar(tst, "F22", 1e-17, c.F22, 5e-3)
	chk.Scalar(tst, "F33", 1e-17, c.F33, 2e-2)
	chk.Scalar(tst, "F23", 1e-17, c.F23, -5e-3)

	chk.Scalar(tst, "TWTT(yt,0)", 1e-15, c.Eval(10, 0), 1.0)
	chk.Scalar(tst, "TWTT(0,zt)", 1e-15, c.Eval(0, 5), 1.0)
	chk.Scalar(tst, "TWTT(0,zc)", 1e-15, c.Eval(0, -10), 1.0)

	// no shear term in this form: the in-plane shear strength plays no role
	fs.S, fs.OkS = 50, true
	c2 := CalcTsaiWuTT(&fs)
	chk.Scalar(tst, "F23 unchanged", 1e-17, c2.F23, c.F23)
}
