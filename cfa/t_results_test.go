// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfa

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/xpgo/quick-fatigue-tool/inp"
	"github.com/xpgo/quick-fatigue-tool/mcomp"
)

// field returns a one-location stress field loaded in-plane only
func field(s11, s22, s12 []float64) *inp.StressField {
	z := make([]float64, len(s11))
	return &inp.StressField{
		S11: [][]float64{s11}, S22: [][]float64{s22}, S33: [][]float64{z},
		S12: [][]float64{s12}, S13: [][]float64{z}, S23: [][]float64{z},
		MainID: []int{1}, SubID: []int{0},
	}
}

func Test_res01(tst *testing.T) {

	verbose()
	chk.PrintTitle("res01. appending a milder sample changes nothing")

	mdb := inp.ReadMat("data", "materials.mat")
	if mdb == nil {
		tst.Errorf("cannot read materials database\n")
		return
	}
	var p mcomp.Props
	err := p.Init(mdb.Get("cfrp").Prms)
	if err != nil {
		tst.Errorf("cannot initialise cfrp:\n%v", err)
		return
	}

	sfa := field([]float64{1000, 500}, []float64{20, -10}, []float64{30, 15})
	sfb := field([]float64{1000, 500, 100}, []float64{20, -10, 2}, []float64{30, 15, 3})

	ra := NewResults(sfa)
	rb := NewResults(sfb)
	ra.evalLocation(0, &p, sfa)
	rb.evalLocation(0, &p, sfb)
	for c := 0; c < Ncrit; c++ {
		chk.Scalar(tst, CritNames[c], 1e-17, rb.Seq(c)[0], ra.Seq(c)[0])
	}
}

func Test_res02(tst *testing.T) {

	verbose()
	chk.PrintTitle("res02. identical inputs give identical results")

	a := New("data/plate4.job", "", false, false)
	b := New("data/plate4.job", "", false, false)
	if err := a.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	if err := b.Run(); err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	for c := 0; c < Ncrit; c++ {
		chk.Vector(tst, CritNames[c], 1e-17, a.Results.Seq(c), b.Results.Seq(c))
	}
	chk.Vector(tst, "k", 1e-17, a.Results.K, b.Results.K)
}

func Test_res03(tst *testing.T) {

	verbose()
	chk.PrintTitle("res03. thresholds and ratio sanitization")

	sf := &inp.StressField{
		S11:    [][]float64{{0}, {0}, {0}, {0}},
		S22:    [][]float64{{0}, {0}, {0}, {0}},
		S33:    [][]float64{{0}, {0}, {0}, {0}},
		S12:    [][]float64{{0}, {0}, {0}, {0}},
		S13:    [][]float64{{0}, {0}, {0}, {0}},
		S23:    [][]float64{{0}, {0}, {0}, {0}},
		MainID: []int{1, 2, 3, 4}, SubID: []int{0, 0, 0, 0},
	}
	res := NewResults(sf)
	res.AnyEvaluated = true

	// exactly at the threshold counts as failing; just below does not
	res.Mstrs[0] = 1.0
	res.Mstrs[1] = 0.999999

	// non-finite ratios become zero; the finite one lowers the threshold
	res.K[0] = math.Inf(1)
	res.K[1] = math.NaN()
	res.K[2] = 0.8
	res.Tsaiwtt[0] = 0.99 // threshold back to 1 after sanitizing
	res.Tsaiwtt[2] = 0.5  // 0.5 ≥ 1 - 0.64

	res.Aggregate()
	chk.Scalar(tst, "k0", 1e-17, res.K[0], 0.0)
	chk.Scalar(tst, "k1", 1e-17, res.K[1], 0.0)
	chk.Scalar(tst, "k2", 1e-17, res.K[2], 0.8)
	chk.IntAssert(res.NFail[IMstrs], 1)
	chk.IntAssert(res.NFail[ITsaiwtt], 1)
}
