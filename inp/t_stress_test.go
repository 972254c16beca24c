// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_stress01(tst *testing.T) {

	verbose()
	chk.PrintTitle("stress01. read stress field")

	sf, err := ReadStress("data", "plate4-stress.json")
	if err != nil {
		tst.Errorf("ReadStress failed: %v\n", err)
		return
	}
	chk.IntAssert(sf.Nloc(), 4)
	chk.Vector(tst, "s11 @ 0", 1e-17, sf.S11[0], []float64{100, 1500, 300})
	chk.Vector(tst, "s12 @ 1", 1e-17, sf.S12[1], []float64{5, 35, -70})
	chk.Vector(tst, "s23 @ 2", 1e-17, sf.S23[2], []float64{1, 2, 1})
	chk.Ints(tst, "mainid", sf.MainID, []int{1, 2, 3, 4})
}

func Test_stress02(tst *testing.T) {

	verbose()
	chk.PrintTitle("stress02. save and read back, json and gob")

	sf, err := ReadStress("data", "plate4-stress.json")
	if err != nil {
		tst.Errorf("ReadStress failed: %v\n", err)
		return
	}

	dir := "/tmp/qft/test_inp"
	for _, enctype := range []string{"json", "gob"} {
		err = sf.Save(dir, "plate4", enctype, chk.Verbose)
		if err != nil {
			tst.Errorf("Save (%s) failed: %v\n", enctype, err)
			return
		}
		rd, err := ReadStress(dir, io.Sf("plate4-stress.%s", enctype))
		if err != nil {
			tst.Errorf("read back (%s) failed: %v\n", enctype, err)
			return
		}
		chk.IntAssert(rd.Nloc(), 4)
		for k := 0; k < 4; k++ {
			chk.Vector(tst, io.Sf("%s s11 @ %d", enctype, k), 1e-17, rd.S11[k], sf.S11[k])
			chk.Vector(tst, io.Sf("%s s33 @ %d", enctype, k), 1e-17, rd.S33[k], sf.S33[k])
		}
	}
}

func Test_stress03(tst *testing.T) {

	verbose()
	chk.PrintTitle("stress03. parallel component checks")

	// ragged outer length
	bad := StressField{
		S11: [][]float64{{1, 2}},
		S22: [][]float64{{1, 2}, {3, 4}},
		S33: [][]float64{{1, 2}},
		S12: [][]float64{{1, 2}},
		S13: [][]float64{{1, 2}},
		S23: [][]float64{{1, 2}},
	}
	if bad.Check() == nil {
		tst.Errorf("Check must fail with mismatching location counts\n")
		return
	}

	// ragged history length
	bad = StressField{
		S11: [][]float64{{1, 2}},
		S22: [][]float64{{1}},
		S33: [][]float64{{1, 2}},
		S12: [][]float64{{1, 2}},
		S13: [][]float64{{1, 2}},
		S23: [][]float64{{1, 2}},
	}
	if bad.Check() == nil {
		tst.Errorf("Check must fail with mismatching history lengths\n")
		return
	}

	// empty history
	bad = StressField{
		S11: [][]float64{{}},
		S22: [][]float64{{}},
		S33: [][]float64{{}},
		S12: [][]float64{{}},
		S13: [][]float64{{}},
		S23: [][]float64{{}},
	}
	if bad.Check() == nil {
		tst.Errorf("Check must fail with an empty history\n")
		return
	}

	// per-location history lengths may differ from each other
	ok := StressField{
		S11: [][]float64{{1, 2}, {1, 2, 3}},
		S22: [][]float64{{1, 2}, {1, 2, 3}},
		S33: [][]float64{{1, 2}, {1, 2, 3}},
		S12: [][]float64{{1, 2}, {1, 2, 3}},
		S13: [][]float64{{1, 2}, {1, 2, 3}},
		S23: [][]float64{{1, 2}, {1, 2, 3}},
	}
	if err := ok.Check(); err != nil {
		tst.Errorf("Check must accept varying lengths across locations: %v\n", err)
		return
	}
}
