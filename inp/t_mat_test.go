// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_mat01(tst *testing.T) {

	verbose()
	chk.PrintTitle("mat01. read materials database")

	mdb := ReadMat("data", "materials.mat")
	if mdb == nil {
		tst.Errorf("cannot read materials database\n")
		return
	}
	chk.IntAssert(len(mdb.Materials), 2)

	mat := mdb.Get("carbon-epoxy")
	if mat == nil {
		tst.Errorf("cannot find carbon-epoxy\n")
		return
	}
	io.Pforan("mat = %v\n", mat.Name)
	if prm := mat.Prms.Find("xt"); prm == nil || prm.V != 1500 {
		tst.Errorf("wrong xt parameter\n")
		return
	}
	if prm := mat.Prms.Find("xc"); prm == nil || prm.V != -1200 {
		tst.Errorf("wrong xc parameter\n")
		return
	}

	// partial material
	mat = mdb.Get("glass-mat")
	if mat == nil {
		tst.Errorf("cannot find glass-mat\n")
		return
	}
	if prm := mat.Prms.Find("xc"); prm != nil {
		tst.Errorf("glass-mat must have no xc parameter\n")
		return
	}

	// absent material
	if mdb.Get("steel") != nil {
		tst.Errorf("Get must return nil for an absent material\n")
		return
	}

	// formatted output
	if len(mdb.String()) == 0 {
		tst.Errorf("String returned nothing\n")
		return
	}
}
