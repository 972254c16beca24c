// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"github.com/cpmech/gosl/io"

	"github.com/xpgo/quick-fatigue-tool/inp"
	"github.com/xpgo/quick-fatigue-tool/mcomp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data
	matfn := io.ArgToString(0, "materials.mat")
	io.Pf("\n%s\n", io.ArgsTable(
		"materials filename", "matfn", matfn,
	))

	// read database
	mdb := inp.ReadMat("", matfn)
	if mdb == nil {
		io.PfRed("cannot read materials database %q\n", matfn)
		return
	}

	// availability table
	name := func(m mcomp.Mode) string {
		switch m {
		case mcomp.Linear:
			return "linear"
		case mcomp.Full:
			return "full"
		}
		return "off"
	}
	io.Pf("%-24s%-10s%-10s%-10s%-10s\n", "material", "general", "tt", "strain", "hashin")
	for _, m := range mdb.Materials {
		var p mcomp.Props
		err := p.Init(m.Prms)
		if err != nil {
			io.PfRed("%-24s%v\n", m.Name, err)
			continue
		}
		a := p.Avail
		io.Pf("%-24s%-10s%-10s%-10s%-10s\n", m.Name,
			name(a.General), name(a.TT), name(a.Strain), name(a.Hashin))
	}
}
