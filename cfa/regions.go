// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfa

import (
	"github.com/cpmech/gosl/chk"

	"github.com/xpgo/quick-fatigue-tool/inp"
	"github.com/xpgo/quick-fatigue-tool/mcomp"
)

// Region is one contiguous run of locations sharing one resolved material.
// Regions follow the job's group order; the first location of a region is the
// running sum of the previous counts.
type Region struct {
	Desc  string       // description; e.g. skin, spar cap
	Mat   string       // material name
	Nloc  int          // number of locations in this region
	Props *mcomp.Props // resolved failure properties
}

// ResolveRegions resolves one region per job group. Each distinct material is
// resolved once; regions naming the same material share one read-only Props.
func ResolveRegions(job *inp.Job) (regions []*Region, err error) {
	resolved := make(map[string]*mcomp.Props)
	regions = make([]*Region, len(job.Groups))
	for i, g := range job.Groups {
		p, ok := resolved[g.Mat]
		if !ok {
			m := job.MatParams.Get(g.Mat)
			if m == nil {
				return nil, chk.Err("cannot find material %q of group # %d in the database", g.Mat, i)
			}
			p = new(mcomp.Props)
			err = p.Init(m.Prms)
			if err != nil {
				return nil, chk.Err("cannot initialise material %q of group # %d:\n%v", g.Mat, i, err)
			}
			resolved[g.Mat] = p
		}
		regions[i] = &Region{g.Desc, g.Mat, g.Nloc, p}
	}
	return
}
