// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfa

import (
	"math"

	"github.com/xpgo/quick-fatigue-tool/inp"
	"github.com/xpgo/quick-fatigue-tool/mcomp"
)

// evalLocation evaluates every available criteria family at one location and
// writes the worst value over the loading history into each criterion slot.
// The reductions are plain maxima, so the sample order is irrelevant.
func (o *Results) evalLocation(i int, p *mcomp.Props, sf *inp.StressField) {

	// stress histories of this location
	s11, s22, s33 := sf.S11[i], sf.S22[i], sf.S33[i]
	s12, s13, s23 := sf.S12[i], sf.S13[i], sf.S23[i]
	L := len(s11)

	// out-of-plane components are informational only
	for j := 0; j < L; j++ {
		if s33[j] != 0 || s13[j] != 0 || s23[j] != 0 {
			o.AddDiag(CodeOutOfPlane, "location %d-%d has out-of-plane stresses; the in-plane criteria ignore them", o.MainID[i], o.SubID[i])
			break
		}
	}

	ninf := math.Inf(-1)

	// general stress family
	if p.Avail.General == mcomp.Full {
		ms, th, tw, az := ninf, ninf, ninf, ninf
		for j := 0; j < L; j++ {
			σ1, σ2, σ12 := s11[j], s22[j], s12[j]
			if v := p.Fs.MaxStress(σ1, σ2, σ12); v > ms {
				ms = v
			}
			if v := p.Fs.TsaiHill(σ1, σ2, σ12); v > th {
				th = v
			}
			if v := p.Tw.Eval(σ1, σ2, σ12); v > tw {
				tw = v
			}
			if v := p.Fs.AzziTsaiHill(σ1, σ2, σ12); v > az {
				az = v
			}
		}
		o.Mstrs[i] = ms
		o.Tsaih[i] = th
		o.Tsaiw[i] = tw
		o.Azzit[i] = az
	}

	// through-thickness family. The per-sample ratio may be undefined or
	// infinite on a zero interlaminar shear; Aggregate sanitizes the
	// reduced value.
	if p.Avail.TT == mcomp.Full {
		tt, k := ninf, ninf
		for j := 0; j < L; j++ {
			if v := p.Twtt.Eval(s22[j], s33[j]); v > tt {
				tt = v
			}
			if v := s12[j] / s23[j]; v > k {
				k = v
			}
		}
		o.Tsaiwtt[i] = tt
		o.K[i] = k
	}

	// strain family
	if p.Avail.Strain != mcomp.Off {
		ε1 := p.Strains(s11, false)
		ε2 := p.Strains(s22, false)
		γ12 := p.Strains(s12, true)
		mn := ninf
		for j := 0; j < L; j++ {
			if v := p.Fe.MaxStrain(ε1[j], ε2[j], γ12[j]); v > mn {
				mn = v
			}
		}
		o.Mstrn[i] = mn
	}

	// Hashin family
	if p.Avail.Hashin == mcomp.Full {
		ftx, fcx, mtx, mcx := ninf, ninf, ninf, ninf
		for j := 0; j < L; j++ {
			ft, fc, mt, mc := p.Fh.Modes(s11[j], s22[j], s12[j])
			if ft > ftx {
				ftx = ft
			}
			if fc > fcx {
				fcx = fc
			}
			if mt > mtx {
				mtx = mt
			}
			if mc > mcx {
				mcx = mc
			}
		}
		o.Hsnftcrt[i] = ftx
		o.Hsnfccrt[i] = fcx
		o.Hsnmtcrt[i] = mtx
		o.Hsnmccrt[i] = mcx
	}
}
