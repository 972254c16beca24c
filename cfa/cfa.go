// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cfa implements the composite failure assessment of stress histories
package cfa

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/xpgo/quick-fatigue-tool/inp"
	"github.com/xpgo/quick-fatigue-tool/mcomp"
)

// Analysis holds all data for one composite failure assessment run
type Analysis struct {
	Job     *inp.Job  // job data, materials database and stress field
	Regions []*Region // resolved regions, in location order
	Results *Results  // margins, failing counts and diagnostics
	Verbose bool      // show messages
}

// New returns a new Analysis structure
//  Input:
//   jobfilepath -- job (.job) filename including full path
//   alias       -- word to be appended to the job key; e.g. when running one job repeatedly
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
func New(jobfilepath, alias string, erasePrev, verbose bool) (o *Analysis) {
	o = new(Analysis)
	o.Job = inp.ReadJob(jobfilepath, alias, erasePrev)
	var err error
	o.Regions, err = ResolveRegions(o.Job)
	if err != nil {
		chk.Panic("cannot resolve regions:\n%v", err)
	}
	o.Results = NewResults(o.Job.Stress)
	o.Verbose = verbose
	return
}

// Run evaluates every available criteria family at every location, region by
// region, and aggregates the failing counts. A region with no available
// family is skipped whole; its locations keep the sentinel values and the
// later regions keep their offsets.
func (o *Analysis) Run() (err error) {

	// message
	cputime := time.Now()
	defer func() {
		if o.Verbose {
			io.Pf("\nfinal t = %v\n", time.Now().Sub(cputime))
		}
	}()

	// evaluate regions
	istart := 0
	for ir, r := range o.Regions {
		if o.Verbose {
			io.Pf("\nregion # %d (%s) material %q: locations %d to %d\n", ir, r.Desc, r.Mat, istart+1, istart+r.Nloc)
		}
		if r.Props.Avail.Any() {
			o.Results.AnyEvaluated = true
			for i := istart; i < istart+r.Nloc; i++ {
				o.Results.evalLocation(i, r.Props, o.Job.Stress)
			}
		} else if o.Verbose {
			io.Pfyel("no criteria family is available; region skipped\n")
		}
		istart += r.Nloc
	}

	// aggregate
	o.Results.Aggregate()
	if o.Verbose {
		o.Results.PrintSummary()
	}
	return
}

// RegionModes returns a formatted list with the availability of each family
// per region, for inspection messages
func (o *Analysis) RegionModes() (l string) {
	name := func(m mcomp.Mode) string {
		switch m {
		case mcomp.Linear:
			return "linear"
		case mcomp.Full:
			return "full"
		}
		return "off"
	}
	for ir, r := range o.Regions {
		a := r.Props.Avail
		l += io.Sf("region # %d %-16q general:%-7s tt:%-7s strain:%-7s hashin:%s\n",
			ir, r.Mat, name(a.General), name(a.TT), name(a.Strain), name(a.Hashin))
	}
	return
}
