// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfa

import (
	"math"

	"github.com/cpmech/gosl/io"

	"github.com/xpgo/quick-fatigue-tool/inp"
)

// criterion indices, in report column order
const (
	IMstrs    = iota // maximum stress
	ITsaih           // Tsai-Hill
	ITsaiw           // in-plane Tsai-Wu
	ITsaiwtt         // through-thickness Tsai-Wu
	IAzzit           // Azzi-Tsai-Hill
	IMstrn           // maximum strain
	IHsnftcrt        // Hashin fibre tension
	IHsnfccrt        // Hashin fibre compression
	IHsnmtcrt        // Hashin matrix tension
	IHsnmccrt        // Hashin matrix compression
	Ncrit            // number of criteria
)

// CritNames holds the report column name of each criterion
var CritNames = []string{
	"MSTRS", "TSAIH", "TSAIW", "TSAIWTT", "AZZIT",
	"MSTRN", "HSNFTCRT", "HSNFCCRT", "HSNMTCRT", "HSNMCCRT",
}

// diagnostic codes. Each code is bound to exactly one condition; the ten
// criterion failure codes follow the report column order.
const (
	CodeOutOfPlane       = 290 // out-of-plane stresses present at a location
	CodeFailBase         = 291 // criterion # 0 has failing locations; # 9 is 300
	CodeNothingEvaluated = 301 // no criteria family could be evaluated
	CodeNoFailures       = 302 // assessment complete and no failures found
	CodeReportWritten    = 303 // criteria report written
)

// Diag is one diagnostic notification of an assessment run
type Diag struct {
	Code int    // condition code
	Msg  string // message
}

// Results holds the margins of all criteria at all locations, the identifiers
// used for report rows and, after Aggregate, the failing counts and the
// collected diagnostics. Each criterion has its own sequence; a value of -1
// is the sentinel meaning "not evaluated at this location".
type Results struct {

	// margins
	Mstrs    []float64 // maximum stress
	Tsaih    []float64 // Tsai-Hill
	Tsaiw    []float64 // in-plane Tsai-Wu
	Tsaiwtt  []float64 // through-thickness Tsai-Wu
	Azzit    []float64 // Azzi-Tsai-Hill
	Mstrn    []float64 // maximum strain
	Hsnftcrt []float64 // Hashin fibre tension
	Hsnfccrt []float64 // Hashin fibre compression
	Hsnmtcrt []float64 // Hashin matrix tension
	Hsnmccrt []float64 // Hashin matrix compression

	// auxiliary
	K []float64 // interlaminar shear ratio; adjusts the TSAIWTT threshold

	// identifiers
	MainID []int // primary location ids
	SubID  []int // secondary location ids

	// aggregation
	NFail        [Ncrit]int // failing count per criterion
	AnyEvaluated bool       // at least one family was evaluated in one region
	Diags        []Diag     // collected diagnostics
}

// NewResults allocates the margin sequences at full final length, sentinel
// initialized, and copies the identifiers from the stress field
func NewResults(sf *inp.StressField) (o *Results) {
	o = new(Results)
	n := sf.Nloc()
	alloc := func() []float64 {
		v := make([]float64, n)
		for i := 0; i < n; i++ {
			v[i] = -1
		}
		return v
	}
	o.Mstrs = alloc()
	o.Tsaih = alloc()
	o.Tsaiw = alloc()
	o.Tsaiwtt = alloc()
	o.Azzit = alloc()
	o.Mstrn = alloc()
	o.Hsnftcrt = alloc()
	o.Hsnfccrt = alloc()
	o.Hsnmtcrt = alloc()
	o.Hsnmccrt = alloc()
	o.K = alloc()
	o.MainID = sf.MainID
	o.SubID = sf.SubID
	return
}

// Nloc returns the number of locations
func (o *Results) Nloc() int {
	return len(o.Mstrs)
}

// Seq returns the margin sequence of one criterion, by report column order
func (o *Results) Seq(i int) []float64 {
	switch i {
	case IMstrs:
		return o.Mstrs
	case ITsaih:
		return o.Tsaih
	case ITsaiw:
		return o.Tsaiw
	case ITsaiwtt:
		return o.Tsaiwtt
	case IAzzit:
		return o.Azzit
	case IMstrn:
		return o.Mstrn
	case IHsnftcrt:
		return o.Hsnftcrt
	case IHsnfccrt:
		return o.Hsnfccrt
	case IHsnmtcrt:
		return o.Hsnmtcrt
	case IHsnmccrt:
		return o.Hsnmccrt
	}
	return nil
}

// AddDiag appends one diagnostic notification
func (o *Results) AddDiag(code int, msg string, prms ...interface{}) {
	o.Diags = append(o.Diags, Diag{code, io.Sf(msg, prms...)})
}

// HasCode tells whether one diagnostic code has been emitted
func (o *Results) HasCode(code int) bool {
	for _, d := range o.Diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Aggregate sanitizes the interlaminar shear ratios, counts the failing
// locations of each criterion and emits the corresponding diagnostics.
// A location fails a criterion when its margin is ≥ 1; the through-thickness
// Tsai-Wu threshold is lowered to 1 - k² using the sanitized ratio.
func (o *Results) Aggregate() {

	// sanitize: an undefined or infinite ratio counts as zero
	for i, k := range o.K {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			o.K[i] = 0
		}
	}

	// failing counts
	for c := 0; c < Ncrit; c++ {
		seq := o.Seq(c)
		for i, v := range seq {
			lim := 1.0
			if c == ITsaiwtt {
				lim = 1.0 - o.K[i]*o.K[i]
			}
			if v >= lim {
				o.NFail[c]++
			}
		}
	}

	// diagnostics
	for c := 0; c < Ncrit; c++ {
		if o.NFail[c] > 0 {
			o.AddDiag(CodeFailBase+c, "criterion %s: %d locations failed", CritNames[c], o.NFail[c])
		}
	}
	if !o.AnyEvaluated {
		o.AddDiag(CodeNothingEvaluated, "no composite criteria could be evaluated")
		return
	}
	if o.TotalFails() == 0 {
		o.AddDiag(CodeNoFailures, "assessment complete; no failures found")
	}
}

// TotalFails returns the sum of failing counts over all criteria
func (o *Results) TotalFails() (n int) {
	for _, c := range o.NFail {
		n += c
	}
	return
}

// PrintSummary prints the failing count of each criterion and the collected
// diagnostics using gosl colours
func (o *Results) PrintSummary() {
	io.Pf("\ncriterion   failing locations\n")
	for c := 0; c < Ncrit; c++ {
		io.Pf("%-12s%d\n", CritNames[c], o.NFail[c])
	}
	for _, d := range o.Diags {
		switch {
		case d.Code >= CodeFailBase && d.Code < CodeFailBase+Ncrit:
			io.PfRed("[%d] %s\n", d.Code, d.Msg)
		case d.Code == CodeNothingEvaluated:
			io.Pfyel("[%d] %s\n", d.Code, d.Msg)
		default:
			io.Pfblue2("[%d] %s\n", d.Code, d.Msg)
		}
	}
}
