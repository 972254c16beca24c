// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.job) and (.mat) JSON
// files and from stress-field files
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global job data
type Data struct {
	Desc       string  `json:"desc"`       // description of job
	Matfile    string  `json:"matfile"`    // materials file path
	Stressfile string  `json:"stressfile"` // stress-field file path
	DirOut     string  `json:"dirout"`     // directory for output; e.g. /tmp/qft
	Mat        string  `json:"mat"`        // material name used when no groups are given
	LoadEqVal  float64 `json:"loadeqval"`  // equivalent loading magnitude for the report header
	LoadEqUnit string  `json:"loadequnit"` // equivalent loading unit for the report header
	Xlsx       bool    `json:"xlsx"`       // also write the criteria table as a spreadsheet
	Pdf        bool    `json:"pdf"`        // also write the assessment summary as a PDF
}

// Group defines one contiguous run of assessment locations sharing a material
type Group struct {
	Desc string `json:"desc"` // description of group. ex: skin, spar cap
	Mat  string `json:"mat"`  // material name
	Nloc int    `json:"nloc"` // number of locations in this group
}

// Job holds all data for one composite failure assessment run
type Job struct {

	// input
	Data   Data     `json:"data"`   // global job data
	Groups []*Group `json:"groups"` // ordered groups; empty means one implicit group with Data.Mat

	// derived
	Key       string       // job key; e.g. myjob.job => myjob or myjob-alias
	DirOut    string       // directory to save results
	MatParams *MatDb       // materials' parameters
	Stress    *StressField // stress histories of all locations
}

// ReadJob reads all job data from a .job JSON file, including the materials
// database and the stress field it refers to
func ReadJob(jobfilepath, alias string, erasefiles bool) *Job {

	// new job
	var o Job

	// read file
	b, err := io.ReadFile(jobfilepath)
	if err != nil {
		chk.Panic("ReadJob: cannot read job file %q", jobfilepath)
	}

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadJob: cannot unmarshal job file %q", jobfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(jobfilepath)
	fn := filepath.Base(jobfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory; QFT_DIROUT overrides the default root
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		root := os.Getenv("QFT_DIROUT")
		if root == "" {
			root = "/tmp/qft"
		}
		o.DirOut = root + "/" + fnkey
	}

	// create directory and erase previous results
	if erasefiles {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// read materials database
	o.MatParams = ReadMat(dir, o.Data.Matfile)
	if o.MatParams == nil {
		chk.Panic("ReadJob: cannot read materials database %q\n", o.Data.Matfile)
	}

	// read stress field
	o.Stress, err = ReadStress(dir, o.Data.Stressfile)
	if err != nil {
		chk.Panic("ReadJob: cannot read stress field:\n%v", err)
	}
	ntot := o.Stress.Nloc()
	if ntot < 1 {
		chk.Panic("ReadJob: stress field %q has no locations", o.Data.Stressfile)
	}

	// set implicit group
	if len(o.Groups) == 0 {
		if o.Data.Mat == "" {
			chk.Panic("ReadJob: job must give groups or a default material name")
		}
		o.Groups = []*Group{{Desc: "all locations", Mat: o.Data.Mat, Nloc: ntot}}
	}

	// check groups
	sum := 0
	for i, g := range o.Groups {
		if g.Mat == "" {
			chk.Panic("ReadJob: group # %d has no material name", i)
		}
		if g.Nloc < 1 {
			chk.Panic("ReadJob: group # %d must cover at least one location", i)
		}
		sum += g.Nloc
	}
	if sum != ntot {
		chk.Panic("ReadJob: groups cover %d locations; the stress field has %d", sum, ntot)
	}

	// results
	return &o
}

// GetInfo returns formatted information
func (o *Job) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o.Data, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
