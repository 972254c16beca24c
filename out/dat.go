// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/xpgo/quick-fatigue-tool/cfa"
	"github.com/xpgo/quick-fatigue-tool/inp"
)

// datFilename is the name of the delimited criteria table
const datFilename = "composite-criteria.dat"

// datBuffer assembles the delimited criteria table: title, job metadata, one
// column-header line and one row per location. Lines end with CRLF and the
// fields are tab-separated; margins use six decimals.
func datBuffer(job *inp.Job, res *cfa.Results) (buf *bytes.Buffer) {
	buf = new(bytes.Buffer)
	io.Ff(buf, "COMPOSITE FAILURE CRITERIA\r\n")
	io.Ff(buf, "Job:\t%s\r\n", job.Key)
	io.Ff(buf, "Loading:\t%g\t%s\r\n", job.Data.LoadEqVal, job.Data.LoadEqUnit)
	io.Ff(buf, "Main ID\tSub ID")
	for c := 0; c < cfa.Ncrit; c++ {
		io.Ff(buf, "\t%s", cfa.CritNames[c])
	}
	io.Ff(buf, "\r\n")
	for i := 0; i < res.Nloc(); i++ {
		io.Ff(buf, "%d\t%d", res.MainID[i], res.SubID[i])
		for c := 0; c < cfa.Ncrit; c++ {
			io.Ff(buf, "\t%.6f", res.Seq(c)[i])
		}
		io.Ff(buf, "\r\n")
	}
	return
}
