// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes the reports of one composite failure assessment
package out

import (
	"path/filepath"

	"github.com/cpmech/gosl/io"

	"github.com/xpgo/quick-fatigue-tool/cfa"
	"github.com/xpgo/quick-fatigue-tool/inp"
)

// subdir is the report directory under the job's output directory
const subdir = "Data Files"

// Report writes the criteria reports of one finished assessment: the
// tab-delimited .dat table always, the spreadsheet and the PDF summary when
// the job asks for them. Nothing is written when no criteria family could be
// evaluated; the run keeps its nothing-evaluated diagnostic and that is all.
func Report(job *inp.Job, res *cfa.Results, verbose bool) (err error) {

	// nothing evaluated: no file at all
	if !res.AnyEvaluated {
		if verbose {
			io.Pfyel("no criteria were evaluated; report skipped\n")
		}
		return
	}

	// delimited table
	dirout := filepath.Join(job.DirOut, subdir)
	buf := datBuffer(job, res)
	io.WriteFileVD(dirout, datFilename, buf)
	res.AddDiag(cfa.CodeReportWritten, "criteria report written to %s", filepath.Join(dirout, datFilename))

	// extra formats
	if job.Data.Xlsx {
		err = WriteXlsx(filepath.Join(dirout, xlsxFilename), job, res)
		if err != nil {
			return
		}
		if verbose {
			io.Pfblue2("file <%s> written\n", filepath.Join(dirout, xlsxFilename))
		}
	}
	if job.Data.Pdf {
		err = WritePdf(filepath.Join(dirout, pdfFilename), job, res)
		if err != nil {
			return
		}
		if verbose {
			io.Pfblue2("file <%s> written\n", filepath.Join(dirout, pdfFilename))
		}
	}
	return
}
