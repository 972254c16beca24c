// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/phpdave11/gofpdf"

	"github.com/xpgo/quick-fatigue-tool/cfa"
	"github.com/xpgo/quick-fatigue-tool/inp"
)

// pdfFilename is the name of the assessment summary PDF
const pdfFilename = "composite-summary.pdf"

// WritePdf writes a one-page assessment summary: job metadata and the
// failing-location count of each criterion
func WritePdf(path string, job *inp.Job, res *cfa.Results) (err error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Composite Failure Assessment")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, io.Sf("Job: %s", job.Key))
	pdf.Ln(6)
	if job.Data.Desc != "" {
		pdf.Cell(0, 6, job.Data.Desc)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, io.Sf("Loading: %g %s", job.Data.LoadEqVal, job.Data.LoadEqUnit))
	pdf.Ln(6)
	pdf.Cell(0, 6, io.Sf("Locations: %d", res.Nloc()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(50, 7, "Criterion", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, "Failing locations", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for c := 0; c < cfa.Ncrit; c++ {
		pdf.CellFormat(50, 7, cfa.CritNames[c], "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, io.Sf("%d", res.NFail[c]), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 10)
	if res.TotalFails() == 0 {
		pdf.Cell(0, 6, "No failures found.")
	} else {
		pdf.Cell(0, 6, io.Sf("%d criterion failures in total.", res.TotalFails()))
	}

	err = pdf.OutputFileAndClose(path)
	if err != nil {
		return chk.Err("cannot save summary %q\n%v", path, err)
	}
	return
}
