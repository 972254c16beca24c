// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/xuri/excelize/v2"

	"github.com/xpgo/quick-fatigue-tool/cfa"
	"github.com/xpgo/quick-fatigue-tool/inp"
)

// xlsxFilename is the name of the spreadsheet criteria table
const xlsxFilename = "composite-criteria.xlsx"

// WriteXlsx writes the criteria table as a spreadsheet: the same columns and
// row order as the delimited table, one header row and one row per location
func WriteXlsx(path string, job *inp.Job, res *cfa.Results) (err error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	set := func(col, row int, v interface{}) {
		cell, e := excelize.CoordinatesToCellName(col, row)
		if e != nil {
			err = e
			return
		}
		e = f.SetCellValue(sheet, cell, v)
		if e != nil {
			err = e
		}
	}

	// header
	set(1, 1, "Main ID")
	set(2, 1, "Sub ID")
	for c := 0; c < cfa.Ncrit; c++ {
		set(3+c, 1, cfa.CritNames[c])
	}

	// rows
	for i := 0; i < res.Nloc(); i++ {
		set(1, 2+i, res.MainID[i])
		set(2, 2+i, res.SubID[i])
		for c := 0; c < cfa.Ncrit; c++ {
			set(3+c, 2+i, res.Seq(c)[i])
		}
	}
	if err != nil {
		return chk.Err("cannot fill spreadsheet %q\n%v", path, err)
	}

	err = f.SaveAs(path)
	if err != nil {
		return chk.Err("cannot save spreadsheet %q\n%v", path, err)
	}
	return
}
