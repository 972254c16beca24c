// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/joho/godotenv"

	"github.com/xpgo/quick-fatigue-tool/cfa"
	"github.com/xpgo/quick-fatigue-tool/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// environment defaults; e.g. QFT_DIROUT
	godotenv.Load()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".job", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	alias := io.ArgToString(3, "")

	// message
	if verbose {
		io.PfWhite("\nQFT -- Composite Failure Assessment\n\n")
		io.Pf("Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable(
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"word to add to results", "alias", alias,
		))
	}

	// assessment data
	analysis := cfa.New(fnamepath, alias, erasePrev, verbose)
	if verbose {
		if analysis.Job.Data.Desc != "" {
			io.Pf("%s\n", analysis.Job.Data.Desc)
		}
		io.Pf("\n%v", analysis.RegionModes())
	}

	// run assessment
	err := analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// write reports
	err = out.Report(analysis.Job, analysis.Results, verbose)
	if err != nil {
		chk.Panic("Report failed:\n%v", err)
	}
}
