// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_job01(tst *testing.T) {

	verbose()
	chk.PrintTitle("job01. read job file")

	job := ReadJob("data/plate4.job", "", false)
	io.Pforan("desc   = %q\n", job.Data.Desc)
	io.Pforan("key    = %q\n", job.Key)
	io.Pforan("dirout = %q\n", job.DirOut)

	if job.Key != "plate4" {
		tst.Errorf("wrong key: %q\n", job.Key)
		return
	}
	chk.IntAssert(len(job.Groups), 2)
	chk.IntAssert(job.Groups[0].Nloc, 2)
	chk.IntAssert(job.Groups[1].Nloc, 2)
	if job.Groups[0].Mat != "carbon-epoxy" || job.Groups[1].Mat != "glass-mat" {
		tst.Errorf("wrong group materials\n")
		return
	}

	// materials database read along
	if job.MatParams.Get("carbon-epoxy") == nil {
		tst.Errorf("cannot find carbon-epoxy in the database\n")
		return
	}

	// stress field read along with default ids
	chk.IntAssert(job.Stress.Nloc(), 4)
	chk.Ints(tst, "mainid", job.Stress.MainID, []int{1, 2, 3, 4})
	chk.Ints(tst, "subid", job.Stress.SubID, []int{0, 0, 0, 0})

	// info
	var buf bytes.Buffer
	err := job.GetInfo(&buf)
	if err != nil {
		tst.Errorf("GetInfo failed: %v\n", err)
		return
	}
	if buf.Len() == 0 {
		tst.Errorf("GetInfo returned nothing\n")
		return
	}
}

func Test_job02(tst *testing.T) {

	verbose()
	chk.PrintTitle("job02. key gets the alias appended")

	job := ReadJob("data/plate4.job", "run2", false)
	if job.Key != "plate4-run2" {
		tst.Errorf("wrong key: %q\n", job.Key)
		return
	}
}
