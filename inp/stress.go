// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// StressField holds the elemental stress histories of all assessment
// locations. Components are indexed by location and then by history sample,
// in material axes: 1 = fibre, 2 = transverse, 3 = through-thickness.
type StressField struct {

	// components
	S11 [][]float64 `json:"s11"` // axis-1 normal stresses
	S22 [][]float64 `json:"s22"` // axis-2 normal stresses
	S33 [][]float64 `json:"s33"` // axis-3 normal stresses
	S12 [][]float64 `json:"s12"` // in-plane shear stresses
	S13 [][]float64 `json:"s13"` // transverse shear stresses
	S23 [][]float64 `json:"s23"` // interlaminar shear stresses

	// identifiers
	MainID []int `json:"mainid"` // primary location ids; empty means 1,2,3,...
	SubID  []int `json:"subid"`  // secondary location ids; empty means zeros
}

// Nloc returns the number of locations
func (o *StressField) Nloc() int {
	return len(o.S11)
}

// Check verifies that the six components are parallel: same number of
// locations and, per location, the same history length in each component.
func (o *StressField) Check() (err error) {
	n := len(o.S11)
	comps := [][][]float64{o.S22, o.S33, o.S12, o.S13, o.S23}
	names := []string{"s22", "s33", "s12", "s13", "s23"}
	for i, c := range comps {
		if len(c) != n {
			return chk.Err("stress field: component %q has %d locations; s11 has %d", names[i], len(c), n)
		}
	}
	for k := 0; k < n; k++ {
		L := len(o.S11[k])
		if L < 1 {
			return chk.Err("stress field: location %d has an empty history", k)
		}
		for i, c := range comps {
			if len(c[k]) != L {
				return chk.Err("stress field: location %d: component %q has %d samples; s11 has %d", k, names[i], len(c[k]), L)
			}
		}
	}
	if len(o.MainID) != 0 && len(o.MainID) != n {
		return chk.Err("stress field: mainid has %d entries for %d locations", len(o.MainID), n)
	}
	if len(o.SubID) != 0 && len(o.SubID) != n {
		return chk.Err("stress field: subid has %d entries for %d locations", len(o.SubID), n)
	}
	return
}

// setIds fills default identifiers when the file carries none
func (o *StressField) setIds() {
	n := o.Nloc()
	if len(o.MainID) == 0 {
		o.MainID = make([]int, n)
		for i := 0; i < n; i++ {
			o.MainID[i] = i + 1
		}
	}
	if len(o.SubID) == 0 {
		o.SubID = make([]int, n)
	}
}

// ReadStress reads a stress-field file. The file extension selects the
// decoder: ".gob" uses gob, anything else JSON.
func ReadStress(dir, fn string) (o *StressField, err error) {

	// read file
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return
	}

	// decode
	o = new(StressField)
	dec := GetDecoder(bytes.NewReader(b), enctypeOf(fn))
	err = dec.Decode(o)
	if err != nil {
		return nil, chk.Err("cannot decode stress field from %q\n%v", fn, err)
	}

	// check and set defaults
	err = o.Check()
	if err != nil {
		return nil, err
	}
	o.setIds()
	return
}

// Save writes the stress field to <dir>/<fnkey>-stress.<enctype>
func (o *StressField) Save(dir, fnkey, enctype string, verbose bool) (err error) {
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)
	err = enc.Encode(o)
	if err != nil {
		return chk.Err("cannot encode stress field\n%v", err)
	}
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return
	}
	fn := filepath.Join(dir, io.Sf("%s-stress.%s", fnkey, enctype))
	err = os.WriteFile(fn, buf.Bytes(), 0644)
	if err != nil {
		return
	}
	if verbose {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return
}

// enctypeOf maps a stress filename to its encoder type
func enctypeOf(fn string) string {
	if strings.TrimPrefix(filepath.Ext(fn), ".") == "gob" {
		return "gob"
	}
	return "json"
}
