// Copyright 2023 The Quick Fatigue Tool Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Material holds the name and the parameters of one material
type Material struct {
	Name  string   `json:"name"`  // name of material
	Desc  string   `json:"desc"`  // description of material
	Model string   `json:"model"` // model name; e.g. "comp"
	Extra string   `json:"extra"` // extra flags in keycode format
	Prms  fun.Prms `json:"prms"`  // named parameters
}

// MatDb holds all materials
type MatDb struct {
	Materials []*Material `json:"materials"` // all materials
}

// ReadMat reads the materials database from a (.mat) JSON file
//  Note: returns nil on errors
func ReadMat(dir, fn string) *MatDb {
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil
	}
	var o MatDb
	err = json.Unmarshal(b, &o)
	if err != nil {
		return nil
	}
	return &o
}

// Get returns a material by name
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material as a formatted JSON entry
func (o Material) String() string {
	b, err := json.MarshalIndent(o, "  ", "  ")
	if err != nil {
		return ""
	}
	return "  " + string(b)
}

// String prints the database as a formatted JSON document
func (o MatDb) String() string {
	l := "{\n  \"materials\" : [\n"
	for i, mat := range o.Materials {
		if i > 0 {
			l += ",\n"
		}
		l += mat.String()
	}
	l += "\n  ]\n}"
	return l
}
