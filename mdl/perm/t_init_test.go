// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// checkTensor compares all components of two tensors
func checkTensor(tst *testing.T, msg string, tol float64, res, correct Tensor) {
	chk.Deep2(tst, msg, tol, res.Mat(), correct.Mat())
}

// newModel allocates and initialises a permeability model; returns nil on failure
func newModel(tst *testing.T, name string, nvar int, form Form, prms dbf.Params) Model {
	mdl, err := New(name)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return nil
	}
	err = mdl.Init(nvar, form, prms)
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return nil
	}
	return mdl
}

// fd2prms returns f=0.001, d=0.01, n=2, m=1
func fd2prms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "f", V: 0.001},
		&dbf.P{N: "d", V: 0.01},
		&dbf.P{N: "n", V: 2},
		&dbf.P{N: "m", V: 1},
	}
}
