// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package perm implements models for the permeability tensor of porous media as a function of
// porosity. The models also compute the derivatives of permeability with respect to the
// coupled unknowns (dk/dvar) needed by the Jacobian matrix
package perm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines permeability models
//  nvar is the number of coupled unknowns, i.e. the length of all derivative vectors
type Model interface {
	Init(nvar int, form Form, prms dbf.Params) error     // Init initialises this structure
	GetPrms(example bool) dbf.Params                     // gets (an example) of parameters
	Nvar() int                                           // number of coupled unknowns
	Relation() *Poroperm                                 // poroperm relation
	SetIni(rec *Record, phi float64)                     // SetIni sets initial (stateful) values
	Calc(rec *Record, phi float64, dphi []float64) error // Calc computes k and dk/dvar; dphi = dφ/dvar
}

// New permeability model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'perm' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// checkNvar checks the number of coupled unknowns
func checkNvar(nvar int) error {
	if nvar < 0 {
		return configErr("number of coupled unknowns must be non-negative. nvar = %d is invalid", nvar)
	}
	return nil
}
