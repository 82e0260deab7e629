// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porosity

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Const implements a constant porosity; all derivatives are zero
type Const struct {
	Phi   float64   // porosity
	zeros []float64 // [nvar] dφ/dvar
}

// add model to factory
func init() {
	allocators["const"] = func() Model { return new(Const) }
}

// Init initialises this structure
func (o *Const) Init(nvar, nip int, prms dbf.Params) (err error) {
	if nvar < 0 {
		return chk.Err("const porosity: nvar = %d is invalid", nvar)
	}
	found := false
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "phi":
			o.Phi, found = p.V, true
		default:
			return chk.Err("const porosity: parameter named %q is incorrect", p.N)
		}
	}
	if !found {
		return chk.Err("const porosity: 'phi' must be given")
	}
	o.zeros = make([]float64, nvar)
	return
}

// GetPrms gets (an example) of parameters
func (o Const) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{&dbf.P{N: "phi", V: 0.3}}
	}
	return dbf.Params{&dbf.P{N: "phi", V: o.Phi}}
}

// Nvar returns the number of coupled unknowns
func (o *Const) Nvar() int { return len(o.zeros) }

// Value returns φ
func (o *Const) Value(idx int) float64 { return o.Phi }

// Deriv returns dφ/dvar = 0
func (o *Const) Deriv(idx int) []float64 { return o.zeros }
