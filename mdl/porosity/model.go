// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package porosity implements providers of porosity and of its derivatives with respect to the
// coupled unknowns @ integration points
package porosity

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Provider gives porosity data @ integration points
type Provider interface {
	Nvar() int               // number of coupled unknowns; length of Deriv
	Value(idx int) float64   // φ @ integration point idx
	Deriv(idx int) []float64 // dφ/dvar @ integration point idx
}

// Model defines porosity models
type Model interface {
	Provider
	Init(nvar, nip int, prms dbf.Params) error // Init initialises this structure
	GetPrms(example bool) dbf.Params           // gets (an example) of parameters
}

// New porosity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'porosity' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
