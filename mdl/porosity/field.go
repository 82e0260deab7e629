// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porosity

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Field holds porosity values and derivatives computed elsewhere for each integration point.
// Set may be called concurrently for distinct integration points
type Field struct {
	nvar int
	Phi  []float64   // [nip] φ
	Dphi [][]float64 // [nip][nvar] dφ/dvar
}

// add model to factory
func init() {
	allocators["field"] = func() Model { return new(Field) }
}

// NewField returns a new Field with all porosities equal to phi and zero derivatives
func NewField(nvar, nip int, phi float64) (o *Field, err error) {
	o = new(Field)
	err = o.Init(nvar, nip, dbf.Params{&dbf.P{N: "phi", V: phi}})
	if err != nil {
		return nil, err
	}
	return
}

// Init initialises this structure
func (o *Field) Init(nvar, nip int, prms dbf.Params) (err error) {
	if nvar < 0 || nip < 0 {
		return chk.Err("porosity field: nvar = %d and nip = %d are invalid", nvar, nip)
	}
	var phi float64
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "phi":
			phi = p.V
		default:
			return chk.Err("porosity field: parameter named %q is incorrect", p.N)
		}
	}
	o.nvar = nvar
	o.Phi = make([]float64, nip)
	o.Dphi = make([][]float64, nip)
	for idx := 0; idx < nip; idx++ {
		o.Phi[idx] = phi
		o.Dphi[idx] = make([]float64, nvar)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Field) GetPrms(example bool) dbf.Params {
	if example || len(o.Phi) == 0 {
		return dbf.Params{&dbf.P{N: "phi", V: 0.3}}
	}
	return dbf.Params{&dbf.P{N: "phi", V: o.Phi[0]}}
}

// Set sets φ and dφ/dvar @ integration point idx
func (o *Field) Set(idx int, phi float64, dphi []float64) error {
	if idx < 0 || idx >= len(o.Phi) {
		return chk.Err("porosity field: integration point %d is out of range [0, %d)", idx, len(o.Phi))
	}
	if len(dphi) != o.nvar {
		return chk.Err("porosity field: dφ/dvar has length %d but the number of coupled unknowns is %d", len(dphi), o.nvar)
	}
	o.Phi[idx] = phi
	copy(o.Dphi[idx], dphi)
	return nil
}

// Nvar returns the number of coupled unknowns
func (o *Field) Nvar() int { return o.nvar }

// Value returns φ @ integration point idx
func (o *Field) Value(idx int) float64 { return o.Phi[idx] }

// Deriv returns dφ/dvar @ integration point idx
func (o *Field) Deriv(idx int) []float64 { return o.Dphi[idx] }
