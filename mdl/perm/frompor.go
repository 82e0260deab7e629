// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import "github.com/cpmech/gosl/fun/dbf"

// FromPorosity computes k = kani ⋅ A ⋅ φⁿ / (1-φ)ᵐ but does not propagate the dependency of
// φ on the coupled unknowns: all dk/dvar are set to zero.
//  Note: this is an approximation. The true derivatives are not zero whenever φ depends on the
//        unknowns and the resulting Jacobian is inexact, thus Newton's method may converge
//        slowly or not at all. Use KozenyCarman for the consistent derivatives.
type FromPorosity struct {
	Poroperm
	nvar int
}

// add model to factory
func init() {
	allocators["from-porosity"] = func() Model { return new(FromPorosity) }
}

// Init initialises this structure
func (o *FromPorosity) Init(nvar int, form Form, prms dbf.Params) (err error) {
	if err = checkNvar(nvar); err != nil {
		return
	}
	o.nvar = nvar
	return o.Poroperm.Init(form, prms)
}

// Nvar returns the number of coupled unknowns
func (o *FromPorosity) Nvar() int { return o.nvar }

// Relation returns the poroperm relation
func (o *FromPorosity) Relation() *Poroperm { return &o.Poroperm }

// SetIni sets initial values
func (o *FromPorosity) SetIni(rec *Record, phi float64) {
	rec.K = o.K(phi)
	rec.Resize(o.nvar)
}

// Calc computes k and sets dk/dvar to zero. dphi is ignored
func (o *FromPorosity) Calc(rec *Record, phi float64, dphi []float64) error {
	rec.K = o.K(phi)
	rec.Resize(o.nvar)
	return nil
}
