// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// KozenyCarman implements the Kozeny-Carman relation with consistent derivatives
//
//   k = kani ⋅ A ⋅ φⁿ / (1-φ)ᵐ
//
//   dk       dφ       ⎛ n      m  ⎞
//   ──── = ──── ⋅ k ⋅ ⎜ ─ + ───── ⎟
//   dvar   dvar       ⎝ φ   1 - φ ⎠
//
//  Note: kani and A do not depend on the unknowns
type KozenyCarman struct {
	Poroperm
	nvar int
}

// add model to factory
func init() {
	allocators["kozeny-carman"] = func() Model { return new(KozenyCarman) }
}

// Init initialises this structure
func (o *KozenyCarman) Init(nvar int, form Form, prms dbf.Params) (err error) {
	if err = checkNvar(nvar); err != nil {
		return
	}
	o.nvar = nvar
	return o.Poroperm.Init(form, prms)
}

// Nvar returns the number of coupled unknowns
func (o *KozenyCarman) Nvar() int { return o.nvar }

// Relation returns the poroperm relation
func (o *KozenyCarman) Relation() *Poroperm { return &o.Poroperm }

// SetIni sets initial values. The derivatives are zeroed
func (o *KozenyCarman) SetIni(rec *Record, phi float64) {
	rec.K = o.K(phi)
	rec.Resize(o.nvar)
}

// Calc computes k and dk/dvar
func (o *KozenyCarman) Calc(rec *Record, phi float64, dphi []float64) error {
	if len(dphi) != o.nvar {
		return chk.Err("kozeny-carman: dφ/dvar has length %d but the number of coupled unknowns is %d", len(dphi), o.nvar)
	}
	rec.K = o.K(phi)
	rec.Resize(o.nvar)
	c := o.DlogDphi(phi)
	for i := 0; i < o.nvar; i++ {
		rec.DkDvar[i] = rec.K.Scale(dphi[i] * c)
	}
	return nil
}
