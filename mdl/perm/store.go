// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import "github.com/cpmech/gosl/chk"

// Record holds the permeability and its derivatives @ one integration point
type Record struct {
	K      Tensor   // permeability
	DkDvar []Tensor // [nvar] dk/dvar: derivatives w.r.t coupled unknowns
}

// Resize sets the length of DkDvar to nvar and zeroes all derivatives
//  Note: the underlying array is reused if large enough
func (o *Record) Resize(nvar int) {
	if cap(o.DkDvar) < nvar {
		o.DkDvar = make([]Tensor, nvar)
		return
	}
	o.DkDvar = o.DkDvar[:nvar]
	for i := range o.DkDvar {
		o.DkDvar[i] = Tensor{}
	}
}

// Set sets this Record with another Record
func (o *Record) Set(r *Record) {
	if o == r {
		return
	}
	o.K = r.K
	o.Resize(len(r.DkDvar))
	copy(o.DkDvar, r.DkDvar)
}

// GetCopy returns a copy of Record
func (o Record) GetCopy() *Record {
	var r Record
	r.Set(&o)
	return &r
}

// Store holds permeability records of all integration points sharing the same model.
// Records are indexed by integration point; concurrent calls must use different indices
type Store struct {
	Nvar int      // number of coupled unknowns
	Recs []Record // [nip] current values
	Olds []Record // [nip] values of the last converged state
}

// NewStore returns a new Store for nip integration points
func NewStore(nip, nvar int) (o *Store, err error) {
	if nip < 0 || nvar < 0 {
		return nil, chk.Err("cannot allocate store with nip = %d and nvar = %d", nip, nvar)
	}
	o = &Store{Nvar: nvar, Recs: make([]Record, nip), Olds: make([]Record, nip)}
	for idx := 0; idx < nip; idx++ {
		o.Recs[idx].Resize(nvar)
		o.Olds[idx].Resize(nvar)
	}
	return
}

// Nip returns the number of integration points
func (o *Store) Nip() int { return len(o.Recs) }

// SetIni sets initial values @ integration point idx; the old state receives the same values
func (o *Store) SetIni(mdl Model, idx int, phi float64) (err error) {
	if err = o.checkNvar(mdl); err != nil {
		return
	}
	mdl.SetIni(&o.Recs[idx], phi)
	o.Olds[idx].Set(&o.Recs[idx])
	return
}

// Calc recomputes values @ integration point idx; all previous values are overwritten
func (o *Store) Calc(mdl Model, idx int, phi float64, dphi []float64) (err error) {
	if err = o.checkNvar(mdl); err != nil {
		return
	}
	return mdl.Calc(&o.Recs[idx], phi, dphi)
}

// checkNvar returns a ConfigError if model and store disagree on the number of coupled unknowns
func (o *Store) checkNvar(mdl Model) error {
	if mdl.Nvar() != o.Nvar {
		return configErr("store: number of coupled unknowns differ: model=%d store=%d", mdl.Nvar(), o.Nvar)
	}
	return nil
}

// Value returns the permeability @ integration point idx
func (o *Store) Value(idx int) Tensor { return o.Recs[idx].K }

// Deriv returns dk/dvar @ integration point idx
func (o *Store) Deriv(idx int) []Tensor { return o.Recs[idx].DkDvar }

// Old returns the permeability of the last converged state @ integration point idx
func (o *Store) Old(idx int) Tensor { return o.Olds[idx].K }

// Backup copies current values to the old state; e.g. after convergence
func (o *Store) Backup() {
	for idx := range o.Recs {
		o.Olds[idx].Set(&o.Recs[idx])
	}
}

// Restore copies the old state to current values; e.g. after divergence
func (o *Store) Restore() {
	for idx := range o.Recs {
		o.Recs[idx].Set(&o.Olds[idx])
	}
}
