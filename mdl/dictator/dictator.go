// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dictator implements the registry of coupled unknowns. The registry defines the
// length and the ordering of all derivative vectors (d/dvar) computed by material models
package dictator

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// systems
const (
	Nonlinear = "nonlinear" // system with the coupled unknowns
	Auxiliary = "auxiliary" // system with auxiliary (non-coupled) variables
)

// Dictator holds the ordered set of coupled unknowns
type Dictator struct {
	vars  []string       // coupled unknowns; index in this slice == index in derivative vectors
	aux   []string       // auxiliary variables
	index map[string]int // maps names of coupled unknowns to indices
}

// New returns a new Dictator
//  vars -- names of the coupled unknowns; e.g. "pl", "ux". The order is kept
//  aux  -- names of auxiliary variables (not coupled); may be nil
func New(vars, aux []string) (o *Dictator, err error) {
	o = &Dictator{index: make(map[string]int)}
	for i, name := range vars {
		if strings.TrimSpace(name) == "" {
			return nil, chk.Err("dictator: name of variable #%d is empty", i)
		}
		if _, ok := o.index[name]; ok {
			return nil, chk.Err("dictator: variable %q is repeated", name)
		}
		o.index[name] = i
		o.vars = append(o.vars, name)
	}
	seen := make(map[string]bool)
	for i, name := range aux {
		if strings.TrimSpace(name) == "" {
			return nil, chk.Err("dictator: name of auxiliary variable #%d is empty", i)
		}
		if _, ok := o.index[name]; ok || seen[name] {
			return nil, chk.Err("dictator: auxiliary variable %q is repeated", name)
		}
		seen[name] = true
		o.aux = append(o.aux, name)
	}
	return
}

// NumVariables returns the number of coupled unknowns
func (o *Dictator) NumVariables() int { return len(o.vars) }

// Index returns the index of a coupled unknown
func (o *Dictator) Index(name string) (idx int, ok bool) {
	idx, ok = o.index[name]
	return
}

// IsVariable tells whether name is a coupled unknown
func (o *Dictator) IsVariable(name string) bool {
	_, ok := o.index[name]
	return ok
}

// Name returns the name of the coupled unknown with index idx
func (o *Dictator) Name(idx int) string { return o.vars[idx] }

// Names returns a copy of the names of all coupled unknowns
func (o *Dictator) Names() []string {
	return append([]string{}, o.vars...)
}

// NumVars returns the number of variables in system; "nonlinear" or "auxiliary"
func (o *Dictator) NumVars(system string) (int, error) {
	switch system {
	case Nonlinear:
		return len(o.vars), nil
	case Auxiliary:
		return len(o.aux), nil
	}
	return 0, chk.Err("dictator: system %q is unknown. options are %q and %q", system, Nonlinear, Auxiliary)
}
