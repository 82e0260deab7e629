// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"runtime"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/poroperm/mdl/perm"
	"github.com/cpmech/poroperm/mdl/porosity"
	"golang.org/x/sync/errgroup"
)

// PermLoop runs a permeability model over all integration points of a store.
// Integration points are independent and are processed concurrently
type PermLoop struct {

	// input
	Mdl   perm.Model        // permeability model
	Por   porosity.Provider // porosity and dφ/dvar
	Sto   *perm.Store       // results
	Nproc int               // max number of goroutines; ≤ 0 means GOMAXPROCS

	// output
	Warnings []*perm.DomainWarning // warnings of the last run, sorted by integration point

	// auxiliary
	warn []*perm.DomainWarning // [nip] warnings per integration point
}

// NewPermLoop returns a new PermLoop. All components must agree on the number of coupled unknowns
func NewPermLoop(mdl perm.Model, por porosity.Provider, sto *perm.Store) (o *PermLoop, err error) {
	if mdl == nil || por == nil || sto == nil {
		return nil, chk.Err("permeability loop: model, porosity and store must be all non-nil")
	}
	if mdl.Nvar() != por.Nvar() || mdl.Nvar() != sto.Nvar {
		return nil, &perm.ConfigError{Err: chk.Err("permeability loop: number of coupled unknowns differ: model=%d porosity=%d store=%d", mdl.Nvar(), por.Nvar(), sto.Nvar)}
	}
	o = &PermLoop{Mdl: mdl, Por: por, Sto: sto}
	o.warn = make([]*perm.DomainWarning, sto.Nip())
	return
}

// SetIni sets initial (stateful) values @ all integration points.
// Warnings are collected in Warnings but not printed; Calc prints them
func (o *PermLoop) SetIni() (err error) {
	return o.run(false, func(idx int) error {
		phi := o.Por.Value(idx)
		o.check(idx, phi)
		if e := o.Sto.SetIni(o.Mdl, idx, phi); e != nil {
			return chk.Err("initial permeability @ ip %d failed:\n%v", idx, e)
		}
		return nil
	})
}

// Calc recomputes permeability and derivatives @ all integration points
func (o *PermLoop) Calc() (err error) {
	return o.run(true, func(idx int) error {
		phi := o.Por.Value(idx)
		o.check(idx, phi)
		if e := o.Sto.Calc(o.Mdl, idx, phi, o.Por.Deriv(idx)); e != nil {
			return chk.Err("permeability @ ip %d failed:\n%v", idx, e)
		}
		return nil
	})
}

// check records a warning if φ is outside (0,1)
func (o *PermLoop) check(idx int, phi float64) {
	o.warn[idx] = nil
	if w := perm.CheckPorosity(phi); w != nil {
		w.Ip = idx
		o.warn[idx] = w
	}
}

// run calls fcn for all integration points split into chunks processed concurrently.
// If verbose, the warnings are printed
func (o *PermLoop) run(verbose bool, fcn func(idx int) error) (err error) {
	nip := o.Sto.Nip()
	nproc := o.Nproc
	if nproc <= 0 {
		nproc = runtime.GOMAXPROCS(0)
	}
	if nproc > nip {
		nproc = nip
	}
	var g errgroup.Group
	for p := 0; p < nproc; p++ {
		start, end := (p*nip)/nproc, ((p+1)*nip)/nproc
		g.Go(func() error {
			for idx := start; idx < end; idx++ {
				if e := fcn(idx); e != nil {
					return e
				}
			}
			return nil
		})
	}
	err = g.Wait()

	// collect warnings; a new slice each run
	o.Warnings = nil
	for _, w := range o.warn {
		if w != nil {
			o.Warnings = append(o.Warnings, w)
			if verbose && io.Verbose {
				io.Pfyel("warning: %v\n", w)
			}
		}
	}
	return
}

// OutIpKeys returns the keys of values @ integration points
func (o *PermLoop) OutIpKeys() []string {
	return []string{"kxx", "kyy", "kzz", "kxy", "kyz", "kzx"}
}

// OutIpVals sets the components of permeability @ all integration points in M
func (o *PermLoop) OutIpVals(M *IpsMap) {
	nip := o.Sto.Nip()
	for idx := 0; idx < nip; idx++ {
		k := o.Sto.Value(idx)
		M.Set("kxx", idx, nip, k[0][0])
		M.Set("kyy", idx, nip, k[1][1])
		M.Set("kzz", idx, nip, k[2][2])
		M.Set("kxy", idx, nip, k[0][1])
		M.Set("kyz", idx, nip, k[1][2])
		M.Set("kzx", idx, nip, k[2][0])
	}
}
