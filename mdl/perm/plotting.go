// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/guptarohit/asciigraph"
)

// Curve returns np points of k_ij(φ) and dk_ij/dφ with φ ∈ [phimin, phimax]
func Curve(o Model, i, j int, phimin, phimax float64, np int) (Phi, K, DkDphi []float64) {
	Phi = utl.LinSpace(phimin, phimax, np)
	K = make([]float64, np)
	DkDphi = make([]float64, np)
	rel := o.Relation()
	for m, phi := range Phi {
		k := rel.K(phi)
		K[m] = k[i][j]
		DkDphi[m] = k[i][j] * rel.DlogDphi(phi)
	}
	return
}

// Plot returns a text plot of k_xx(φ) and, if deriv, of dk_xx/dφ
//  Note: an error is returned if np < 2 or if any sampled value is not finite
func Plot(o Model, phimin, phimax float64, np, height int, deriv bool) (l string, err error) {
	if np < 2 {
		return "", chk.Err("number of points must be at least 2. np = %d is invalid", np)
	}
	Phi, K, D := Curve(o, 0, 0, phimin, phimax, np)
	if err = checkFinite("k_xx", Phi, K); err != nil {
		return
	}
	caption := io.Sf("k_xx(φ) for φ ∈ [%g, %g]", Phi[0], Phi[np-1])
	l = asciigraph.Plot(K, asciigraph.Height(height), asciigraph.Caption(caption))
	if deriv {
		if err = checkFinite("dk_xx/dφ", Phi, D); err != nil {
			return "", err
		}
		caption = io.Sf("dk_xx/dφ for φ ∈ [%g, %g]", Phi[0], Phi[np-1])
		l += "\n\n" + asciigraph.Plot(D, asciigraph.Height(height), asciigraph.Caption(caption))
	}
	return
}

// checkFinite returns an error if any value is Inf or NaN
func checkFinite(name string, Phi, Y []float64) error {
	for m, y := range Y {
		if math.IsInf(y, 0) || math.IsNaN(y) {
			return chk.Err("%s(φ = %g) = %g is not finite; porosity must be in (0,1)", name, Phi[m], y)
		}
	}
	return nil
}
