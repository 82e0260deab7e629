// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/fun/dbf"
)

// Form selects how the multiplier A of the poroperm relation is given
type Form int

const (
	FormFd2  Form = iota // A = f d²
	FormPhi0             // A = k0 (1-φ0)^m / φ0^n
)

// ParseForm returns the Form corresponding to key. An empty key gives FormFd2
func ParseForm(key string) (Form, error) {
	switch strings.ToLower(key) {
	case "", "fd2", "kozeny_carman_fd2":
		return FormFd2, nil
	case "phi0", "kozeny_carman_phi0":
		return FormPhi0, nil
	}
	return FormFd2, configErr("poroperm function %q is not available. options are \"fd2\" and \"phi0\"", key)
}

// String returns the key of this Form
func (o Form) String() string {
	switch o {
	case FormFd2:
		return "fd2"
	case FormPhi0:
		return "phi0"
	}
	return "unknown"
}

// anisotropy keys
var (
	kfullKeys = []string{"kxx", "kxy", "kxz", "kyx", "kyy", "kyz", "kzx", "kzy", "kzz"}
	kdiagKeys = []string{"kx", "ky", "kz"}
)

// Poroperm implements the poroperm relation
//
//   k = kani ⋅ A ⋅ φⁿ / (1-φ)ᵐ
//
//  with either
//
//   A = f d²                   (fd2)
//   A = k0 (1-φ0)ᵐ / φ0ⁿ       (phi0)
//
//  where kani is the anisotropy tensor (identity by default), f is a factor with typical
//  values 0.001-0.01, d is the grain diameter and k0 is the permeability at porosity φ0.
//  See e.g. Oelkers (1996) Reviews in Mineralogy v.34, 131-192.
type Poroperm struct {

	// parameters
	Form Form    // how A was given
	N    float64 // exponent of φ (numerator)
	M    float64 // exponent of (1-φ) (denominator)
	Kani Tensor  // anisotropy tensor

	// parameters of A; only the pair selected by Form is set
	F, D, K0, Phi0 float64

	// derived
	A float64 // multiplier; frozen by Init
}

// Init validates parameters and computes A
func (o *Poroperm) Init(form Form, prms dbf.Params) (err error) {

	// read parameters; nil means not given
	var pn, pm, pf, pd, pk0, pphi0 *dbf.P
	pkani := make(map[string]*dbf.P)
	for _, p := range prms {
		switch key := strings.ToLower(p.N); key {
		case "n":
			pn = p
		case "m":
			pm = p
		case "f":
			pf = p
		case "d":
			pd = p
		case "k0":
			pk0 = p
		case "phi0":
			pphi0 = p
		case "kxx", "kxy", "kxz", "kyx", "kyy", "kyz", "kzx", "kzy", "kzz", "kx", "ky", "kz":
			pkani[key] = p
		default:
			return configErr("poroperm: parameter named %q is incorrect", p.N)
		}
	}

	// exponents
	if pn == nil || pm == nil {
		return configErr("poroperm: exponents 'n' and 'm' must be given")
	}
	o.N, o.M = pn.V, pm.V
	if o.N <= 0 || o.M <= 0 {
		return configErr("poroperm: exponents must be positive. n = %g and m = %g are invalid", o.N, o.M)
	}

	// multiplier
	o.Form = form
	switch form {
	case FormFd2:
		if pf == nil || pd == nil {
			return configErr("poroperm: 'f' and 'd' must be given in order to use fd2")
		}
		o.F, o.D = pf.V, pd.V
		o.A = o.F * o.D * o.D
	case FormPhi0:
		if pk0 == nil || pphi0 == nil {
			return configErr("poroperm: 'k0' and 'phi0' must be given in order to use phi0")
		}
		if pphi0.V <= 0 || pphi0.V >= 1 {
			return configErr("poroperm: reference porosity must be in (0,1). phi0 = %g is invalid", pphi0.V)
		}
		o.K0, o.Phi0 = pk0.V, pphi0.V
		o.A = o.K0 * math.Pow(1.0-o.Phi0, o.M) / math.Pow(o.Phi0, o.N)
	default:
		return configErr("poroperm: form %d is invalid", int(form))
	}

	// anisotropy
	o.Kani, err = anisotropy(pkani)
	return
}

// anisotropy returns the tensor given by either all 9 components or the 3 diagonal ones
func anisotropy(given map[string]*dbf.P) (T Tensor, err error) {
	if len(given) == 0 {
		return Identity(), nil
	}
	if hasAll(given, kfullKeys) && len(given) == len(kfullKeys) {
		for k, key := range kfullKeys {
			T[k/3][k%3] = given[key].V
		}
		return
	}
	if hasAll(given, kdiagKeys) && len(given) == len(kdiagKeys) {
		return Diag(given["kx"].V, given["ky"].V, given["kz"].V), nil
	}
	return T, configErr("poroperm: anisotropy requires either all of %v or all of %v", kfullKeys, kdiagKeys)
}

func hasAll(given map[string]*dbf.P, keys []string) bool {
	for _, key := range keys {
		if _, ok := given[key]; !ok {
			return false
		}
	}
	return true
}

// GetPrms gets (an example) of parameters
func (o Poroperm) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "f", V: 0.001}, // [-]
			&dbf.P{N: "d", V: 0.01},  // [m]
			&dbf.P{N: "n", V: 2},     // [-]
			&dbf.P{N: "m", V: 1},     // [-]
		}
	}
	prms := dbf.Params{
		&dbf.P{N: "n", V: o.N},
		&dbf.P{N: "m", V: o.M},
	}
	if o.Form == FormPhi0 {
		prms = append(prms, &dbf.P{N: "k0", V: o.K0}, &dbf.P{N: "phi0", V: o.Phi0})
	} else {
		prms = append(prms, &dbf.P{N: "f", V: o.F}, &dbf.P{N: "d", V: o.D})
	}
	for k, key := range kfullKeys {
		prms = append(prms, &dbf.P{N: key, V: o.Kani[k/3][k%3]})
	}
	return prms
}

// Scalar returns A φⁿ / (1-φ)ᵐ
func (o Poroperm) Scalar(phi float64) float64 {
	return o.A * math.Pow(phi, o.N) / math.Pow(1.0-phi, o.M)
}

// K returns the permeability tensor kani ⋅ A ⋅ φⁿ / (1-φ)ᵐ
func (o Poroperm) K(phi float64) Tensor {
	return o.Kani.Scale(o.Scalar(phi))
}

// DlogDphi returns d(log k)/dφ = n/φ + m/(1-φ)
//  Note: singular at φ = 0 and φ = 1
func (o Poroperm) DlogDphi(phi float64) float64 {
	return o.N/phi + o.M/(1.0-phi)
}
