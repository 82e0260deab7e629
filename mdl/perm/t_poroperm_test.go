// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_form01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("form01")

	for key, correct := range map[string]Form{
		"":                   FormFd2,
		"fd2":                FormFd2,
		"kozeny_carman_fd2":  FormFd2,
		"phi0":               FormPhi0,
		"PHI0":               FormPhi0,
		"kozeny_carman_phi0": FormPhi0,
	} {
		form, err := ParseForm(key)
		if err != nil {
			tst.Errorf("ParseForm(%q) failed: %v\n", key, err)
			return
		}
		chk.Int(tst, key, int(form), int(correct))
	}
	chk.String(tst, FormFd2.String(), "fd2")
	chk.String(tst, FormPhi0.String(), "phi0")

	_, err := ParseForm("carman")
	if !IsConfigError(err) {
		tst.Errorf("ParseForm should have failed with ConfigError. err = %v\n", err)
	}
}

func Test_prms01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prms01")

	var o Poroperm
	err := o.Init(FormFd2, fd2prms())
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	io.Pforan("A = %v\n", o.A)
	chk.Float64(tst, "A", 1e-22, o.A, 1e-7)
	chk.Float64(tst, "n", 1e-15, o.N, 2)
	chk.Float64(tst, "m", 1e-15, o.M, 1)
	checkTensor(tst, "kani", 1e-15, o.Kani, Identity())

	// φ = 0.2 => k = 1e-7 ⋅ 0.04 / 0.8
	k := o.K(0.2)
	io.Pforan("k =\n%v\n", k)
	checkTensor(tst, "k", 1e-22, k, Diag(5e-9, 5e-9, 5e-9))
	chk.Float64(tst, "dlogk/dφ", 1e-14, o.DlogDphi(0.2), 11.25)

	// current parameters
	var p Poroperm
	err = p.Init(FormFd2, o.GetPrms(false))
	if err != nil {
		tst.Errorf("Init with GetPrms failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A (again)", 1e-22, p.A, o.A)
}

func Test_prms02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prms02")

	// both forms must agree when k0 = f d² φ0ⁿ / (1-φ0)ᵐ
	for _, nm := range [][]float64{{2, 1}, {3, 2}, {1.5, 0.5}} {
		n, m := nm[0], nm[1]
		f, d := 0.005, 0.02
		for _, phi0 := range []float64{0.1, 0.35, 0.8} {

			var a Poroperm
			err := a.Init(FormFd2, dbf.Params{
				&dbf.P{N: "f", V: f},
				&dbf.P{N: "d", V: d},
				&dbf.P{N: "n", V: n},
				&dbf.P{N: "m", V: m},
			})
			if err != nil {
				tst.Errorf("Init(fd2) failed: %v\n", err)
				return
			}

			k0 := f * d * d * math.Pow(phi0, n) / math.Pow(1-phi0, m)
			var b Poroperm
			err = b.Init(FormPhi0, dbf.Params{
				&dbf.P{N: "k0", V: k0},
				&dbf.P{N: "phi0", V: phi0},
				&dbf.P{N: "n", V: n},
				&dbf.P{N: "m", V: m},
			})
			if err != nil {
				tst.Errorf("Init(phi0) failed: %v\n", err)
				return
			}

			chk.Float64(tst, io.Sf("A     @ n=%g m=%g φ0=%g", n, m, phi0), 1e-18, b.A, a.A)
			chk.Float64(tst, io.Sf("k(φ0) @ n=%g m=%g φ0=%g", n, m, phi0), 1e-18, b.Scalar(phi0), a.Scalar(phi0))
			chk.Float64(tst, "k(φ0) == k0", 1e-18, b.Scalar(phi0), k0)
		}
	}
}

func Test_prms03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prms03")

	without := func(prms dbf.Params, name string) (res dbf.Params) {
		for _, p := range prms {
			if p.N != name {
				res = append(res, p)
			}
		}
		return
	}
	phi0prms := dbf.Params{
		&dbf.P{N: "k0", V: 1e-12},
		&dbf.P{N: "phi0", V: 0.3},
		&dbf.P{N: "n", V: 3},
		&dbf.P{N: "m", V: 2},
	}

	for i, c := range []struct {
		form Form
		prms dbf.Params
	}{
		{FormFd2, without(fd2prms(), "f")},
		{FormFd2, without(fd2prms(), "d")},
		{FormPhi0, without(phi0prms, "k0")},
		{FormPhi0, without(phi0prms, "phi0")},
		{FormFd2, without(fd2prms(), "n")},
		{FormPhi0, without(phi0prms, "m")},
		{FormPhi0, fd2prms()},
		{FormFd2, append(fd2prms(), &dbf.P{N: "g", V: 1})},
		{FormFd2, append(without(fd2prms(), "n"), &dbf.P{N: "n", V: -1})},
		{FormFd2, append(fd2prms(), &dbf.P{N: "kx", V: 1}, &dbf.P{N: "ky", V: 1})},
		{FormFd2, append(fd2prms(), &dbf.P{N: "kx", V: 1}, &dbf.P{N: "ky", V: 1}, &dbf.P{N: "kz", V: 1}, &dbf.P{N: "kxy", V: 1})},
		{FormPhi0, append(without(phi0prms, "phi0"), &dbf.P{N: "phi0", V: 1})},
		{Form(7), fd2prms()},
	} {
		var o Poroperm
		err := o.Init(c.form, c.prms)
		if err == nil {
			tst.Errorf("case %d: Init should have failed\n", i)
			return
		}
		if !IsConfigError(err) {
			tst.Errorf("case %d: error should be ConfigError. err = %v\n", i, err)
			return
		}
		io.Pforan("case %2d: %v\n", i, err)
	}

	// models must fail too
	for _, name := range []string{"from-porosity", "kozeny-carman"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New failed: %v\n", err)
			return
		}
		if err = mdl.Init(1, FormFd2, without(fd2prms(), "d")); !IsConfigError(err) {
			tst.Errorf("%s: Init should have failed with ConfigError. err = %v\n", name, err)
			return
		}
		if err = mdl.Init(-1, FormFd2, fd2prms()); !IsConfigError(err) {
			tst.Errorf("%s: Init with nvar=-1 should have failed with ConfigError. err = %v\n", name, err)
			return
		}
	}

	// the other pair is ignored
	var o Poroperm
	err := o.Init(FormFd2, append(fd2prms(), &dbf.P{N: "k0", V: 123}))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "A", 1e-22, o.A, 1e-7)
}

func Test_prms04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("prms04")

	// full tensor
	var o Poroperm
	err := o.Init(FormFd2, append(fd2prms(),
		&dbf.P{N: "kxx", V: 1}, &dbf.P{N: "kxy", V: 2}, &dbf.P{N: "kxz", V: 3},
		&dbf.P{N: "kyx", V: 4}, &dbf.P{N: "kyy", V: 5}, &dbf.P{N: "kyz", V: 6},
		&dbf.P{N: "kzx", V: 7}, &dbf.P{N: "kzy", V: 8}, &dbf.P{N: "kzz", V: 9},
	))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	s := 5e-9 // A φⁿ/(1-φ)ᵐ @ φ=0.2
	checkTensor(tst, "k", 1e-21, o.K(0.2), Tensor{
		{1 * s, 2 * s, 3 * s},
		{4 * s, 5 * s, 6 * s},
		{7 * s, 8 * s, 9 * s},
	})

	// diagonal
	var p Poroperm
	err = p.Init(FormFd2, append(fd2prms(), &dbf.P{N: "kx", V: 1}, &dbf.P{N: "ky", V: 0.5}, &dbf.P{N: "kz", V: 0.1}))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	checkTensor(tst, "k", 1e-22, p.K(0.2), Diag(s, 0.5*s, 0.1*s))

	// anisotropy is kept by GetPrms
	var q Poroperm
	err = q.Init(FormFd2, o.GetPrms(false))
	if err != nil {
		tst.Errorf("Init with GetPrms failed: %v\n", err)
		return
	}
	checkTensor(tst, "kani", 1e-15, q.Kani, o.Kani)
}

func Test_tensor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("tensor01")

	T, err := NewTensor([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	if err != nil {
		tst.Errorf("NewTensor failed: %v\n", err)
		return
	}
	checkTensor(tst, "2T", 1e-15, T.Scale(2), T.Add(T))
	checkTensor(tst, "I+0", 1e-15, Identity().Add(Tensor{}), Diag(1, 1, 1))
	if T.IsZero() || !(Tensor{}).IsZero() {
		tst.Errorf("IsZero failed\n")
		return
	}
	_, err = NewTensor([][]float64{{1, 2, 3}, {4, 5}})
	if err == nil {
		tst.Errorf("NewTensor should have failed\n")
	}
}

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01")

	for _, phi := range []float64{1e-10, 0.5, 1 - 1e-10} {
		if w := CheckPorosity(phi); w != nil {
			tst.Errorf("φ = %g should be valid\n", phi)
			return
		}
	}
	for _, phi := range []float64{0, 1, -0.1, 1.1, math.NaN()} {
		w := CheckPorosity(phi)
		if w == nil {
			tst.Errorf("φ = %g should be invalid\n", phi)
			return
		}
		io.Pforan("%v\n", w)
	}

	// not clamped
	var o Poroperm
	if err := o.Init(FormFd2, fd2prms()); err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	if !math.IsInf(o.Scalar(1), 1) {
		tst.Errorf("k(1) should be +Inf. k(1) = %v\n", o.Scalar(1))
	}
	if !math.IsInf(o.DlogDphi(0), 1) {
		tst.Errorf("dlogk/dφ(0) should be +Inf. got %v\n", o.DlogDphi(0))
	}
}
