// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/poroperm/ele"
	"github.com/cpmech/poroperm/inp"
	"github.com/cpmech/poroperm/mdl/dictator"
	"github.com/cpmech/poroperm/mdl/perm"
	"github.com/cpmech/poroperm/mdl/porosity"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	permKey string
	porKey  string
	phi     float64
	dphi    []float64
	phimin  float64
	phimax  float64
	npts    int
	height  int
	deriv   bool
	system  string
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	rootCmd := &cobra.Command{
		Use:           "poroperm",
		Short:         "permeability from porosity with consistent derivatives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			chk.Verbose = verbose
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show materials data")

	evalCmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "evaluate permeability and dk/dvar",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	evalCmd.Flags().StringVar(&permKey, "perm", "", "name of permeability material")
	evalCmd.Flags().StringVar(&porKey, "por", "", "name of porosity material; if empty, --phi and --dphi are used")
	evalCmd.Flags().Float64Var(&phi, "phi", 0.2, "porosity")
	evalCmd.Flags().Float64SliceVar(&dphi, "dphi", nil, "dφ/dvar; one value per coupled unknown")
	evalCmd.MarkFlagRequired("perm")

	sweepCmd := &cobra.Command{
		Use:   "sweep FILE",
		Short: "plot permeability versus porosity",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&permKey, "perm", "", "name of permeability material")
	sweepCmd.Flags().Float64Var(&phimin, "min", 0.05, "minimum porosity")
	sweepCmd.Flags().Float64Var(&phimax, "max", 0.95, "maximum porosity")
	sweepCmd.Flags().IntVar(&npts, "np", 41, "number of points")
	sweepCmd.Flags().IntVar(&height, "height", 12, "height of plots")
	sweepCmd.Flags().BoolVar(&deriv, "deriv", false, "also plot dk/dφ")
	sweepCmd.MarkFlagRequired("perm")

	numvarsCmd := &cobra.Command{
		Use:   "numvars FILE",
		Short: "print the number of variables of a system",
		Args:  cobra.ExactArgs(1),
		RunE:  runNumvars,
	}
	numvarsCmd.Flags().StringVar(&system, "system", dictator.Nonlinear, "system: nonlinear or auxiliary")

	rootCmd.AddCommand(evalCmd, sweepCmd, numvarsCmd)
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("\nERROR: %v\n", err)
		os.Exit(1)
	}
}

// readMat reads materials file
func readMat(fnpath string) (*inp.MatDb, error) {
	dir, fn := filepath.Split(fnpath)
	return inp.ReadMat(dir, fn)
}

// getPerm returns the permeability material
func getPerm(mdb *inp.MatDb) (perm.Model, error) {
	m, ok := mdb.Perms[permKey]
	if !ok {
		return nil, chk.Err("cannot find permeability material %q", permKey)
	}
	return m.Perm, nil
}

func runEval(cmd *cobra.Command, args []string) (err error) {

	// materials
	mdb, err := readMat(args[0])
	if err != nil {
		return
	}
	mdl, err := getPerm(mdb)
	if err != nil {
		return
	}
	if chk.Verbose {
		io.Pforan("%v\n", mdb.Materials)
	}

	// porosity
	var por porosity.Provider
	if porKey != "" {
		m, ok := mdb.Porosities[porKey]
		if !ok {
			return chk.Err("cannot find porosity material %q", porKey)
		}
		por = m.Por
	} else {
		fld, e := porosity.NewField(mdl.Nvar(), 1, phi)
		if e != nil {
			return e
		}
		if dphi == nil {
			dphi = make([]float64, mdl.Nvar())
		}
		if e = fld.Set(0, phi, dphi); e != nil {
			return e
		}
		por = fld
	}

	// loop over integration points
	nip := mdb.Nip
	if porKey == "" {
		nip = 1
	}
	sto, err := perm.NewStore(nip, mdl.Nvar())
	if err != nil {
		return
	}
	loop, err := ele.NewPermLoop(mdl, por, sto)
	if err != nil {
		return
	}
	if err = loop.SetIni(); err != nil {
		return
	}
	if err = loop.Calc(); err != nil {
		return
	}

	// results
	M := ele.NewIpsMap()
	loop.OutIpVals(M)
	io.Pf("%s\n", M.Table(loop.OutIpKeys()))
	for idx := 0; idx < nip; idx++ {
		for i, dk := range sto.Deriv(idx) {
			io.Pf("ip %d: dk/d%s =\n%v\n", idx, mdb.Dict.Name(i), dk)
		}
	}
	return
}

func runSweep(cmd *cobra.Command, args []string) (err error) {
	if npts < 2 {
		return chk.Err("number of points must be at least 2. np = %d is invalid", npts)
	}
	if phimin >= phimax {
		return chk.Err("minimum porosity must be smaller than maximum. min = %g and max = %g are invalid", phimin, phimax)
	}
	for _, val := range []float64{phimin, phimax} {
		if w := perm.CheckPorosity(val); w != nil {
			return chk.Err("sweep range is invalid:\n%v", w)
		}
	}
	mdb, err := readMat(args[0])
	if err != nil {
		return
	}
	mdl, err := getPerm(mdb)
	if err != nil {
		return
	}
	l, err := perm.Plot(mdl, phimin, phimax, npts, height, deriv)
	if err != nil {
		return
	}
	io.Pf("%s\n", l)
	return
}

func runNumvars(cmd *cobra.Command, args []string) (err error) {
	mdb, err := readMat(args[0])
	if err != nil {
		return
	}
	n, err := mdb.Dict.NumVars(system)
	if err != nil {
		return
	}
	io.Pf("%d\n", n)
	return
}
