// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input of material data
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/poroperm/mdl/dictator"
	"github.com/cpmech/poroperm/mdl/perm"
	"github.com/cpmech/poroperm/mdl/porosity"
	"gopkg.in/yaml.v3"
)

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"  yaml:"name"`  // name of material
	Type  string     `json:"type"  yaml:"type"`  // type of material; "perm" or "porosity"
	Model string     `json:"model" yaml:"model"` // name of model; e.g. "kozeny-carman", "from-porosity", "const"
	Form  string     `json:"form"  yaml:"form"`  // poroperm function of "perm" materials; "fd2" or "phi0"
	Extra string     `json:"extra" yaml:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"  yaml:"prms"`  // prms holds all model parameters for this material

	// derived
	Perm perm.Model     `json:"-" yaml:"-"` // permeability model
	Por  porosity.Model `json:"-" yaml:"-"` // porosity model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Variables    []string `json:"variables"    yaml:"variables"`    // coupled unknowns; defines ordering of dX/dvar
	AuxVariables []string `json:"auxvariables" yaml:"auxvariables"` // auxiliary variables
	Nip          int      `json:"nip"          yaml:"nip"`          // number of integration points for porosity models; default = 1
	Materials    MatsData `json:"materials"    yaml:"materials"`    // all materials

	// derived
	Dict       *dictator.Dictator   `json:"-" yaml:"-"` // registry of coupled unknowns
	Perms      map[string]*Material `json:"-" yaml:"-"` // subset with permeability materials
	Porosities map[string]*Material `json:"-" yaml:"-"` // subset with porosity materials
}

// ReadMat reads all materials data from a .mat (JSON) or .yaml file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file:\n%v", err)
	}
	return ParseMat(b, filepath.Ext(fn))
}

// ParseMat decodes and initialises materials. ext selects the format: ".yaml" or ".yml" for YAML;
// anything else for JSON
func ParseMat(b []byte, ext string) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, mdb)
	default:
		err = json.Unmarshal(b, mdb)
	}
	if err != nil {
		return nil, chk.Err("cannot decode materials file:\n%v", err)
	}
	if mdb.Nip < 1 {
		mdb.Nip = 1
	}

	// registry of coupled unknowns
	mdb.Dict, err = dictator.New(mdb.Variables, mdb.AuxVariables)
	if err != nil {
		return nil, err
	}
	nvar := mdb.Dict.NumVariables()

	// subsets
	mdb.Perms = make(map[string]*Material)
	mdb.Porosities = make(map[string]*Material)
	for _, m := range mdb.Materials {
		if _, ok := mdb.Perms[m.Name]; ok {
			return nil, chk.Err("material named %q is repeated", m.Name)
		}
		if _, ok := mdb.Porosities[m.Name]; ok {
			return nil, chk.Err("material named %q is repeated", m.Name)
		}
		switch m.Type {
		case "perm":
			mdb.Perms[m.Name] = m
		case "porosity":
			mdb.Porosities[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"perm\" and \"porosity\"", m.Type)
		}
	}

	// alloc/init: permeability models
	for _, m := range mdb.Perms {
		form, e := perm.ParseForm(m.Form)
		if e != nil {
			return nil, matErr(m, e)
		}
		m.Perm, err = perm.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Perm.Init(nvar, form, m.Prms)
		if err != nil {
			return nil, matErr(m, err)
		}
	}

	// alloc/init: porosity models
	for _, m := range mdb.Porosities {
		m.Por, err = porosity.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Por.Init(nvar, mdb.Nip, m.Prms)
		if err != nil {
			return nil, matErr(m, err)
		}
	}
	return
}

// matErr adds the name of material to err keeping the ConfigError classification
func matErr(m *Material, err error) error {
	e := chk.Err("material %q:\n%v", m.Name, err)
	if perm.IsConfigError(err) {
		return &perm.ConfigError{Err: e}
	}
	return e
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n", o.Name, o.Type, o.Model)
	if o.Form != "" {
		l += io.Sf("      \"form\"  : %q,\n", o.Form)
	}
	l += "      \"prms\"  : ["
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return l + "\n      ]\n    }"
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}
