// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"errors"

	"github.com/cpmech/gosl/chk"
)

// ConfigError reports invalid or missing parameters found while a model is being initialised.
// A model that fails with ConfigError must not be used
type ConfigError struct {
	Err error
}

// configErr returns a new ConfigError with formatted message
func configErr(msg string, prm ...interface{}) error {
	return &ConfigError{chk.Err(msg, prm...)}
}

func (o *ConfigError) Error() string { return o.Err.Error() }
func (o *ConfigError) Unwrap() error { return o.Err }

// IsConfigError tells whether err is (or wraps) a ConfigError
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// DomainWarning reports a porosity on or outside the boundary of (0,1).
// It is not fatal: the computation goes on and produces Inf or NaN values
type DomainWarning struct {
	Ip  int     // integration point index; -1 if unknown
	Phi float64 // offending porosity
}

func (o *DomainWarning) Error() string {
	if o.Ip < 0 {
		return chk.Err("porosity φ = %g is outside (0,1)", o.Phi).Error()
	}
	return chk.Err("porosity φ = %g @ ip %d is outside (0,1)", o.Phi, o.Ip).Error()
}

// CheckPorosity returns a DomainWarning if φ ∉ (0,1); otherwise returns nil
func CheckPorosity(phi float64) *DomainWarning {
	if phi > 0 && phi < 1 {
		return nil
	}
	return &DomainWarning{Ip: -1, Phi: phi}
}
