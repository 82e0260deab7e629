// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package perm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Tensor holds the 9 components of a second order tensor in 3D
//  Note: Tensor is a value; operations return new tensors
type Tensor [3][3]float64

// Identity returns the second order identity tensor
func Identity() (I Tensor) {
	I[0][0], I[1][1], I[2][2] = 1, 1, 1
	return
}

// Diag returns a diagonal tensor
func Diag(kx, ky, kz float64) (T Tensor) {
	T[0][0], T[1][1], T[2][2] = kx, ky, kz
	return
}

// NewTensor returns a tensor from a 3×3 matrix
func NewTensor(a [][]float64) (T Tensor, err error) {
	if len(a) != 3 {
		return T, chk.Err("tensor must have 3 rows. %d is invalid", len(a))
	}
	for i := 0; i < 3; i++ {
		if len(a[i]) != 3 {
			return T, chk.Err("tensor must have 3 columns. row %d has %d", i, len(a[i]))
		}
		for j := 0; j < 3; j++ {
			T[i][j] = a[i][j]
		}
	}
	return
}

// Scale returns s * T
func (o Tensor) Scale(s float64) (T Tensor) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = s * o[i][j]
		}
	}
	return
}

// Add returns T + B
func (o Tensor) Add(b Tensor) (T Tensor) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			T[i][j] = o[i][j] + b[i][j]
		}
	}
	return
}

// IsZero tells whether all components are zero
func (o Tensor) IsZero() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if o[i][j] != 0 {
				return false
			}
		}
	}
	return true
}

// Mat returns a newly allocated matrix with the components of this tensor
func (o Tensor) Mat() (a [][]float64) {
	a = utl.Alloc(3, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = o[i][j]
		}
	}
	return
}

// String returns a representation of this tensor
func (o Tensor) String() (l string) {
	for i := 0; i < 3; i++ {
		if i > 0 {
			l += "\n"
		}
		l += io.Sf("%13.6e%13.6e%13.6e", o[i][0], o[i][1], o[i][2])
	}
	return
}
