// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements loops over integration points that evaluate material models
package ele

import (
	"sort"

	"github.com/cpmech/gosl/io"
)

// IpsMap holds results @ integration points; e.g. "kxx" => [nip]values
type IpsMap map[string][]float64

// NewIpsMap returns a new IpsMap
func NewIpsMap() *IpsMap {
	M := make(IpsMap)
	return &M
}

// Set sets value of 'key' @ integration point idx. A slice of length nip is allocated if needed
func (o *IpsMap) Set(key string, idx, nip int, val float64) {
	slice, ok := (*o)[key]
	if !ok || len(slice) != nip {
		slice = make([]float64, nip)
		(*o)[key] = slice
	}
	slice[idx] = val
}

// Get returns value of 'key' @ integration point idx; or 0 if key is not found
func (o *IpsMap) Get(key string, idx int) float64 {
	if slice, ok := (*o)[key]; ok {
		return slice[idx]
	}
	return 0
}

// Keys returns the sorted keys
func (o *IpsMap) Keys() (keys []string) {
	for key := range *o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return
}

// Table returns a table with one row per integration point and one column per key
func (o *IpsMap) Table(keys []string) (l string) {
	l = io.Sf("%6s", "ip")
	nip := 0
	for _, key := range keys {
		l += io.Sf("%14s", key)
		if n := len((*o)[key]); n > nip {
			nip = n
		}
	}
	l += "\n"
	for idx := 0; idx < nip; idx++ {
		l += io.Sf("%6d", idx)
		for _, key := range keys {
			if idx < len((*o)[key]) {
				l += io.Sf("%14.6e", (*o)[key][idx])
			} else {
				l += io.Sf("%14s", "-")
			}
		}
		l += "\n"
	}
	return
}
