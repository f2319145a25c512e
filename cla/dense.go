// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cla

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"gonum.org/v1/gonum/mat"
)

// DenseOperator adapts a gonum dense matrix to the Operator interface,
// providing the generic (non-sparse) arm of operator pairings
type DenseOperator struct {
	a *mat.Dense
}

// NewDenseOperator wraps a gonum dense matrix
func NewDenseOperator(a *mat.Dense) *DenseOperator {
	return &DenseOperator{a: a}
}

// Rows returns the number of rows
func (o *DenseOperator) Rows() int {
	r, _ := o.a.Dims()
	return r
}

// Cols returns the number of columns
func (o *DenseOperator) Cols() int {
	_, c := o.a.Dims()
	return c
}

// Mult computes v = A * u
func (o *DenseOperator) Mult(u, v la.Vector) {
	r, c := o.a.Dims()
	if len(u) != c || len(v) != r {
		chk.Panic("vector sizes are incompatible with %d x %d dense operator. len(u)=%d, len(v)=%d", r, c, len(u), len(v))
	}
	res := mat.NewVecDense(r, v)
	res.MulVec(o.a, mat.NewVecDense(c, u))
}
