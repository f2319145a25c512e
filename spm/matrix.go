// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spm implements a triplet (COO) sparse matrix with open entry
// access. It complements gosl's la.Triplet, whose internal arrays are not
// reachable, because boundary-condition elimination and triple products
// need to walk and filter individual entries. Conversion methods bridge
// back to la.Triplet / la.CCMatrix for solver interop.
package spm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Matrix holds a sparse matrix in triplet format. Repeated (i,j) pairs are
// allowed and are summed by all operations, matching assembly semantics.
type Matrix struct {
	m, n int       // dimensions
	I, J []int     // row and column indices of nonzero entries
	X    []float64 // values of nonzero entries
}

// New returns a new triplet matrix with dimensions m x n. guessNnz merely
// pre-allocates; the entry arrays grow as needed.
func New(m, n, guessNnz int) (o *Matrix) {
	o = new(Matrix)
	o.Init(m, n, guessNnz)
	return
}

// Init (re)initialises this matrix, dropping all entries
func (o *Matrix) Init(m, n, guessNnz int) {
	if m < 1 || n < 1 {
		chk.Panic("matrix dimensions must be positive. m=%d, n=%d is invalid", m, n)
	}
	o.m, o.n = m, n
	o.I = make([]int, 0, guessNnz)
	o.J = make([]int, 0, guessNnz)
	o.X = make([]float64, 0, guessNnz)
}

// Start erases all entries, keeping dimensions and capacity
func (o *Matrix) Start() {
	o.I = o.I[:0]
	o.J = o.J[:0]
	o.X = o.X[:0]
}

// Dims returns the dimensions of this matrix
func (o *Matrix) Dims() (m, n int) { return o.m, o.n }

// Len returns the current number of stored entries
func (o *Matrix) Len() int { return len(o.X) }

// Put adds x to the (i,j) entry
func (o *Matrix) Put(i, j int, x float64) {
	if i < 0 || i >= o.m || j < 0 || j >= o.n {
		chk.Panic("cannot put entry at (%d,%d) in %d x %d matrix", i, j, o.m, o.n)
	}
	o.I = append(o.I, i)
	o.J = append(o.J, j)
	o.X = append(o.X, x)
}

// GetCopy returns a deep copy of this matrix
func (o *Matrix) GetCopy() (clone *Matrix) {
	clone = New(o.m, o.n, len(o.X))
	clone.I = append(clone.I, o.I...)
	clone.J = append(clone.J, o.J...)
	clone.X = append(clone.X, o.X...)
	return
}

// MulVecAdd computes v += alpha * A * u
func (o *Matrix) MulVecAdd(v la.Vector, alpha float64, u la.Vector) {
	if len(u) != o.n || len(v) != o.m {
		chk.Panic("vector sizes are incompatible with %d x %d matrix. len(u)=%d, len(v)=%d", o.m, o.n, len(u), len(v))
	}
	for k, x := range o.X {
		v[o.I[k]] += alpha * x * u[o.J[k]]
	}
}

// MulTrVecAdd computes v += alpha * transpose(A) * u
func (o *Matrix) MulTrVecAdd(v la.Vector, alpha float64, u la.Vector) {
	if len(u) != o.m || len(v) != o.n {
		chk.Panic("vector sizes are incompatible with %d x %d matrix (transposed). len(u)=%d, len(v)=%d", o.m, o.n, len(u), len(v))
	}
	for k, x := range o.X {
		v[o.J[k]] += alpha * x * u[o.I[k]]
	}
}

// ToTriplet converts this matrix to a gosl triplet
func (o *Matrix) ToTriplet() (t *la.Triplet) {
	nnz := len(o.X)
	if nnz == 0 {
		nnz = 1 // gosl triplets cannot be empty
	}
	t = la.NewTriplet(o.m, o.n, nnz)
	if len(o.X) == 0 {
		t.Put(0, 0, 0)
		return
	}
	for k, x := range o.X {
		t.Put(o.I[k], o.J[k], x)
	}
	return
}

// ToMatrix converts this matrix to compressed-column format
func (o *Matrix) ToMatrix() *la.CCMatrix {
	return o.ToTriplet().ToMatrix(nil)
}

// ToDense converts this matrix to a dense matrix
func (o *Matrix) ToDense() (d *la.Matrix) {
	d = la.NewMatrix(o.m, o.n)
	for k, x := range o.X {
		d.Add(o.I[k], o.J[k], x)
	}
	return
}

// Rap computes the triple product transpose(P) * A * P, reducing A to the
// column space of P. A nil P stands for the identity, in which case a copy
// of A is returned.
func Rap(P, A *Matrix) (At *Matrix) {
	if P == nil {
		return A.GetCopy()
	}
	m, nt := P.Dims()
	am, an := A.Dims()
	if am != m || an != m {
		chk.Panic("triple product needs a square %d x %d matrix A. A is %d x %d", m, m, am, an)
	}

	// adjacency of P by row
	type pentry struct {
		col int
		val float64
	}
	rows := make([][]pentry, m)
	for k, x := range P.X {
		rows[P.I[k]] = append(rows[P.I[k]], pentry{P.J[k], x})
	}

	At = New(nt, nt, len(A.X))
	for k, x := range A.X {
		for _, pi := range rows[A.I[k]] {
			for _, pj := range rows[A.J[k]] {
				At.Put(pi.col, pj.col, pi.val*x*pj.val)
			}
		}
	}
	return
}

// EliminateRowCols applies a symmetric essential-boundary elimination to
// this (square) matrix, in place: rows and columns listed in ess are
// zeroed and a unit value is placed on each eliminated diagonal. The
// returned matrix holds the eliminated columns (rows not in ess only);
// it is what must multiply the prescribed values when correcting a
// right-hand side:  b -= Ae * x
func (o *Matrix) EliminateRowCols(ess []int) (ae *Matrix) {
	if o.m != o.n {
		chk.Panic("elimination requires a square matrix. %d x %d is invalid", o.m, o.n)
	}
	mark := make([]bool, o.m)
	for _, j := range ess {
		if j < 0 || j >= o.m {
			chk.Panic("essential dof %d is out of range [0,%d)", j, o.m)
		}
		mark[j] = true
	}
	ae = New(o.m, o.n, len(ess))
	kept := 0
	for k, x := range o.X {
		i, j := o.I[k], o.J[k]
		switch {
		case !mark[i] && !mark[j]: // interior entry: keep
			o.I[kept], o.J[kept], o.X[kept] = i, j, x
			kept++
		case !mark[i] && mark[j]: // eliminated column: move to ae
			ae.Put(i, j, x)
		}
		// entries in eliminated rows are dropped; the unit diagonal
		// replaces them below
	}
	o.I, o.J, o.X = o.I[:kept], o.J[:kept], o.X[:kept]
	for _, j := range ess {
		o.Put(j, j, 1.0)
	}
	return
}

// ZeroDiag zeroes all entries stored at position (j,j)
func (o *Matrix) ZeroDiag(j int) {
	for k := range o.X {
		if o.I[k] == j && o.J[k] == j {
			o.X[k] = 0
		}
	}
}
