// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func Test_matrix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matrix01. put, duplicates and conversions")

	a := New(3, 3, 4)
	a.Put(0, 0, 1)
	a.Put(1, 1, 2)
	a.Put(1, 1, 0.5) // duplicate entries are summed
	a.Put(2, 0, -1)
	a.Put(2, 2, 3)

	d := a.ToDense()
	chk.Array(tst, "dense", 1e-17, d.Data, la.NewMatrixDeep2([][]float64{
		{1, 0, 0},
		{0, 2.5, 0},
		{-1, 0, 3},
	}).Data)

	u := la.Vector{1, 2, 3}
	v := la.NewVector(3)
	a.MulVecAdd(v, 1, u)
	chk.Array(tst, "A*u", 1e-15, v, []float64{1, 5, 8})

	w := la.NewVector(3)
	a.MulTrVecAdd(w, 1, u)
	chk.Array(tst, "At*u", 1e-15, w, []float64{-2, 5, 9})

	chk.Int(tst, "nnz", a.Len(), 5)
}

func Test_matrix02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matrix02. triple product with prolongation")

	// periodic-style prolongation: 3 local dofs, 2 true dofs, last
	// local dof is a copy of the first
	P := New(3, 2, 3)
	P.Put(0, 0, 1)
	P.Put(1, 1, 1)
	P.Put(2, 0, 1)

	A := New(3, 3, 9)
	vals := [][]float64{
		{4, 1, 2},
		{1, 5, 1},
		{2, 1, 6},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			A.Put(i, j, vals[i][j])
		}
	}

	At := Rap(P, A)
	m, n := At.Dims()
	chk.Int(tst, "rows(At)", m, 2)
	chk.Int(tst, "cols(At)", n, 2)

	// At[r][c] = sum_{i,j} P[i][r] A[i][j] P[j][c]
	d := At.ToDense()
	chk.Float64(tst, "At00", 1e-15, d.Get(0, 0), 4+2+2+6)
	chk.Float64(tst, "At01", 1e-15, d.Get(0, 1), 1+1.0)
	chk.Float64(tst, "At10", 1e-15, d.Get(1, 0), 1+1.0)
	chk.Float64(tst, "At11", 1e-15, d.Get(1, 1), 5.0)

	// nil prolongation returns a copy
	cp := Rap(nil, A)
	chk.Array(tst, "copy", 1e-17, cp.ToDense().Data, A.ToDense().Data)
}

func Test_matrix03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("matrix03. essential-boundary elimination")

	A := New(3, 3, 9)
	vals := [][]float64{
		{4, 1, 2},
		{1, 5, 1},
		{2, 1, 6},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			A.Put(i, j, vals[i][j])
		}
	}

	ae := A.EliminateRowCols([]int{0})

	// eliminated matrix: row/col 0 zeroed, unit diagonal
	d := A.ToDense()
	chk.Array(tst, "A after elimination", 1e-17, d.Data, la.NewMatrixDeep2([][]float64{
		{1, 0, 0},
		{0, 5, 1},
		{0, 1, 6},
	}).Data)

	// eliminated columns: entries (i,0) with i != 0
	de := ae.ToDense()
	chk.Array(tst, "Ae", 1e-17, de.Data, la.NewMatrixDeep2([][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{2, 0, 0},
	}).Data)

	// rhs correction: b -= Ae*x with x holding the prescribed value
	x := la.Vector{10, 0, 0}
	b := la.Vector{0, 7, 8}
	ae.MulVecAdd(b, -1, x)
	b[0] = x[0]
	chk.Array(tst, "b", 1e-15, b, []float64{10, -3, -12})
}
