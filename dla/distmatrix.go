// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dla implements the distributed (Hypre-class) sparse matrix used
// by the parallel assembly layer, following the replicated-global-vector
// model: every rank holds full-length vectors, each rank holds only its
// share of matrix entries, and the logical global matrix is the sum of
// all shares. Collective reductions (sum/max) make results consistent.
package dla

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"

	"github.com/cofemlab/cofem/spm"
)

// DistMatrix is a square row-distributed sparse matrix. Each rank owns a
// contiguous row range given by offsets; ownership decides which rank is
// responsible for diagonal bookkeeping during elimination. A nil
// communicator produces a single-rank matrix, which lets the distributed
// code path run without mpirun.
type DistMatrix struct {
	comm    *mpi.Communicator
	rank    int
	offsets []int       // [nproc+1] row ownership ranges
	n       int         // global dimension
	a       *spm.Matrix // this rank's share of entries (global indices)
}

// NewDistMatrix returns a new distributed matrix with global dimension n
func NewDistMatrix(comm *mpi.Communicator, offsets []int, n int) (o *DistMatrix) {
	if offsets == nil {
		offsets = []int{0, n}
	}
	if offsets[len(offsets)-1] != n {
		chk.Panic("dof offsets are inconsistent with global dimension. %d != %d", offsets[len(offsets)-1], n)
	}
	o = new(DistMatrix)
	o.comm = comm
	if comm != nil {
		o.rank = comm.Rank()
	}
	o.offsets = offsets
	o.n = n
	o.a = spm.New(n, n, 0)
	return
}

// Rows returns the global dimension
func (o *DistMatrix) Rows() int { return o.n }

// Cols returns the global dimension
func (o *DistMatrix) Cols() int { return o.n }

// Triplet returns this rank's share of entries, for assembly
func (o *DistMatrix) Triplet() *spm.Matrix { return o.a }

// OwnedRange returns the row range owned by this rank
func (o *DistMatrix) OwnedRange() (lo, hi int) {
	return o.offsets[o.rank], o.offsets[o.rank+1]
}

// Owns tells whether row j is owned by this rank
func (o *DistMatrix) Owns(j int) bool {
	lo, hi := o.OwnedRange()
	return j >= lo && j < hi
}

// AllReduceSum sums orig across all ranks into dest. With a nil
// communicator the result is simply copied.
func (o *DistMatrix) AllReduceSum(dest, orig la.Vector) {
	if o.comm == nil {
		copy(dest, orig)
		return
	}
	o.comm.AllReduceSum(dest, orig)
}

// Mult computes the globally consistent product v = A * u, where u and v
// are full-length replicated vectors
func (o *DistMatrix) Mult(u, v la.Vector) {
	if len(u) != o.n || len(v) != o.n {
		chk.Panic("vector sizes are incompatible with %d x %d distributed matrix. len(u)=%d, len(v)=%d", o.n, o.n, len(u), len(v))
	}
	w := la.NewVector(o.n)
	o.a.MulVecAdd(w, 1, u)
	o.AllReduceSum(v, w)
}

// EliminateRowCols eliminates the rows and columns listed in ess from
// this rank's share. Every rank drops its marked entries; only the owner
// of an eliminated row places the unit diagonal, so that the global sum
// carries exactly one. The returned matrix is this rank's share of the
// eliminated columns (see spm.Matrix.EliminateRowCols); products with it
// must be all-reduced before use.
func (o *DistMatrix) EliminateRowCols(ess []int) (ae *spm.Matrix) {
	mark := make([]bool, o.n)
	for _, j := range ess {
		if j < 0 || j >= o.n {
			chk.Panic("essential dof %d is out of range [0,%d)", j, o.n)
		}
		mark[j] = true
	}
	ae = spm.New(o.n, o.n, len(ess))
	kept := 0
	I, J, X := o.a.I, o.a.J, o.a.X
	for k, x := range X {
		i, j := I[k], J[k]
		switch {
		case !mark[i] && !mark[j]:
			I[kept], J[kept], X[kept] = i, j, x
			kept++
		case !mark[i] && mark[j]:
			ae.Put(i, j, x)
		}
	}
	o.a.I, o.a.J, o.a.X = I[:kept], J[:kept], X[:kept]
	for _, j := range ess {
		if o.Owns(j) {
			o.a.Put(j, j, 1.0)
		}
	}
	return
}

// ZeroDiag zeroes this rank's entries at position (j,j). After
// elimination the global diagonal of an eliminated row is a single unit
// entry on the owner rank, so the global diagonal becomes exactly zero.
func (o *DistMatrix) ZeroDiag(j int) {
	o.a.ZeroDiag(j)
}

// ToDense gathers the globally consistent dense form of this matrix
// (collective; intended for small problems and tests)
func (o *DistMatrix) ToDense() (d *la.Matrix) {
	loc := o.a.ToDense()
	d = la.NewMatrix(o.n, o.n)
	if o.comm == nil {
		d.Data = append(d.Data[:0], loc.Data...)
		return
	}
	o.comm.AllReduceSum(d.Data, loc.Data)
	return
}
