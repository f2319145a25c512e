// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cla

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cofemlab/cofem/dla"
	"github.com/cofemlab/cofem/spm"
)

// ComplexSparseMatrix pairs two serial sparse matrices into a complex
// matrix. Either part may be nil (zero block). The triplet blocks stay
// accessible for inspection; compressed forms are built lazily for
// multiplication.
type ComplexSparseMatrix struct {
	conv       Convention
	ar, ai     *spm.Matrix
	ownR, ownI Ownership
	n          int // block dimension
	ccr, cci   *la.CCMatrix
}

// NewComplexSparseMatrix returns the complex matrix ar + i*ai
func NewComplexSparseMatrix(ar, ai *spm.Matrix, ownR, ownI Ownership, conv Convention) (o *ComplexSparseMatrix) {
	if ar == nil && ai == nil {
		chk.Panic("a complex sparse matrix requires at least one real part")
	}
	o = new(ComplexSparseMatrix)
	o.conv = conv
	o.ar, o.ai = ar, ai
	o.ownR, o.ownI = ownR, ownI
	if ar != nil {
		o.n, _ = ar.Dims()
	} else {
		o.n, _ = ai.Dims()
	}
	if ar != nil && ai != nil {
		if mr, _ := ar.Dims(); mr != o.n {
			chk.Panic("real and imaginary blocks have different dimensions")
		}
		if mi, _ := ai.Dims(); mi != o.n {
			chk.Panic("real and imaginary blocks have different dimensions")
		}
	}
	return
}

// Rows returns the dimension of the equivalent real block system
func (o *ComplexSparseMatrix) Rows() int { return 2 * o.n }

// Cols returns the dimension of the equivalent real block system
func (o *ComplexSparseMatrix) Cols() int { return 2 * o.n }

// Conv returns the sign convention
func (o *ComplexSparseMatrix) Conv() Convention { return o.conv }

// RealPart returns the real block (may be nil)
func (o *ComplexSparseMatrix) RealPart() *spm.Matrix { return o.ar }

// ImagPart returns the imaginary block (may be nil)
func (o *ComplexSparseMatrix) ImagPart() *spm.Matrix { return o.ai }

// Mult computes v = A * u over paired real/imaginary halves, using the
// compressed-column forms of the blocks
func (o *ComplexSparseMatrix) Mult(u, v la.Vector) {
	if len(u) != 2*o.n || len(v) != 2*o.n {
		chk.Panic("complex sparse matrix of size %d cannot multiply vectors of sizes %d and %d", 2*o.n, len(u), len(v))
	}
	ur, ui := u[:o.n], u[o.n:]
	vr, vi := v[:o.n], v[o.n:]
	vr.Fill(0)
	vi.Fill(0)
	if o.ar != nil {
		if o.ccr == nil {
			o.ccr = o.ar.ToMatrix()
		}
		la.SpMatVecMulAdd(vr, 1, o.ccr, ur)
		la.SpMatVecMulAdd(vi, 1, o.ccr, ui)
	}
	if o.ai != nil {
		if o.cci == nil {
			o.cci = o.ai.ToMatrix()
		}
		la.SpMatVecMulAdd(vr, -1, o.cci, ui)
		la.SpMatVecMulAdd(vi, 1, o.cci, ur)
	}
	if o.conv == BlockSymmetric {
		for k := range vi {
			vi[k] = -vi[k]
		}
	}
}

// RealBlocks assembles the equivalent dense 2n x 2n real block system,
// respecting the convention. Intended for direct solves of small systems.
func (o *ComplexSparseMatrix) RealBlocks() (d *la.Matrix) {
	n := o.n
	d = la.NewMatrix(2*n, 2*n)
	s := o.conv.Sign()
	if o.ar != nil {
		for k, x := range o.ar.X {
			i, j := o.ar.I[k], o.ar.J[k]
			d.Add(i, j, x)
			d.Add(n+i, n+j, s*x)
		}
	}
	if o.ai != nil {
		for k, x := range o.ai.X {
			i, j := o.ai.I[k], o.ai.J[k]
			d.Add(i, n+j, -x)
			d.Add(n+i, j, s*x)
		}
	}
	return
}

// Free releases the owned blocks
func (o *ComplexSparseMatrix) Free() {
	if o.ownR == Owned {
		o.ar, o.ccr = nil, nil
	}
	if o.ownI == Owned {
		o.ai, o.cci = nil, nil
	}
}

// ComplexDistMatrix pairs two distributed matrices into a complex matrix
type ComplexDistMatrix struct {
	conv       Convention
	ar, ai     *dla.DistMatrix
	ownR, ownI Ownership
	n          int
}

// NewComplexDistMatrix returns the distributed complex matrix ar + i*ai
func NewComplexDistMatrix(ar, ai *dla.DistMatrix, ownR, ownI Ownership, conv Convention) (o *ComplexDistMatrix) {
	if ar == nil || ai == nil {
		chk.Panic("a distributed complex matrix requires both real parts")
	}
	if ar.Rows() != ai.Rows() {
		chk.Panic("real and imaginary blocks have different dimensions. %d != %d", ar.Rows(), ai.Rows())
	}
	o = new(ComplexDistMatrix)
	o.conv = conv
	o.ar, o.ai = ar, ai
	o.ownR, o.ownI = ownR, ownI
	o.n = ar.Rows()
	return
}

// Rows returns the dimension of the equivalent real block system
func (o *ComplexDistMatrix) Rows() int { return 2 * o.n }

// Cols returns the dimension of the equivalent real block system
func (o *ComplexDistMatrix) Cols() int { return 2 * o.n }

// Conv returns the sign convention
func (o *ComplexDistMatrix) Conv() Convention { return o.conv }

// RealPart returns the real block
func (o *ComplexDistMatrix) RealPart() *dla.DistMatrix { return o.ar }

// ImagPart returns the imaginary block
func (o *ComplexDistMatrix) ImagPart() *dla.DistMatrix { return o.ai }

// Mult computes the globally consistent product v = A * u over paired
// replicated halves
func (o *ComplexDistMatrix) Mult(u, v la.Vector) {
	if len(u) != 2*o.n || len(v) != 2*o.n {
		chk.Panic("distributed complex matrix of size %d cannot multiply vectors of sizes %d and %d", 2*o.n, len(u), len(v))
	}
	ur, ui := u[:o.n], u[o.n:]
	vr, vi := v[:o.n], v[o.n:]
	w := la.NewVector(o.n)
	o.ar.Mult(ur, vr)
	o.ar.Mult(ui, vi)
	o.ai.Mult(ui, w)
	for k := range vr {
		vr[k] -= w[k]
	}
	o.ai.Mult(ur, w)
	for k := range vi {
		vi[k] += w[k]
	}
	if o.conv == BlockSymmetric {
		for k := range vi {
			vi[k] = -vi[k]
		}
	}
}

// Free releases the owned blocks
func (o *ComplexDistMatrix) Free() {
	if o.ownR == Owned {
		o.ar = nil
	}
	if o.ownI == Owned {
		o.ai = nil
	}
}
