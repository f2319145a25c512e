// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cofemlab/cofem/cla"
	"github.com/cofemlab/cofem/dla"
	"github.com/cofemlab/cofem/fes"
	"github.com/cofemlab/cofem/spm"
)

// ParBilinearForm assembles a real distributed operator over a
// partitioned fes.Space. Each rank assembles only its own cells; vectors
// are full-length and replicated, and right-hand-side corrections that
// involve the distributed matrix are made globally consistent with an
// all-reduce.
type ParBilinearForm struct {
	sp     *fes.Space
	dm     *dla.DistMatrix
	domain []BilinIntegrator

	// elimination state, built on the first FormLinearSystem call
	formed bool
	ae     *spm.Matrix // this rank's share of the eliminated columns

	// opOnly makes FormLinearSystem return the matrix behind an opaque
	// generic handle, hiding mutable diagonal access from the caller
	opOnly bool
}

// NewParBilinearForm returns a distributed bilinear form bound to sp
func NewParBilinearForm(sp *fes.Space) (o *ParBilinearForm) {
	o = new(ParBilinearForm)
	o.sp = sp
	return
}

// Space returns the finite-element space
func (o *ParBilinearForm) Space() *fes.Space { return o.sp }

// Matrix returns the assembled distributed matrix (nil before Assemble)
func (o *ParBilinearForm) Matrix() *dla.DistMatrix { return o.dm }

// KeepOperatorOnly makes FormLinearSystem return a generic operator
// handle instead of a distributed-matrix handle
func (o *ParBilinearForm) KeepOperatorOnly(opOnly bool) { o.opOnly = opOnly }

// AddDomainIntegrator appends a domain integrator; ownership transfers to
// this form
func (o *ParBilinearForm) AddDomainIntegrator(itg BilinIntegrator) {
	o.domain = append(o.domain, itg)
}

// Assemble accumulates this rank's cells into a fresh distributed matrix
func (o *ParBilinearForm) Assemble() (err error) {
	n := o.sp.NumDofs()
	o.dm = dla.NewDistMatrix(o.sp.Comm(), o.sp.TrueDofOffsets(), n)
	o.formed, o.ae = false, nil
	for _, itg := range o.domain {
		if err = itg.AddToKb(o.dm.Triplet(), o.sp); err != nil {
			return
		}
	}
	return
}

// FormLinearSystem eliminates the dofs listed in ess and produces the
// reduced system over full-length replicated vectors. The returned
// handle is Distributed unless KeepOperatorOnly was set.
func (o *ParBilinearForm) FormLinearSystem(ess []int, x, b la.Vector, copyInterior bool) (A *cla.RealHandle, X, B la.Vector, err error) {
	if o.dm == nil {
		chk.Panic("FormLinearSystem requires Assemble to be called first")
	}
	n := o.sp.NumDofs()
	if len(x) != n {
		chk.Panic("input vector x of incorrect size. %d != %d", len(x), n)
	}
	if len(b) != n {
		chk.Panic("input vector b of incorrect size. %d != %d", len(b), n)
	}

	X = x.GetCopy()
	B = b.GetCopy()

	if !o.formed {
		o.ae = o.dm.EliminateRowCols(ess)
		o.formed = true
	}

	if !copyInterior {
		keepOnlyEss(X, ess)
	}

	// globally consistent boundary-lifting correction: B -= sum_ranks Ae*X
	w := la.NewVector(n)
	o.ae.MulVecAdd(w, 1, X)
	red := la.NewVector(n)
	o.dm.AllReduceSum(red, w)
	for i := range B {
		B[i] -= red[i]
	}
	for _, j := range ess {
		B[j] = X[j]
	}

	if o.opOnly {
		A = cla.NewGenericRealHandle(o.dm, cla.External)
	} else {
		A = cla.NewDistRealHandle(o.dm, cla.External)
	}
	return
}

// Update re-binds this form to a (possibly resized) space, dropping the
// assembled matrix and the elimination state
func (o *ParBilinearForm) Update(sp *fes.Space) {
	o.sp = sp
	o.dm, o.ae = nil, nil
	o.formed = false
}
