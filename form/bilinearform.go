// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cofemlab/cofem/fes"
	"github.com/cofemlab/cofem/spm"
)

// BilinearForm assembles a real serial operator over a fes.Space and
// forms reduced linear systems with essential-boundary elimination.
//
// FormLinearSystem follows the standard elimination semantics: the
// assembled matrix is reduced through the conforming prolongation (when
// present), eliminated rows and columns are zeroed with a unit diagonal,
// and the eliminated columns are retained so that repeated calls with
// different vectors only redo the right-hand-side correction
// (B -= Ae*X; B[j] = X[j]).
type BilinearForm struct {
	sp     *fes.Space
	kb     *spm.Matrix // raw assembled matrix (ndofs x ndofs)
	domain []BilinIntegrator

	// elimination state, built on the first FormLinearSystem call
	mat *spm.Matrix // reduced matrix with eliminated rows/cols and unit diagonal
	ae  *spm.Matrix // eliminated columns
}

// NewBilinearForm returns a bilinear form bound to sp
func NewBilinearForm(sp *fes.Space) (o *BilinearForm) {
	o = new(BilinearForm)
	o.sp = sp
	n := sp.NumDofs()
	o.kb = spm.New(n, n, 0)
	return
}

// Space returns the finite-element space
func (o *BilinearForm) Space() *fes.Space { return o.sp }

// Triplet returns the raw assembled matrix
func (o *BilinearForm) Triplet() *spm.Matrix { return o.kb }

// AddDomainIntegrator appends a domain integrator; ownership transfers to
// this form
func (o *BilinearForm) AddDomainIntegrator(itg BilinIntegrator) {
	o.domain = append(o.domain, itg)
}

// Assemble accumulates all integrators into the triplet matrix
func (o *BilinearForm) Assemble() (err error) {
	o.kb.Start()
	o.mat, o.ae = nil, nil
	for _, itg := range o.domain {
		if err = itg.AddToKb(o.kb, o.sp); err != nil {
			return
		}
	}
	return
}

// FormLinearSystem reduces the assembled operator and the vectors x
// (initial guess, carrying prescribed boundary values) and b (load) to
// the true-dof space, eliminating the dofs listed in ess. When
// copyInterior is false the interior of X is zeroed first, so B carries
// only the boundary-lifting contribution of the prescribed values.
// The reduced matrix is shared across calls; callers must not modify it.
func (o *BilinearForm) FormLinearSystem(ess []int, x, b la.Vector, copyInterior bool) (A *spm.Matrix, X, B la.Vector, err error) {
	n := o.sp.NumDofs()
	nt := o.sp.NumTrueDofs()
	if len(x) != n {
		chk.Panic("input vector x of incorrect size. %d != %d", len(x), n)
	}
	if len(b) != n {
		chk.Panic("input vector b of incorrect size. %d != %d", len(b), n)
	}

	// restrict vectors to true-dof space
	X = la.NewVector(nt)
	B = la.NewVector(nt)
	if R := o.sp.Restriction(); R == nil {
		copy(X, x)
	} else {
		R.MulVecAdd(X, 1, x)
	}
	if P := o.sp.Prolongation(); P == nil {
		copy(B, b)
	} else {
		P.MulTrVecAdd(B, 1, b)
	}

	// reduce and eliminate the matrix once
	if o.mat == nil {
		o.mat = spm.Rap(o.sp.Prolongation(), o.kb)
		o.ae = o.mat.EliminateRowCols(ess)
	}

	// eliminate boundary conditions from the right-hand side
	if !copyInterior {
		keepOnlyEss(X, ess)
	}
	o.ae.MulVecAdd(B, -1, X)
	for _, j := range ess {
		B[j] = X[j]
	}
	A = o.mat
	return
}

// RecoverFEMSolution maps the reduced solution X back to the full dof
// vector x through the conforming prolongation (or a copy)
func (o *BilinearForm) RecoverFEMSolution(X, x la.Vector) {
	if P := o.sp.Prolongation(); P != nil {
		x.Fill(0)
		P.MulVecAdd(x, 1, X)
		return
	}
	copy(x, X)
}

// Update re-binds this form to a (possibly resized) space, dropping the
// assembled matrix and the elimination state
func (o *BilinearForm) Update(sp *fes.Space) {
	o.sp = sp
	n := sp.NumDofs()
	o.kb.Init(n, n, 0)
	o.mat, o.ae = nil, nil
}

// keepOnlyEss zeroes all entries of v except those listed in ess
func keepOnlyEss(v la.Vector, ess []int) {
	mark := make([]bool, len(v))
	for _, j := range ess {
		mark[j] = true
	}
	for i := range v {
		if !mark[i] {
			v[i] = 0
		}
	}
}
