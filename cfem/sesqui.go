// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfem

import (
	"github.com/cpmech/gosl/la"

	"github.com/cofemlab/cofem/cla"
	"github.com/cofemlab/cofem/fes"
	"github.com/cofemlab/cofem/form"
)

// SesquilinearForm holds a complex operator as a pair of
// independently-owned real bilinear forms sharing one space. The
// convention is fixed at construction and threaded through every
// assembly, combination and recovery step.
type SesquilinearForm struct {
	conv cla.Convention
	blfr *form.BilinearForm
	blfi *form.BilinearForm
}

// NewSesquilinearForm returns a sesquilinear form on sp
func NewSesquilinearForm(sp *fes.Space, conv cla.Convention) (o *SesquilinearForm) {
	o = new(SesquilinearForm)
	o.conv = conv
	o.blfr = form.NewBilinearForm(sp)
	o.blfi = form.NewBilinearForm(sp)
	return
}

// Conv returns the sign convention
func (o *SesquilinearForm) Conv() cla.Convention { return o.conv }

// RealForm returns the real-part form
func (o *SesquilinearForm) RealForm() *form.BilinearForm { return o.blfr }

// ImagForm returns the imaginary-part form
func (o *SesquilinearForm) ImagForm() *form.BilinearForm { return o.blfi }

// AddDomainIntegrator adds integrators to the two halves; nil halves are
// no-ops
func (o *SesquilinearForm) AddDomainIntegrator(re, im form.BilinIntegrator) {
	if re != nil {
		o.blfr.AddDomainIntegrator(re)
	}
	if im != nil {
		o.blfi.AddDomainIntegrator(im)
	}
}

// Assemble assembles both real forms independently
func (o *SesquilinearForm) Assemble() (err error) {
	if err = o.blfr.Assemble(); err != nil {
		return
	}
	return o.blfi.Assemble()
}

// AssembleComplexSparseMatrix pairs the raw assembled blocks, without
// boundary-condition elimination; the blocks remain owned by the forms
func (o *SesquilinearForm) AssembleComplexSparseMatrix() *cla.ComplexSparseMatrix {
	return cla.NewComplexSparseMatrix(o.blfr.Triplet(), o.blfi.Triplet(),
		cla.External, cla.External, o.conv)
}

// FormLinearSystem combines four real partial eliminations into the
// reduced complex system  (Ar + i*Ai)(Xr + i*Xi) = (Br + i*Bi)  with the
// essential dofs listed in ess eliminated consistently from both blocks.
//
// With s = +1 (Hermitian) or s = -1 (BlockSymmetric) the passes run
// strictly in this order, because each one reads state produced by the
// previous:
//
//  1. scale the imaginary half of b by s in place;
//  2. real pass over (blfr, x_r, b_r) -> Ar, X0, B0; Xr, Br = X0, B0;
//  3. cross pass over (blfi, x_i, 0) without interior copy -> the
//     boundary-lifting contribution B0; Br -= B0;
//  4. real pass over (blfr, x_i, b_i) -> X0, B0; Xi, Bi = X0, B0;
//  5. cross pass over (blfi, x_r, 0) without interior copy -> B0;
//     Bi += B0;
//  6. scale Bi and the imaginary half of b by s again (restoring b).
//
// The serial representation keeps the unit diagonal that elimination
// placed on the imaginary block; only the distributed path (see
// ParSesquilinearForm) zeroes it. x and b must have exactly twice the
// space's local size; b is returned unchanged.
func (o *SesquilinearForm) FormLinearSystem(ess []int, x, b la.Vector, copyInterior bool) (A *cla.Handle, X, B la.Vector, err error) {
	vsize := o.blfr.Space().NumDofs()
	checkPairSize(x, vsize, "x")
	checkPairSize(b, vsize, "b")

	s := o.conv.Sign()

	xr, xi := x[:vsize], x[vsize:]
	br, bi := b[:vsize], b[vsize:]
	for k := range bi {
		bi[k] *= s
	}

	b0 := la.NewVector(vsize)

	copy(b0, br)
	Ar, X0, B0, err := o.blfr.FormLinearSystem(ess, xr, b0, copyInterior)
	if err != nil {
		return
	}

	tvsize := len(B0)
	X = la.NewVector(2 * tvsize)
	B = la.NewVector(2 * tvsize)
	Xr, Xi := X[:tvsize], X[tvsize:]
	Br, Bi := B[:tvsize], B[tvsize:]
	copy(Xr, X0)
	copy(Br, B0)

	b0.Fill(0)
	Ai, _, B0, err := o.blfi.FormLinearSystem(ess, xi, b0, false)
	if err != nil {
		return
	}
	for k := range Br {
		Br[k] -= B0[k]
	}

	copy(b0, bi)
	_, X0, B0, err = o.blfr.FormLinearSystem(ess, xi, b0, copyInterior)
	if err != nil {
		return
	}
	copy(Xi, X0)
	copy(Bi, B0)

	b0.Fill(0)
	_, _, B0, err = o.blfi.FormLinearSystem(ess, xr, b0, false)
	if err != nil {
		return
	}
	for k := range Bi {
		Bi[k] += B0[k]
	}

	for k := range Bi {
		Bi[k] *= s
	}
	for k := range bi {
		bi[k] *= s
	}

	// A = Ar + i*Ai
	A = cla.NewGenericHandle(cla.NewComplexSparseMatrix(Ar, Ai,
		cla.External, cla.External, o.conv))
	return
}

// RecoverFEMSolution expands the reduced solution X back to the full
// 2N vector x, applying the conforming prolongation (or a copy) to each
// half independently. No convention-dependent sign logic is involved.
func (o *SesquilinearForm) RecoverFEMSolution(X, x la.Vector) {
	sp := o.blfr.Space()
	vsize := sp.NumDofs()
	tvsize := len(X) / 2
	checkPairSize(x, vsize, "x")

	Xr, Xi := X[:tvsize], X[tvsize:]
	xr, xi := x[:vsize], x[vsize:]

	if P := sp.Prolongation(); P == nil {
		copy(xr, Xr)
		copy(xi, Xi)
		return
	}
	o.blfr.RecoverFEMSolution(Xr, xr)
	o.blfr.RecoverFEMSolution(Xi, xi)
}

// Update re-binds both real forms to a (possibly resized) space
func (o *SesquilinearForm) Update(sp *fes.Space) {
	o.blfr.Update(sp)
	o.blfi.Update(sp)
}
