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

// ParSesquilinearForm is the distributed counterpart of
// SesquilinearForm, combining two ParBilinearForms into a reduced
// distributed complex system
type ParSesquilinearForm struct {
	conv  cla.Convention
	pblfr *form.ParBilinearForm
	pblfi *form.ParBilinearForm
}

// NewParSesquilinearForm returns a sesquilinear form on the partitioned
// space sp
func NewParSesquilinearForm(sp *fes.Space, conv cla.Convention) (o *ParSesquilinearForm) {
	o = new(ParSesquilinearForm)
	o.conv = conv
	o.pblfr = form.NewParBilinearForm(sp)
	o.pblfi = form.NewParBilinearForm(sp)
	return
}

// Conv returns the sign convention
func (o *ParSesquilinearForm) Conv() cla.Convention { return o.conv }

// RealForm returns the real-part form
func (o *ParSesquilinearForm) RealForm() *form.ParBilinearForm { return o.pblfr }

// ImagForm returns the imaginary-part form
func (o *ParSesquilinearForm) ImagForm() *form.ParBilinearForm { return o.pblfi }

// AddDomainIntegrator adds integrators to the two halves; nil halves are
// no-ops
func (o *ParSesquilinearForm) AddDomainIntegrator(re, im form.BilinIntegrator) {
	if re != nil {
		o.pblfr.AddDomainIntegrator(re)
	}
	if im != nil {
		o.pblfi.AddDomainIntegrator(im)
	}
}

// Assemble assembles both real forms independently
func (o *ParSesquilinearForm) Assemble() (err error) {
	if err = o.pblfr.Assemble(); err != nil {
		return
	}
	return o.pblfi.Assemble()
}

// ParallelAssemble pairs the assembled distributed blocks, without
// boundary-condition elimination
func (o *ParSesquilinearForm) ParallelAssemble() *cla.ComplexDistMatrix {
	return cla.NewComplexDistMatrix(o.pblfr.Matrix(), o.pblfi.Matrix(),
		cla.External, cla.External, o.conv)
}

// FormLinearSystem runs the same four passes as the serial
// SesquilinearForm (see its documentation for the sign and ordering
// contract) over distributed blocks, then applies the distributed-only
// boundary correction: when the imaginary block is a distributed matrix,
// elimination has left a unit value on each eliminated diagonal, which
// would spuriously impose a nonzero value through the imaginary block;
// those diagonals are zeroed explicitly and Br[j] = Xr[j], Bi[j] = Xi[j]
// are forced for every eliminated dof j. A generic imaginary block does
// not expose mutable diagonal access and keeps the unit diagonal.
//
// The half size is taken from x; b must match it. Vectors are
// full-length and replicated, already globally assembled.
func (o *ParSesquilinearForm) FormLinearSystem(ess []int, x, b la.Vector, copyInterior bool) (A *cla.Handle, X, B la.Vector, err error) {
	vsize := len(x) / 2
	checkPairSize(b, vsize, "b")

	s := o.conv.Sign()

	xr, xi := x[:vsize], x[vsize:]
	br, bi := b[:vsize], b[vsize:]
	for k := range bi {
		bi[k] *= s
	}

	b0 := la.NewVector(vsize)

	copy(b0, br)
	Ar, X0, B0, err := o.pblfr.FormLinearSystem(ess, xr, b0, copyInterior)
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
	Ai, _, B0, err := o.pblfi.FormLinearSystem(ess, xi, b0, false)
	if err != nil {
		return
	}
	for k := range Br {
		Br[k] -= B0[k]
	}

	copy(b0, bi)
	_, X0, B0, err = o.pblfr.FormLinearSystem(ess, xi, b0, copyInterior)
	if err != nil {
		return
	}
	copy(Xi, X0)
	copy(Bi, B0)

	b0.Fill(0)
	_, _, B0, err = o.pblfi.FormLinearSystem(ess, xr, b0, false)
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

	// distributed-only boundary correction on the imaginary block
	if Ai.Kind() == cla.Distributed {
		Ah := Ai.Dist()
		for _, j := range ess {
			Ah.ZeroDiag(j)
			Br[j] = Xr[j]
			Bi[j] = Xi[j]
		}
	}

	// A = Ar + i*Ai
	if Ar.Kind() == cla.Distributed && Ai.Kind() == cla.Distributed {
		A = cla.NewDistHandle(cla.NewComplexDistMatrix(Ar.Dist(), Ai.Dist(),
			Ar.Owns(), Ai.Owns(), o.conv))
	} else {
		A = cla.NewGenericHandle(cla.NewComplexOperator(Ar.Op(), Ai.Op(),
			Ar.Owns(), Ai.Owns(), o.conv))
	}
	return
}

// RecoverFEMSolution expands the reduced solution X back to the full 2N
// vector x, applying the prolongation (or a copy) to each half
func (o *ParSesquilinearForm) RecoverFEMSolution(X, x la.Vector) {
	sp := o.pblfr.Space()
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
	xr.Fill(0)
	xi.Fill(0)
	P.MulVecAdd(xr, 1, Xr)
	P.MulVecAdd(xi, 1, Xi)
}

// Update re-binds both real forms to a (possibly resized) space
func (o *ParSesquilinearForm) Update(sp *fes.Space) {
	o.pblfr.Update(sp)
	o.pblfi.Update(sp)
}
