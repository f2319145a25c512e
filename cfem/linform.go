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

// ComplexLinearForm holds a complex load vector as an owned 2N buffer
// filled by two independently-owned real linear forms. The convention is
// fixed at construction and threaded through assembly and evaluation.
type ComplexLinearForm struct {
	conv cla.Convention
	data la.Vector // [2N] real half then imaginary half
	lfr  *form.LinearForm
	lfi  *form.LinearForm
}

// NewComplexLinearForm returns a complex linear form on sp
func NewComplexLinearForm(sp *fes.Space, conv cla.Convention) (o *ComplexLinearForm) {
	o = new(ComplexLinearForm)
	o.conv = conv
	n := sp.NumDofs()
	o.data = la.NewVector(2 * n)
	o.lfr = form.NewLinearForm(sp, o.data[:n])
	o.lfi = form.NewLinearForm(sp, o.data[n:])
	return
}

// Conv returns the sign convention
func (o *ComplexLinearForm) Conv() cla.Convention { return o.conv }

// Data returns the owned 2N buffer
func (o *ComplexLinearForm) Data() la.Vector { return o.data }

// RealForm returns the real-part form
func (o *ComplexLinearForm) RealForm() *form.LinearForm { return o.lfr }

// ImagForm returns the imaginary-part form
func (o *ComplexLinearForm) ImagForm() *form.LinearForm { return o.lfi }

// AddDomainIntegrator adds integrators to the two halves; a nil
// integrator is a no-op for that half only, so purely real or purely
// imaginary loads are expressed through the same call
func (o *ComplexLinearForm) AddDomainIntegrator(re, im form.LinIntegrator) {
	if re != nil {
		o.lfr.AddDomainIntegrator(re)
	}
	if im != nil {
		o.lfi.AddDomainIntegrator(im)
	}
}

// AddBdrIntegrator adds boundary integrators to the two halves; nil
// halves are no-ops
func (o *ComplexLinearForm) AddBdrIntegrator(re, im form.LinIntegrator) {
	if re != nil {
		o.lfr.AddBdrIntegrator(re)
	}
	if im != nil {
		o.lfi.AddBdrIntegrator(im)
	}
}

// Assemble assembles the real-part form and then the imaginary-part
// form, filling the two halves of the buffer. With the BlockSymmetric
// convention the entire imaginary half is negated in place afterwards.
func (o *ComplexLinearForm) Assemble() (err error) {
	if err = o.lfr.Assemble(); err != nil {
		return
	}
	if err = o.lfi.Assemble(); err != nil {
		return
	}
	if o.conv == cla.BlockSymmetric {
		n := len(o.data) / 2
		for i := n; i < len(o.data); i++ {
			o.data[i] = -o.data[i]
		}
	}
	return
}

// Eval returns the complex action of this form on gf. With s = +1 for
// Hermitian and s = -1 for BlockSymmetric:
//
//	real(res) = lfr(gf.real) - s*lfi(gf.imag)
//	imag(res) = lfr(gf.imag) + s*lfi(gf.real)
func (o *ComplexLinearForm) Eval(gf *ComplexGridFunction) complex128 {
	s := o.conv.Sign()
	re := o.lfr.Dot(gf.Real().Data()) - s*o.lfi.Dot(gf.Imag().Data())
	im := o.lfr.Dot(gf.Imag().Data()) + s*o.lfi.Dot(gf.Real().Data())
	return complex(re, im)
}

// Update re-binds both real forms to a (possibly resized) space,
// resizing the 2N buffer and re-pointing each form's storage at the
// correct half. Assembled values are not preserved.
func (o *ComplexLinearForm) Update(sp *fes.Space) {
	n := sp.NumDofs()
	if len(o.data) != 2*n {
		o.data = la.NewVector(2 * n)
	}
	o.lfr.Update(sp, o.data[:n])
	o.lfi.Update(sp, o.data[n:])
}
