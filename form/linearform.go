// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package form

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cofemlab/cofem/fes"
)

// LinearForm assembles a real load vector over a fes.Space. Its storage
// may be a non-owning view into a larger buffer (see
// cfem.ComplexLinearForm); the owner of such a buffer must rebind the
// storage through Update after every resize.
type LinearForm struct {
	sp     *fes.Space
	fb     la.Vector
	domain []LinIntegrator
	bdr    []LinIntegrator
}

// NewLinearForm returns a linear form bound to sp. storage may be nil,
// in which case the form owns a freshly allocated vector; otherwise it
// must have length sp.NumDofs().
func NewLinearForm(sp *fes.Space, storage la.Vector) (o *LinearForm) {
	o = new(LinearForm)
	o.sp = sp
	if storage == nil {
		storage = la.NewVector(sp.NumDofs())
	}
	if len(storage) != sp.NumDofs() {
		chk.Panic("linear form storage has incorrect size. %d != %d", len(storage), sp.NumDofs())
	}
	o.fb = storage
	return
}

// Space returns the finite-element space
func (o *LinearForm) Space() *fes.Space { return o.sp }

// Vector returns the assembled load vector
func (o *LinearForm) Vector() la.Vector { return o.fb }

// AddDomainIntegrator appends a domain integrator; ownership transfers to
// this form
func (o *LinearForm) AddDomainIntegrator(itg LinIntegrator) {
	o.domain = append(o.domain, itg)
}

// AddBdrIntegrator appends a boundary integrator
func (o *LinearForm) AddBdrIntegrator(itg LinIntegrator) {
	o.bdr = append(o.bdr, itg)
}

// Assemble zeroes the storage and accumulates all integrators. In
// distributed runs only this processor's cells contribute; see
// ParallelAssemble for the globally consistent vector.
func (o *LinearForm) Assemble() (err error) {
	o.fb.Fill(0)
	for _, itg := range o.domain {
		if err = itg.AddToFb(o.fb, o.sp); err != nil {
			return
		}
	}
	for _, itg := range o.bdr {
		if err = itg.AddToFb(o.fb, o.sp); err != nil {
			return
		}
	}
	return
}

// Dot returns the action of this form on nodal values v
func (o *LinearForm) Dot(v la.Vector) (res float64) {
	if len(v) != len(o.fb) {
		chk.Panic("form of size %d cannot act on vector of size %d", len(o.fb), len(v))
	}
	for i, f := range o.fb {
		res += f * v[i]
	}
	return
}

// Update re-binds this form to a (possibly resized) space and to new
// storage of matching size. Assembled values are not preserved.
func (o *LinearForm) Update(sp *fes.Space, storage la.Vector) {
	if len(storage) != sp.NumDofs() {
		chk.Panic("linear form storage has incorrect size. %d != %d", len(storage), sp.NumDofs())
	}
	o.sp = sp
	o.fb = storage
}

// ParallelAssemble reduces this processor's contributions into the
// globally consistent true-dof vector tv (full length, replicated)
func (o *LinearForm) ParallelAssemble(tv la.Vector) {
	if len(tv) != o.sp.NumDofs() {
		chk.Panic("true-dof vector has incorrect size. %d != %d", len(tv), o.sp.NumDofs())
	}
	comm := o.sp.Comm()
	if comm == nil {
		copy(tv, o.fb)
		return
	}
	comm.AllReduceSum(tv, o.fb)
}
