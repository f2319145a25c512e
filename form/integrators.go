// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package form implements real-valued linear and bilinear finite-element
// forms over a fes.Space: integrator interfaces in the element-assembly
// idiom (contributions Put into a shared triplet / load vector), plus the
// FormLinearSystem machinery with essential-boundary elimination that the
// complex layer (cfem) drives four times per system.
package form

import (
	"github.com/cofemlab/cofem/fes"
	"github.com/cofemlab/cofem/spm"
)

// LinIntegrator adds element contributions to a global load vector
type LinIntegrator interface {
	AddToFb(fb []float64, sp *fes.Space) (err error)
}

// BilinIntegrator adds element matrices to a global triplet matrix
type BilinIntegrator interface {
	AddToKb(Kb *spm.Matrix, sp *fes.Space) (err error)
}

// SourceIntegrator assembles the domain load  ∫ q v dx  with a trapezoid
// rule over P1 cells
type SourceIntegrator struct {
	Q fes.Coefficient
}

// AddToFb adds the source contributions of this processor's cells
func (o *SourceIntegrator) AddToFb(fb []float64, sp *fes.Space) (err error) {
	for _, e := range sp.Cells() {
		n0, n1 := sp.CellNodes(e)
		h := sp.CellSize(e)
		fb[n0] += h / 2.0 * o.Q.Eval(sp.Coord(n0))
		fb[n1] += h / 2.0 * o.Q.Eval(sp.Coord(n1))
	}
	return
}

// BdrPointIntegrator assembles a point load at a boundary vertex.
// Side 0 is the left end of the domain and side 1 the right end.
type BdrPointIntegrator struct {
	Side int
	Val  float64
}

// AddToFb adds the point load. In distributed runs only the processor
// owning the boundary vertex contributes, so the all-reduced assembly
// carries the load exactly once.
func (o *BdrPointIntegrator) AddToFb(fb []float64, sp *fes.Space) (err error) {
	dof := 0
	if o.Side == 1 {
		dof = sp.NumDofs() - 1
	}
	lo, hi := sp.OwnedRange()
	if dof >= lo && dof < hi {
		fb[dof] += o.Val
	}
	return
}

// MassIntegrator assembles  ∫ q u v dx  with the consistent P1 element
// mass matrix  q h/6 [2 1; 1 2], evaluating q at cell centres
type MassIntegrator struct {
	Q fes.Coefficient
}

// AddToKb adds the mass contributions of this processor's cells
func (o *MassIntegrator) AddToKb(Kb *spm.Matrix, sp *fes.Space) (err error) {
	for _, e := range sp.Cells() {
		n0, n1 := sp.CellNodes(e)
		h := sp.CellSize(e)
		q := o.Q.Eval(sp.CellCenter(e))
		Kb.Put(n0, n0, q*h/3.0)
		Kb.Put(n1, n1, q*h/3.0)
		Kb.Put(n0, n1, q*h/6.0)
		Kb.Put(n1, n0, q*h/6.0)
	}
	return
}

// DiffusionIntegrator assembles  ∫ k u' v' dx  with the P1 element
// stiffness matrix  k/h [1 -1; -1 1], evaluating k at cell centres
type DiffusionIntegrator struct {
	K fes.Coefficient
}

// AddToKb adds the diffusion contributions of this processor's cells
func (o *DiffusionIntegrator) AddToKb(Kb *spm.Matrix, sp *fes.Space) (err error) {
	for _, e := range sp.Cells() {
		n0, n1 := sp.CellNodes(e)
		h := sp.CellSize(e)
		k := o.K.Eval(sp.CellCenter(e))
		Kb.Put(n0, n0, k/h)
		Kb.Put(n1, n1, k/h)
		Kb.Put(n0, n1, -k/h)
		Kb.Put(n1, n0, -k/h)
	}
	return
}
