// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cofemlab/cofem/cla"
	"github.com/cofemlab/cofem/fes"
	"github.com/cofemlab/cofem/form"
)

// newTestSesqui returns  a(u,v) = (u',v') + i*(u,v)  on a 2-cell mesh
func newTestSesqui(tst *testing.T, sp *fes.Space, conv cla.Convention) *SesquilinearForm {
	o := NewSesquilinearForm(sp, conv)
	o.AddDomainIntegrator(
		&form.DiffusionIntegrator{K: fes.ConstCoeff{C: 1}},
		&form.MassIntegrator{Q: fes.ConstCoeff{C: 1}},
	)
	if err := o.Assemble(); err != nil {
		tst.Errorf("assembly failed: %v", err)
	}
	return o
}

func Test_sesqui01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sesqui01. round trip without constraints")

	sp := fes.NewSpace1D(0, 1, 2)
	for _, conv := range []cla.Convention{cla.Hermitian, cla.BlockSymmetric} {

		sq := newTestSesqui(tst, sp, conv)
		x := la.Vector{1, -2, 3, 4, 5, -6}
		b := la.Vector{7, 8, 9, -1, 2, -3}
		bOrig := b.GetCopy()

		A, X, B, err := sq.FormLinearSystem(nil, x, b, true)
		if err != nil {
			tst.Errorf("FormLinearSystem failed: %v", err)
			return
		}

		// with no eliminated dofs and identity prolongation the vectors
		// pass through bit for bit, and b is restored
		chk.Array(tst, "X == x", 0, X, x)
		chk.Array(tst, "B == b", 0, B, bOrig)
		chk.Array(tst, "b unchanged", 0, b, bOrig)
		if A.Kind() != cla.Generic {
			tst.Errorf("serial system must be generic. kind=%v", A.Kind())
		}
		if A.Op().Conv() != conv {
			tst.Errorf("operator lost its convention")
		}

		// recovery copies back
		xr := la.NewVector(6)
		sq.RecoverFEMSolution(X, xr)
		chk.Array(tst, "recovered", 0, xr, x)
	}
}

func Test_sesqui02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sesqui02. elimination couples the blocks")

	sp := fes.NewSpace1D(0, 1, 2)
	ess := []int{0, 2}
	x := la.Vector{10, 5, 20, 1, 2, 3}
	b := la.NewVector(6)

	sq := newTestSesqui(tst, sp, cla.Hermitian)
	A, X, B, err := sq.FormLinearSystem(ess, x, b, true)
	if err != nil {
		tst.Errorf("FormLinearSystem failed: %v", err)
		return
	}
	chk.Array(tst, "X", 1e-15, X, x)

	// interior rows carry the boundary lifting of both blocks; boundary
	// rows keep the unit diagonal of BOTH blocks, so the real half reads
	// Xr[j] - Xi[j] and the imaginary half Xi[j] + Xr[j]
	chk.Array(tst, "Br", 1e-13, B[:3], []float64{9, 60 + 1.0/3.0, 17})
	chk.Array(tst, "Bi", 1e-13, B[3:], []float64{11, 5.5, 23})

	// eliminated blocks: unit diagonals on both, interior untouched
	csp := A.Op().(*cla.ComplexSparseMatrix)
	chk.Array(tst, "Ar", 1e-14, csp.RealPart().ToDense().Data, la.NewMatrixDeep2([][]float64{
		{1, 0, 0},
		{0, 4, 0},
		{0, 0, 1},
	}).Data)
	chk.Array(tst, "Ai", 1e-14, csp.ImagPart().ToDense().Data, la.NewMatrixDeep2([][]float64{
		{1, 0, 0},
		{0, 1.0 / 3.0, 0},
		{0, 0, 1},
	}).Data)

	// block-symmetric: same real half, negated imaginary half
	sqb := newTestSesqui(tst, sp, cla.BlockSymmetric)
	_, _, Bb, err := sqb.FormLinearSystem(ess, x, b, true)
	if err != nil {
		tst.Errorf("FormLinearSystem failed: %v", err)
		return
	}
	chk.Array(tst, "Br block-symmetric", 1e-13, Bb[:3], B[:3])
	chk.Array(tst, "Bi block-symmetric", 1e-13, Bb[3:], []float64{-11, -5.5, -23})
	chk.Array(tst, "b unchanged", 1e-17, b, la.NewVector(6))
}

func Test_sesqui03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sesqui03. boundary lifting only (no interior copy)")

	sp := fes.NewSpace1D(0, 1, 2)
	ess := []int{0, 2}
	x := la.Vector{10, 5, 20, 1, 2, 3}
	b := la.NewVector(6)

	sq := newTestSesqui(tst, sp, cla.Hermitian)
	_, X, B, err := sq.FormLinearSystem(ess, x, b, false)
	if err != nil {
		tst.Errorf("FormLinearSystem failed: %v", err)
		return
	}

	// interiors of both halves of X are zeroed; the right-hand side is
	// identical to the full-copy call because the cross corrections only
	// ever see boundary values
	chk.Array(tst, "X", 1e-15, X, []float64{10, 0, 20, 1, 0, 3})
	chk.Array(tst, "Br", 1e-13, B[:3], []float64{9, 60 + 1.0/3.0, 17})
	chk.Array(tst, "Bi", 1e-13, B[3:], []float64{11, 5.5, 23})

	// repeated calls reuse the eliminated blocks and only redo the
	// right-hand-side correction
	_, _, B2, err := sq.FormLinearSystem(ess, x, b, false)
	if err != nil {
		tst.Errorf("FormLinearSystem failed: %v", err)
		return
	}
	chk.Array(tst, "B repeat", 0, B2, B)
}

func Test_sesqui04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sesqui04. periodic reduction and recovery")

	sp := fes.NewPeriodicSpace1D(0, 1, 2)
	sq := newTestSesqui(tst, sp, cla.Hermitian)

	x := la.Vector{1, 2, 1, 3, 4, 3}
	b := la.NewVector(6)
	_, X, _, err := sq.FormLinearSystem(nil, x, b, true)
	if err != nil {
		tst.Errorf("FormLinearSystem failed: %v", err)
		return
	}

	// each half restricts to the 2 true dofs
	chk.Int(tst, "len(X)", len(X), 4)
	chk.Array(tst, "X", 1e-15, X, []float64{1, 2, 3, 4})

	// recovery duplicates the representatives onto the constrained nodes
	xr := la.NewVector(6)
	sq.RecoverFEMSolution(X, xr)
	chk.Array(tst, "recovered", 1e-15, xr, []float64{1, 2, 1, 3, 4, 3})
}

func Test_sesqui05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sesqui05. mismatched vector sizes panic")

	defer chk.RecoverTstPanicIsOK(tst)

	sp := fes.NewSpace1D(0, 1, 2)
	sq := newTestSesqui(tst, sp, cla.Hermitian)
	sq.FormLinearSystem(nil, la.NewVector(4), la.NewVector(6), true)
}

func Test_sesqui06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sesqui06. raw complex pairing and update")

	sp := fes.NewSpace1D(0, 1, 2)
	sq := newTestSesqui(tst, sp, cla.Hermitian)

	// raw pairing exposes the un-eliminated blocks
	csp := sq.AssembleComplexSparseMatrix()
	chk.Array(tst, "raw Ar", 1e-14, csp.RealPart().ToDense().Data, la.NewMatrixDeep2([][]float64{
		{2, -2, 0},
		{-2, 4, -2},
		{0, -2, 2},
	}).Data)

	// update re-binds to the refined space; re-assembly sizes follow
	sp.Refine()
	sq.Update(sp)
	if err := sq.Assemble(); err != nil {
		tst.Errorf("assembly failed: %v", err)
		return
	}
	m, n := sq.RealForm().Triplet().Dims()
	chk.Int(tst, "rows", m, 5)
	chk.Int(tst, "cols", n, 5)
}
