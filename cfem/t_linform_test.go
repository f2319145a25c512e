// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfem

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cofemlab/cofem/cla"
	"github.com/cofemlab/cofem/fes"
	"github.com/cofemlab/cofem/form"
)

func Test_clinform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clinform01. assembly and convention scaling")

	sp := fes.NewSpace1D(0, 1, 2)

	lf := NewComplexLinearForm(sp, cla.Hermitian)
	lf.AddDomainIntegrator(
		&form.SourceIntegrator{Q: fes.ConstCoeff{C: 1}},
		&form.SourceIntegrator{Q: fes.ConstCoeff{C: 2}},
	)
	err := lf.Assemble()
	if err != nil {
		tst.Errorf("assembly failed: %v", err)
		return
	}
	chk.Array(tst, "real half", 1e-15, lf.RealForm().Vector(), []float64{0.25, 0.5, 0.25})
	chk.Array(tst, "imag half", 1e-15, lf.ImagForm().Vector(), []float64{0.5, 1, 0.5})

	// block-symmetric assembly negates the imaginary half in place
	lfb := NewComplexLinearForm(sp, cla.BlockSymmetric)
	lfb.AddDomainIntegrator(
		&form.SourceIntegrator{Q: fes.ConstCoeff{C: 1}},
		&form.SourceIntegrator{Q: fes.ConstCoeff{C: 2}},
	)
	err = lfb.Assemble()
	if err != nil {
		tst.Errorf("assembly failed: %v", err)
		return
	}
	chk.Array(tst, "real half", 1e-15, lfb.RealForm().Vector(), []float64{0.25, 0.5, 0.25})
	chk.Array(tst, "imag half", 1e-15, lfb.ImagForm().Vector(), []float64{-0.5, -1, -0.5})
}

func Test_clinform02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clinform02. evaluation is convention independent")

	sp := fes.NewSpace1D(0, 1, 2)
	u := NewComplexGridFunction(sp)
	copy(u.Data(), []float64{1, 2, 3, 4, 5, 6})

	build := func(conv cla.Convention) *ComplexLinearForm {
		lf := NewComplexLinearForm(sp, conv)
		lf.AddDomainIntegrator(
			&form.SourceIntegrator{Q: fes.ConstCoeff{C: 1}},
			&form.SourceIntegrator{Q: fes.ConstCoeff{C: 2}},
		)
		if err := lf.Assemble(); err != nil {
			tst.Errorf("assembly failed: %v", err)
		}
		return lf
	}

	lfh := build(cla.Hermitian)
	lfb := build(cla.BlockSymmetric)

	// reference: bilinear action of (fr + i*fi) on (ur + i*ui)
	fr := []float64{0.25, 0.5, 0.25}
	fi := []float64{0.5, 1, 0.5}
	var ref complex128
	for k := 0; k < 3; k++ {
		ref += complex(fr[k], fi[k]) * complex(u.Data()[k], u.Data()[3+k])
	}

	chk.Complex128(tst, "hermitian", 1e-14, lfh.Eval(u), ref)
	chk.Complex128(tst, "block-symmetric", 1e-14, lfb.Eval(u), ref)
}

func Test_clinform03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("clinform03. purely real load and update")

	sp := fes.NewSpace1D(0, 1, 2)
	lf := NewComplexLinearForm(sp, cla.Hermitian)
	lf.AddDomainIntegrator(&form.SourceIntegrator{Q: fes.ConstCoeff{C: 1}}, nil)
	lf.AddBdrIntegrator(nil, &form.BdrPointIntegrator{Side: 0, Val: 2})
	err := lf.Assemble()
	if err != nil {
		tst.Errorf("assembly failed: %v", err)
		return
	}
	chk.Array(tst, "data", 1e-15, lf.Data(), []float64{0.25, 0.5, 0.25, 2, 0, 0})

	// update resizes the buffer and re-points both halves
	sp.Refine()
	lf.Update(sp)
	chk.Int(tst, "len(data)", len(lf.Data()), 10)
	err = lf.Assemble()
	if err != nil {
		tst.Errorf("assembly failed: %v", err)
		return
	}
	chk.Array(tst, "real half", 1e-15, lf.RealForm().Vector(), []float64{0.125, 0.25, 0.25, 0.25, 0.125})
	chk.Array(tst, "imag half", 1e-15, lf.ImagForm().Vector(), []float64{2, 0, 0, 0, 0})
}
