// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fes

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_space01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("space01. dimensions, cells and essential dofs")

	sp := NewSpace1D(0, 1, 4)
	chk.Int(tst, "ndofs", sp.NumDofs(), 5)
	chk.Int(tst, "ntrue", sp.NumTrueDofs(), 5)
	chk.Int(tst, "ncells", sp.NumCells(), 4)
	chk.Ints(tst, "cells", sp.Cells(), utl.IntRange(4))
	chk.Float64(tst, "h", 1e-15, sp.CellSize(2), 0.25)
	chk.Float64(tst, "x2", 1e-15, sp.Coord(2), 0.5)

	chk.Ints(tst, "ess both", sp.EssentialDofs(true, true), []int{0, 4})
	chk.Ints(tst, "ess left", sp.EssentialDofs(true, false), []int{0})

	if sp.Prolongation() != nil {
		tst.Errorf("conforming space must have identity prolongation")
	}
}

func Test_space02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("space02. periodic constraints")

	sp := NewPeriodicSpace1D(0, 1, 4)
	chk.Int(tst, "ndofs", sp.NumDofs(), 5)
	chk.Int(tst, "ntrue", sp.NumTrueDofs(), 4)

	P := sp.Prolongation()
	m, n := P.Dims()
	chk.Int(tst, "rows(P)", m, 5)
	chk.Int(tst, "cols(P)", n, 4)

	// distributing true values duplicates the first dof onto the last
	gf := NewGridFunction(sp, nil)
	gf.Distribute([]float64{1, 2, 3, 4})
	chk.Array(tst, "distributed", 1e-17, gf.Data(), []float64{1, 2, 3, 4, 1})
}

func Test_space03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("space03. refinement and update operator")

	sp := NewSpace1D(0, 1, 2)
	gf := NewGridFunction(sp, nil)

	// P1 interpolation reproduces linear fields exactly
	gf.ProjectCoefficient(FuncCoeff{F: func(x float64) float64 { return 2*x + 1 }})
	chk.Array(tst, "coarse", 1e-15, gf.Data(), []float64{1, 2, 3})

	sp.Refine()
	if sp.UpdateOp() == nil {
		tst.Errorf("refinement must install an update operator")
	}
	gf.Update()
	chk.Array(tst, "refined", 1e-15, gf.Data(), []float64{1, 1.5, 2, 2.5, 3})

	// update without a space change is a no-op
	gf.Data()[1] = -7
	gf.Update()
	chk.Array(tst, "idempotent", 1e-17, gf.Data(), []float64{1, -7, 2, 2.5, 3})
}
