// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cofem solves a 1D damped Helmholtz problem
//
//	-u'' - kappa²u - i·sigma·u = f    in (0,1),   u(0) = u(1) = 0
//
// assembling the complex system with a sesquilinear form, solving the
// equivalent real block system directly, and recovering the full complex
// solution. With -plot=1 the real and imaginary parts are written to a
// PNG file.
package main

import (
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cofemlab/cofem/cfem"
	"github.com/cofemlab/cofem/cla"
	"github.com/cofemlab/cofem/fes"
	"github.com/cofemlab/cofem/form"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
		if mpi.IsOn() {
			mpi.Stop()
		}
	}()

	// read input parameters
	ncells := io.ArgToInt(0, 32)
	kappa := io.ArgToFloat(1, 8.0)
	sigma := io.ArgToFloat(2, 4.0)
	blockSym := io.ArgToBool(3, false)
	doplot := io.ArgToBool(4, false)
	verbose := true
	if mpi.IsOn() {
		verbose = mpi.WorldRank() == 0
	}

	// message
	if verbose {
		io.PfWhite("\nCofem -- complex-valued FEM assembly\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"number of cells", "ncells", ncells,
			"wave number", "kappa", kappa,
			"damping coefficient", "sigma", sigma,
			"use block-symmetric convention", "blockSym", blockSym,
			"plot solution", "doplot", doplot,
		))
	}

	// convention
	conv := cla.Hermitian
	if blockSym {
		conv = cla.BlockSymmetric
	}

	// space and essential boundary conditions
	sp := fes.NewSpace1D(0, 1, ncells)
	ess := sp.EssentialDofs(true, true)

	// sesquilinear form:  (u',v') - kappa²(u,v) - i·sigma·(u,v)
	sq := cfem.NewSesquilinearForm(sp, conv)
	sq.AddDomainIntegrator(&form.DiffusionIntegrator{K: fes.ConstCoeff{C: 1}}, nil)
	sq.AddDomainIntegrator(&form.MassIntegrator{Q: fes.ConstCoeff{C: -kappa * kappa}}, nil)
	sq.AddDomainIntegrator(nil, &form.MassIntegrator{Q: fes.ConstCoeff{C: -sigma}})
	err := sq.Assemble()
	if err != nil {
		chk.Panic("assembly of sesquilinear form failed:\n%v", err)
	}

	// load:  f = 1 (purely real)
	lf := cfem.NewComplexLinearForm(sp, conv)
	lf.AddDomainIntegrator(&form.SourceIntegrator{Q: fes.ConstCoeff{C: 1}}, nil)
	err = lf.Assemble()
	if err != nil {
		chk.Panic("assembly of load vector failed:\n%v", err)
	}

	// solution with homogeneous Dirichlet values
	u := cfem.NewComplexGridFunction(sp)

	// reduced complex system
	A, X, B, err := sq.FormLinearSystem(ess, u.Data(), lf.Data(), true)
	if err != nil {
		chk.Panic("FormLinearSystem failed:\n%v", err)
	}

	// direct solve of the equivalent real block system
	csp := A.Op().(*cla.ComplexSparseMatrix)
	la.DenSolve(X, csp.RealBlocks(), B, false)

	// recover full solution
	sq.RecoverFEMSolution(X, u.Data())

	// residual check
	res := la.NewVector(len(B))
	csp.Mult(X, res)
	var rnorm float64
	for i := range res {
		rnorm += (res[i] - B[i]) * (res[i] - B[i])
	}
	rnorm = math.Sqrt(rnorm)
	if verbose {
		io.Pf("residual norm   = %23.15e\n", rnorm)
		io.Pf("solution norm   = %23.15e\n", u.Norm2())
		io.Pf("form evaluation = %v\n", lf.Eval(u))
	}

	// plot
	if doplot && verbose {
		err = plotSolution(sp, u, "/tmp/cofem", "helmholtz1d.png")
		if err != nil {
			chk.Panic("plotting failed:\n%v", err)
		}
	}
}

// plotSolution writes the real and imaginary nodal values to a PNG file
func plotSolution(sp *fes.Space, u *cfem.ComplexGridFunction, dir, fname string) (err error) {
	n := sp.NumDofs()
	re := make(plotter.XYs, n)
	im := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		re[i].X, re[i].Y = sp.Coord(i), u.Real().Data()[i]
		im[i].X, im[i].Y = sp.Coord(i), u.Imag().Data()[i]
	}
	p := plot.New()
	p.Title.Text = "damped Helmholtz"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "u"
	lre, err := plotter.NewLine(re)
	if err != nil {
		return
	}
	lim, err := plotter.NewLine(im)
	if err != nil {
		return
	}
	lim.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(lre, lim)
	p.Legend.Add("real", lre)
	p.Legend.Add("imag", lim)
	err = os.MkdirAll(dir, 0777)
	if err != nil {
		return
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filepath.Join(dir, fname))
}
