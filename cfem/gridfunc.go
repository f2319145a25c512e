// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cfem implements complex-valued finite-element assembly on top
// of pairs of real forms: complex grid functions and linear forms, and
// the sesquilinear form that combines four real partial assemblies into
// one reduced complex linear system with consistent essential-boundary
// elimination across the real and imaginary blocks.
//
// Complex degree-of-freedom vectors are real buffers of size 2N whose
// first half is the real part and whose second half is the imaginary
// part. The split point is always exactly N; the buffer is owned by the
// complex wrapper and the two real halves are non-owning views that must
// only be resized through the owner's Update path.
package cfem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cofemlab/cofem/fes"
)

// ComplexGridFunction holds a complex nodal field as an owned 2N buffer
// viewed by two real grid functions
type ComplexGridFunction struct {
	data la.Vector // [2N] real half then imaginary half
	gfr  *fes.GridFunction
	gfi  *fes.GridFunction
}

// NewComplexGridFunction returns a complex grid function on sp
func NewComplexGridFunction(sp *fes.Space) (o *ComplexGridFunction) {
	o = new(ComplexGridFunction)
	n := sp.NumDofs()
	o.data = la.NewVector(2 * n)
	o.gfr = fes.NewGridFunction(sp, o.data[:n])
	o.gfi = fes.NewGridFunction(sp, o.data[n:])
	return
}

// Real returns the real-part view
func (o *ComplexGridFunction) Real() *fes.GridFunction { return o.gfr }

// Imag returns the imaginary-part view
func (o *ComplexGridFunction) Imag() *fes.GridFunction { return o.gfi }

// Data returns the owned 2N buffer
func (o *ComplexGridFunction) Data() la.Vector { return o.data }

// ProjectCoefficient interpolates the two coefficients into the halves
func (o *ComplexGridFunction) ProjectCoefficient(re, im fes.Coefficient) {
	o.gfr.ProjectCoefficient(re)
	o.gfi.ProjectCoefficient(im)
}

// Update relocates both halves after the space changed. If the space has
// an update operator, each real half first updates independently (which
// allocates separate arrays holding the interpolated values), and the
// results are then copied into a freshly sized 2N buffer before the
// views are re-pointed at its halves; the intermediate arrays exist
// because the two halves cannot be resized in place while still holding
// the old data. Without an update operator the old values are not
// preserved: the buffer is resized directly, the views re-pointed, and
// each half only re-synchronises its sequence marker.
func (o *ComplexGridFunction) Update() {
	sp := o.gfr.Space()
	n := sp.NumDofs()

	if T := sp.UpdateOp(); T != nil {
		o.gfr.Update()
		o.gfi.Update()

		o.data = la.NewVector(2 * n)
		copy(o.data[:n], o.gfr.Data())
		copy(o.data[n:], o.gfi.Data())

		o.gfr.BindData(o.data[:n])
		o.gfi.BindData(o.data[n:])
		return
	}

	if len(o.data) != 2*n {
		o.data = la.NewVector(2 * n)
	}
	o.gfr.BindData(o.data[:n])
	o.gfi.BindData(o.data[n:])
	o.gfr.Update()
	o.gfi.Update()
}

// Norm2 returns the Euclidean norm of the complex nodal values
func (o *ComplexGridFunction) Norm2() (res float64) {
	for _, v := range o.data {
		res += v * v
	}
	return math.Sqrt(res)
}

// checkPairSize panics unless v has exactly twice the given half size
func checkPairSize(v la.Vector, half int, name string) {
	if len(v) != 2*half {
		chk.Panic("input vector %q of incorrect size. %d != 2 x %d", name, len(v), half)
	}
}
