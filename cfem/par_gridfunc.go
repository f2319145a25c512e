// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfem

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/cofemlab/cofem/dla"
	"github.com/cofemlab/cofem/fes"
)

// ParComplexGridFunction is the distributed counterpart of
// ComplexGridFunction: the same owned 2N buffer and real views, plus
// distribution from and projection to true-dof vectors
type ParComplexGridFunction struct {
	ComplexGridFunction
}

// NewParComplexGridFunction returns a complex grid function on the
// partitioned space sp
func NewParComplexGridFunction(sp *fes.Space) (o *ParComplexGridFunction) {
	o = new(ParComplexGridFunction)
	n := sp.NumDofs()
	o.data = la.NewVector(2 * n)
	o.gfr = fes.NewGridFunction(sp, o.data[:n])
	o.gfi = fes.NewGridFunction(sp, o.data[n:])
	return
}

// Distribute fills both halves from a paired true-dof vector
func (o *ParComplexGridFunction) Distribute(tv la.Vector) {
	sp := o.gfr.Space()
	size := sp.NumTrueDofs()
	checkPairSize(tv, size, "tv")
	o.gfr.Distribute(tv[:size])
	o.gfi.Distribute(tv[size:])
}

// TrueDofs extracts the paired true-dof values of this function into tv,
// the inverse of Distribute for conforming values
func (o *ParComplexGridFunction) TrueDofs(tv la.Vector) {
	sp := o.gfr.Space()
	size := sp.NumTrueDofs()
	checkPairSize(tv, size, "tv")
	if R := sp.Restriction(); R != nil {
		tv.Fill(0)
		R.MulVecAdd(tv[:size], 1, o.gfr.Data())
		R.MulVecAdd(tv[size:], 1, o.gfi.Data())
		return
	}
	copy(tv[:size], o.gfr.Data())
	copy(tv[size:], o.gfi.Data())
}

// GlobalNorm2 returns the global Euclidean norm of the complex nodal
// values, reducing partial sums across ranks
func (o *ParComplexGridFunction) GlobalNorm2() float64 {
	sp := o.gfr.Space()
	lo, hi := sp.OwnedRange()
	nr := dla.Norm2(sp.Comm(), lo, hi, o.gfr.Data())
	ni := dla.Norm2(sp.Comm(), lo, hi, o.gfi.Data())
	return math.Sqrt(nr*nr + ni*ni)
}
