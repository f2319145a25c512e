// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fes

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// GridFunction holds nodal values of a P1 field. Its storage may be a
// non-owning view into a larger buffer (see cfem.ComplexGridFunction);
// in that case the view must only be resized through the owner, which
// calls BindData after every reallocation.
type GridFunction struct {
	sp   *Space
	data la.Vector
	seq  int // space sequence this function is synchronised with
}

// NewGridFunction returns a grid function bound to sp. data may be nil,
// in which case the function owns a freshly allocated vector; otherwise
// data is used as non-owning storage and must have length sp.NumDofs().
func NewGridFunction(sp *Space, data la.Vector) (o *GridFunction) {
	o = new(GridFunction)
	o.sp = sp
	if data == nil {
		data = la.NewVector(sp.NumDofs())
	}
	if len(data) != sp.NumDofs() {
		chk.Panic("grid function storage has incorrect size. %d != %d", len(data), sp.NumDofs())
	}
	o.data = data
	o.seq = sp.Sequence()
	return
}

// Space returns the finite-element space
func (o *GridFunction) Space() *Space { return o.sp }

// Data returns the nodal values
func (o *GridFunction) Data() la.Vector { return o.data }

// BindData re-points this function's storage at v, without copying
func (o *GridFunction) BindData(v la.Vector) {
	if len(v) != o.sp.NumDofs() {
		chk.Panic("cannot bind storage of size %d to space with %d dofs", len(v), o.sp.NumDofs())
	}
	o.data = v
}

// Update synchronises this function with its space after refinement. If
// the space has an update operator, a new data array is allocated and the
// old values are interpolated into it; otherwise only the size and the
// sequence marker are synchronised and the old values are lost. Calling
// Update when the space has not changed is a no-op.
func (o *GridFunction) Update() {
	if o.seq == o.sp.Sequence() {
		return
	}
	if T := o.sp.UpdateOp(); T != nil {
		newData := la.NewVector(o.sp.NumDofs())
		T.MulVecAdd(newData, 1, o.data)
		o.data = newData
	} else if len(o.data) != o.sp.NumDofs() {
		o.data = la.NewVector(o.sp.NumDofs())
	}
	o.seq = o.sp.Sequence()
}

// ProjectCoefficient sets nodal values by interpolating c
func (o *GridFunction) ProjectCoefficient(c Coefficient) {
	for i := 0; i < o.sp.NumDofs(); i++ {
		o.data[i] = c.Eval(o.sp.Coord(i))
	}
}

// Distribute fills this function from a true-dof vector by applying the
// conforming prolongation (or a copy, if the map is the identity)
func (o *GridFunction) Distribute(tv la.Vector) {
	if P := o.sp.Prolongation(); P != nil {
		o.data.Fill(0)
		P.MulVecAdd(o.data, 1, tv)
		return
	}
	if len(tv) != len(o.data) {
		chk.Panic("true-dof vector of size %d cannot be distributed to %d dofs", len(tv), len(o.data))
	}
	copy(o.data, tv)
}

// Norm2 returns the Euclidean norm of the nodal values
func (o *GridFunction) Norm2() (res float64) {
	for _, v := range o.data {
		res += v * v
	}
	return math.Sqrt(res)
}
