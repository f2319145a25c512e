// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cfem

import (
	"github.com/cpmech/gosl/la"

	"github.com/cofemlab/cofem/cla"
	"github.com/cofemlab/cofem/dla"
	"github.com/cofemlab/cofem/fes"
	"github.com/cofemlab/cofem/form"
)

// ParComplexLinearForm is the distributed counterpart of
// ComplexLinearForm. Each rank assembles its own cells into the shared
// 2N buffer; ParallelAssemble produces the globally consistent vector.
// The dof offsets of the complex layout are the space's offsets doubled.
type ParComplexLinearForm struct {
	ComplexLinearForm
	tdofOffsets []int
}

// NewParComplexLinearForm returns a complex linear form on the
// partitioned space sp
func NewParComplexLinearForm(sp *fes.Space, conv cla.Convention) (o *ParComplexLinearForm) {
	o = new(ParComplexLinearForm)
	o.conv = conv
	n := sp.NumDofs()
	o.data = la.NewVector(2 * n)
	o.lfr = form.NewLinearForm(sp, o.data[:n])
	o.lfi = form.NewLinearForm(sp, o.data[n:])
	o.tdofOffsets = dla.DoubleOffsets(sp.TrueDofOffsets())
	return
}

// TrueDofOffsets returns the ownership ranges of the complex layout
func (o *ParComplexLinearForm) TrueDofOffsets() []int { return o.tdofOffsets }

// ParallelAssemble reduces this rank's contributions into the globally
// consistent paired vector tv
func (o *ParComplexLinearForm) ParallelAssemble(tv la.Vector) {
	size := o.lfr.Space().NumDofs()
	checkPairSize(tv, size, "tv")
	o.lfr.ParallelAssemble(tv[:size])
	o.lfi.ParallelAssemble(tv[size:])
}
