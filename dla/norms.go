// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dla

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"
)

// Norm2 returns the global Euclidean norm of a distributed vector whose
// owned range on this rank is [lo,hi). The partial sums of squares are
// added across ranks with an all-reduce. A nil communicator reduces to
// the plain serial norm of v[lo:hi].
func Norm2(comm *mpi.Communicator, lo, hi int, v la.Vector) float64 {
	loc := la.NewVector(1)
	for i := lo; i < hi; i++ {
		loc[0] += v[i] * v[i]
	}
	if comm == nil {
		return math.Sqrt(loc[0])
	}
	glob := la.NewVector(1)
	comm.AllReduceSum(glob, loc)
	return math.Sqrt(glob[0])
}

// NormMax returns the global maximum absolute entry of a distributed
// vector whose owned range on this rank is [lo,hi)
func NormMax(comm *mpi.Communicator, lo, hi int, v la.Vector) float64 {
	loc := la.NewVector(1)
	for i := lo; i < hi; i++ {
		if a := math.Abs(v[i]); a > loc[0] {
			loc[0] = a
		}
	}
	if comm == nil {
		return loc[0]
	}
	glob := la.NewVector(1)
	comm.AllReduceMax(glob, loc)
	return glob[0]
}

// DoubleOffsets doubles dof ownership ranges, producing the layout of a
// complex (paired real/imaginary) vector distributed like the original
func DoubleOffsets(offsets []int) (res []int) {
	res = make([]int, len(offsets))
	for i, v := range offsets {
		res[i] = 2 * v
	}
	return
}
