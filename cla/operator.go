// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cla implements complex linear operators represented as pairs of
// real operators/matrices, tagged with the sign convention used to
// interpret the cross terms, plus the tagged handles that the assembly
// layer uses to dispatch on the concrete representation.
package cla

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Convention selects how the real and imaginary blocks combine into the
// equivalent 2x2 real block system
//
//	Hermitian:       [ Ar  -Ai ]        BlockSymmetric:  [  Ar  -Ai ]
//	                 [ Ai   Ar ]                         [ -Ai  -Ar ]
//
// Hermitian matches complex multiplication with implicit conjugation in
// the test space; BlockSymmetric negates the second block row, yielding a
// symmetric block structure when the real blocks are symmetric.
type Convention int

const (
	// Hermitian is the sesquilinear convention
	Hermitian Convention = iota

	// BlockSymmetric negates the imaginary contribution everywhere
	BlockSymmetric
)

// Sign returns +1 for Hermitian and -1 for BlockSymmetric
func (o Convention) Sign() float64 {
	if o == BlockSymmetric {
		return -1
	}
	return 1
}

// String returns a string representation of this convention
func (o Convention) String() string {
	if o == BlockSymmetric {
		return "block-symmetric"
	}
	return "hermitian"
}

// Ownership tags whether a complex wrapper owns a real sub-operator.
// It is resolved once at construction and never changes.
type Ownership int

const (
	// External means the sub-operator belongs to someone else
	External Ownership = iota

	// Owned means the wrapper releases the sub-operator in Free
	Owned
)

// Operator is a real linear operator
type Operator interface {
	Rows() int
	Cols() int
	Mult(u, v la.Vector) // v = A * u
}

// Complex is a complex linear operator stored as a pair of real parts.
// Vectors passed to Mult hold the real half followed by the imaginary
// half, each of length Rows()/2.
type Complex interface {
	Rows() int
	Cols() int
	Conv() Convention
	Mult(u, v la.Vector)
}

// ComplexOperator pairs two opaque real operators into a complex one.
// Either part may be nil, expressing a purely real or purely imaginary
// operator through the same interface.
type ComplexOperator struct {
	conv       Convention
	opr, opi   Operator
	ownR, ownI Ownership
	n          int // block dimension
}

// NewComplexOperator returns the complex operator opr + i*opi
func NewComplexOperator(opr, opi Operator, ownR, ownI Ownership, conv Convention) (o *ComplexOperator) {
	if opr == nil && opi == nil {
		chk.Panic("a complex operator requires at least one real part")
	}
	o = new(ComplexOperator)
	o.conv = conv
	o.opr, o.opi = opr, opi
	o.ownR, o.ownI = ownR, ownI
	if opr != nil {
		o.n = opr.Rows()
	} else {
		o.n = opi.Rows()
	}
	return
}

// Rows returns the dimension of the equivalent real block system
func (o *ComplexOperator) Rows() int { return 2 * o.n }

// Cols returns the dimension of the equivalent real block system
func (o *ComplexOperator) Cols() int { return 2 * o.n }

// Conv returns the sign convention
func (o *ComplexOperator) Conv() Convention { return o.conv }

// Real returns the real part (may be nil)
func (o *ComplexOperator) Real() Operator { return o.opr }

// Imag returns the imaginary part (may be nil)
func (o *ComplexOperator) Imag() Operator { return o.opi }

// Mult computes v = A * u over paired real/imaginary halves
func (o *ComplexOperator) Mult(u, v la.Vector) {
	if len(u) != 2*o.n || len(v) != 2*o.n {
		chk.Panic("complex operator of size %d cannot multiply vectors of sizes %d and %d", 2*o.n, len(u), len(v))
	}
	ur, ui := u[:o.n], u[o.n:]
	vr, vi := v[:o.n], v[o.n:]
	if o.opr != nil {
		o.opr.Mult(ur, vr)
		o.opr.Mult(ui, vi)
	} else {
		vr.Fill(0)
		vi.Fill(0)
	}
	if o.opi != nil {
		w := la.NewVector(o.n)
		o.opi.Mult(ui, w)
		for k := range vr {
			vr[k] -= w[k]
		}
		o.opi.Mult(ur, w)
		for k := range vi {
			vi[k] += w[k]
		}
	}
	if o.conv == BlockSymmetric {
		for k := range vi {
			vi[k] = -vi[k]
		}
	}
}

// Free releases the owned sub-operators
func (o *ComplexOperator) Free() {
	if o.ownR == Owned {
		o.opr = nil
	}
	if o.ownI == Owned {
		o.opi = nil
	}
}
