// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cla

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cofemlab/cofem/dla"
)

// Kind is the closed set of concrete matrix representations the assembly
// layer dispatches on
type Kind int

const (
	// Generic is any opaque operator representation
	Generic Kind = iota

	// Distributed is the distributed (Hypre-class) sparse representation,
	// the only one exposing mutable diagonal access
	Distributed
)

// String returns a string representation of this kind
func (o Kind) String() string {
	if o == Distributed {
		return "distributed"
	}
	return "generic"
}

// RealHandle is a tagged handle to the real matrix produced by a single
// bilinear-form assembly. Exactly one arm is active, fixed at
// construction.
type RealHandle struct {
	kind Kind
	dist *dla.DistMatrix
	gen  Operator
	own  Ownership
}

// NewDistRealHandle wraps a distributed matrix
func NewDistRealHandle(a *dla.DistMatrix, own Ownership) *RealHandle {
	return &RealHandle{kind: Distributed, dist: a, gen: a, own: own}
}

// NewGenericRealHandle wraps an opaque operator
func NewGenericRealHandle(op Operator, own Ownership) *RealHandle {
	return &RealHandle{kind: Generic, gen: op, own: own}
}

// Kind returns the active arm
func (o *RealHandle) Kind() Kind { return o.kind }

// Dist returns the distributed arm; it is an error to call this on a
// generic handle
func (o *RealHandle) Dist() *dla.DistMatrix {
	if o.kind != Distributed {
		chk.Panic("handle of kind %v has no distributed matrix", o.kind)
	}
	return o.dist
}

// Op returns the operator view of whichever arm is active
func (o *RealHandle) Op() Operator { return o.gen }

// Owns returns the ownership tag
func (o *RealHandle) Owns() Ownership { return o.own }

// Handle is a tagged handle to an assembled complex operator. The
// Distributed arm holds a ComplexDistMatrix (both blocks distributed);
// the Generic arm holds any other pairing.
type Handle struct {
	kind Kind
	dist *ComplexDistMatrix
	op   Complex
}

// NewDistHandle wraps a distributed complex matrix
func NewDistHandle(a *ComplexDistMatrix) *Handle {
	return &Handle{kind: Distributed, dist: a, op: a}
}

// NewGenericHandle wraps any other complex representation
func NewGenericHandle(op Complex) *Handle {
	return &Handle{kind: Generic, op: op}
}

// Kind returns the active arm
func (o *Handle) Kind() Kind { return o.kind }

// Dist returns the distributed arm; it is an error to call this on a
// generic handle
func (o *Handle) Dist() *ComplexDistMatrix {
	if o.kind != Distributed {
		chk.Panic("handle of kind %v has no distributed matrix", o.kind)
	}
	return o.dist
}

// Op returns the complex-operator view of whichever arm is active
func (o *Handle) Op() Complex { return o.op }
