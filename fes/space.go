// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fes provides the finite-element space collaborator used by the
// form and cfem packages: a conforming P1 Lagrange space on a 1D uniform
// mesh, with optional periodic constraints (conforming prolongation),
// uniform refinement with an update operator, and a distributed variant
// where cells are partitioned among MPI ranks and global vectors are
// replicated on every rank.
package fes

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/mpi"

	"github.com/cofemlab/cofem/spm"
)

// Space holds a P1 Lagrange finite-element space on a uniform 1D mesh
type Space struct {

	// mesh
	xa, xb float64   // domain limits
	ncells int       // number of cells
	x      la.Vector // node coordinates [ncells+1]

	// distributed runs
	comm    *mpi.Communicator // nil in serial runs
	rank    int               // this processor number
	nproc   int               // number of processors
	mycells []int             // cells assembled by this processor (all, in serial)
	offsets []int             // [nproc+1] dof ownership ranges

	// constraints
	periodic bool        // end nodes identified
	prol     *spm.Matrix // conforming prolongation (ndofs x ntrue); nil => identity
	restr    *spm.Matrix // restriction picking representative dofs (ntrue x ndofs); nil => identity

	// refinement
	upd      *spm.Matrix // update operator (new ndofs x old ndofs); nil before first Refine
	sequence int         // bumped on every Refine
}

// NewSpace1D returns a serial space on [xa,xb] with ncells cells
func NewSpace1D(xa, xb float64, ncells int) (o *Space) {
	o = new(Space)
	o.init(xa, xb, ncells, nil)
	return
}

// NewPeriodicSpace1D returns a serial space whose two end nodes are
// identified by a conforming constraint; the true-dof space has one dof
// fewer than the local space
func NewPeriodicSpace1D(xa, xb float64, ncells int) (o *Space) {
	o = NewSpace1D(xa, xb, ncells)
	o.periodic = true
	o.buildConstraints()
	return
}

// NewParSpace1D returns a distributed space. Cells are partitioned in
// contiguous blocks among processors; dof ownership ranges follow the cell
// partition. comm may be nil, in which case the space behaves as a
// single-processor distributed space (useful for testing the distributed
// code path without mpirun).
func NewParSpace1D(comm *mpi.Communicator, xa, xb float64, ncells int) (o *Space) {
	o = new(Space)
	o.init(xa, xb, ncells, comm)
	return
}

// init builds mesh arrays and the cell partition
func (o *Space) init(xa, xb float64, ncells int, comm *mpi.Communicator) {
	if ncells < 1 {
		chk.Panic("number of cells must be at least 1. ncells=%d is invalid", ncells)
	}
	if xb <= xa {
		chk.Panic("domain limits are invalid: xa=%g must be smaller than xb=%g", xa, xb)
	}
	o.xa, o.xb, o.ncells = xa, xb, ncells
	o.comm = comm
	o.rank, o.nproc = 0, 1
	if comm != nil {
		o.rank, o.nproc = comm.Rank(), comm.Size()
	}
	o.buildMesh()
	o.buildPartition()
}

// buildMesh computes node coordinates
func (o *Space) buildMesh() {
	n := o.ncells + 1
	o.x = la.NewVector(n)
	dx := (o.xb - o.xa) / float64(o.ncells)
	for i := 0; i < n; i++ {
		o.x[i] = o.xa + float64(i)*dx
	}
}

// buildPartition splits cells and dof ownership among processors
func (o *Space) buildPartition() {
	lo := o.rank * o.ncells / o.nproc
	hi := (o.rank + 1) * o.ncells / o.nproc
	o.mycells = make([]int, 0, hi-lo)
	for e := lo; e < hi; e++ {
		o.mycells = append(o.mycells, e)
	}
	n := o.ncells + 1
	o.offsets = make([]int, o.nproc+1)
	for r := 0; r <= o.nproc; r++ {
		o.offsets[r] = r * n / o.nproc
	}
	o.offsets[o.nproc] = n
}

// buildConstraints sets prolongation/restriction for the periodic space
func (o *Space) buildConstraints() {
	n := o.ncells + 1  // local dofs
	nt := o.ncells     // true dofs
	o.prol = spm.New(n, nt, n)
	o.restr = spm.New(nt, n, nt)
	for i := 0; i < nt; i++ {
		o.prol.Put(i, i, 1)
		o.restr.Put(i, i, 1)
	}
	o.prol.Put(n-1, 0, 1) // last node is a copy of the first
}

// NumDofs returns the local (full) number of dofs
func (o *Space) NumDofs() int { return o.ncells + 1 }

// NumTrueDofs returns the number of unconstrained (true) dofs
func (o *Space) NumTrueDofs() int {
	if o.periodic {
		return o.ncells
	}
	return o.ncells + 1
}

// NumCells returns the total number of cells
func (o *Space) NumCells() int { return o.ncells }

// Cells returns the ids of the cells assembled by this processor
func (o *Space) Cells() []int { return o.mycells }

// Comm returns the communicator (nil in serial runs)
func (o *Space) Comm() *mpi.Communicator { return o.comm }

// Distributed tells whether this space partitions cells among processors
func (o *Space) Distributed() bool { return o.nproc > 1 || o.comm != nil }

// CellNodes returns the two node/equation numbers of cell e
func (o *Space) CellNodes(e int) (n0, n1 int) { return e, e + 1 }

// CellSize returns the length of cell e
func (o *Space) CellSize(e int) float64 { return o.x[e+1] - o.x[e] }

// CellCenter returns the centre coordinate of cell e
func (o *Space) CellCenter(e int) float64 { return (o.x[e] + o.x[e+1]) / 2.0 }

// Coord returns the coordinate of node i
func (o *Space) Coord(i int) float64 { return o.x[i] }

// Prolongation returns the conforming prolongation operator mapping true
// dofs to local dofs, or nil when the map is the identity
func (o *Space) Prolongation() *spm.Matrix { return o.prol }

// Restriction returns the operator selecting true-dof values from local
// values, or nil when the map is the identity
func (o *Space) Restriction() *spm.Matrix { return o.restr }

// UpdateOp returns the interpolation operator installed by the latest
// Refine call (mapping old local dofs to new local dofs), or nil if the
// space was never refined
func (o *Space) UpdateOp() *spm.Matrix { return o.upd }

// Sequence returns the refinement sequence marker
func (o *Space) Sequence() int { return o.sequence }

// TrueDofOffsets returns the dof ownership ranges [nproc+1]
func (o *Space) TrueDofOffsets() []int { return o.offsets }

// OwnedRange returns the dof range owned by this processor
func (o *Space) OwnedRange() (lo, hi int) {
	return o.offsets[o.rank], o.offsets[o.rank+1]
}

// EssentialDofs returns the sorted (0-indexed) list of boundary dofs to be
// eliminated. left/right select which end of the domain is constrained.
func (o *Space) EssentialDofs(left, right bool) (ess []int) {
	if o.periodic {
		chk.Panic("periodic spaces have no boundary dofs to constrain")
	}
	if left {
		ess = append(ess, 0)
	}
	if right {
		ess = append(ess, o.ncells)
	}
	return
}

// Refine refines the mesh uniformly (each cell split in two) and installs
// the P1 interpolation update operator mapping the previous dofs to the
// new ones. Grid functions and forms bound to this space must call their
// Update method afterwards.
func (o *Space) Refine() {
	nOld := o.ncells + 1
	o.ncells *= 2
	o.buildMesh()
	o.buildPartition()
	nNew := o.ncells + 1

	// old node i lands on new node 2i; new odd nodes take cell midpoints
	o.upd = spm.New(nNew, nOld, 2*nNew)
	for i := 0; i < nOld; i++ {
		o.upd.Put(2*i, i, 1)
	}
	for i := 0; i < nOld-1; i++ {
		o.upd.Put(2*i+1, i, 0.5)
		o.upd.Put(2*i+1, i+1, 0.5)
	}

	if o.periodic {
		o.buildConstraints()
	}
	o.sequence++
}
