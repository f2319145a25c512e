// Copyright 2016 The Cofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fes

// Coefficient evaluates a scalar material/source coefficient at a point
type Coefficient interface {
	Eval(x float64) float64
}

// ConstCoeff is a constant coefficient
type ConstCoeff struct {
	C float64
}

// Eval returns the constant
func (o ConstCoeff) Eval(x float64) float64 { return o.C }

// FuncCoeff wraps a plain function as a coefficient
type FuncCoeff struct {
	F func(x float64) float64
}

// Eval calls the wrapped function
func (o FuncCoeff) Eval(x float64) float64 { return o.F(x) }
