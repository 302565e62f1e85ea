// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package runtime implements the context/scope stack: the symbol
// tables for variables, signals and components, the two scoping
// disciplines (inherited vs fresh), and the DataAccess addressing
// scheme used to reach a specific leaf of a (possibly multi-dimensional)
// item.
package runtime

import (
	"fmt"

	"github.com/go-arithc/arithc/pkg/program"
)

// DataType is the declared kind of a named item: Variable, Signal or
// Component. It is the same three-way enum the AST's Declaration uses.
type DataType = program.ItemType

// The three data types, re-exported for callers that only import
// pkg/runtime.
const (
	Variable  = program.Variable
	Signal    = program.Signal
	Component = program.Component
)

// ReturnVar is the reserved variable name function returns are stashed
// under (I5).
const ReturnVar = "RETURN"

// SubAccess is one step of a DataAccess: either an array index or a
// component field selector. Chains mix both, e.g. comp.out[3] is
// [ComponentSub{"out"}, ArraySub{3}].
type SubAccess interface{ isSubAccess() }

// ArraySub indexes into an array dimension.
type ArraySub struct{ Index uint32 }

func (ArraySub) isSubAccess() {}

// ComponentSub selects a named signal on a component.
type ComponentSub struct{ Name string }

func (ComponentSub) isSubAccess() {}

// DataAccess symbolically addresses a single leaf of a named item.
type DataAccess struct {
	Name string
	Path []SubAccess
}

// NewAccess builds a DataAccess with no subaccesses (a bare name).
func NewAccess(name string) DataAccess {
	return DataAccess{Name: name}
}

// SignalRecord is the raw id/shape data behind a declared signal item:
// used both to answer GetSignal (for exporting a template's
// input/output signals into a component binding) and as the value type
// stored in a component's signal map.
type SignalRecord struct {
	Dims []uint32
	IDs  []uint32
}

// Item is a named entry in a Context: a Variable, Signal or Component,
// possibly shaped as a multi-dimensional array whose leaves are
// enumerated in row-major order.
type Item struct {
	Type DataType
	Dims []uint32

	vars  []*uint32
	sigs  []uint32
	comps []map[string]SignalRecord
}

// leafCount returns the number of leaves implied by Dims (1 for a
// scalar item).
func leafCount(dims []uint32) uint32 {
	n := uint32(1)
	for _, d := range dims {
		n *= d
	}

	return n
}

// FlattenIndex computes the row-major flat index of indices within an
// array of shape dims: the last dimension varies fastest. Fails
// ErrOutOfBounds if any index is out of range or the arities disagree.
func FlattenIndex(dims []uint32, indices []uint32) (uint32, error) {
	if len(dims) != len(indices) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrOutOfBounds, len(dims), len(indices))
	}

	var flat uint32

	for i, d := range dims {
		if indices[i] >= d {
			return 0, fmt.Errorf("%w: index %d out of range [0,%d)", ErrOutOfBounds, indices[i], d)
		}

		flat = flat*d + indices[i]
	}

	return flat, nil
}
