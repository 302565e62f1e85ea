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
package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u32p(v uint32) *uint32 { return &v }

func TestDeclareAndSetVariable(t *testing.T) {
	rt := New()
	ctx := rt.CurrentContext()

	require.NoError(t, ctx.DeclareItem(Variable, "a", nil))
	require.NoError(t, ctx.SetVariable(NewAccess("a"), u32p(3)))

	val, err := ctx.GetVariableValue(NewAccess("a"))
	require.NoError(t, err)
	require.NotNil(t, val)
	assert.Equal(t, uint32(3), *val)
}

func TestUninitializedVariableIsNilNotError(t *testing.T) {
	rt := New()
	ctx := rt.CurrentContext()
	require.NoError(t, ctx.DeclareItem(Variable, "x", nil))

	val, err := ctx.GetVariableValue(NewAccess("x"))
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestAlreadyDeclared(t *testing.T) {
	rt := New()
	ctx := rt.CurrentContext()
	require.NoError(t, ctx.DeclareItem(Variable, "a", nil))

	err := ctx.DeclareItem(Variable, "a", nil)
	assert.ErrorIs(t, err, ErrAlreadyDeclared)
}

func TestSignalArrayDeclarationAllocatesEachLeaf(t *testing.T) {
	rt := New()
	ctx := rt.CurrentContext()
	require.NoError(t, ctx.DeclareItem(Signal, "s", []uint32{2, 3}))

	seen := map[uint32]bool{}

	for i := uint32(0); i < 2; i++ {
		for j := uint32(0); j < 3; j++ {
			id, err := ctx.GetSignalID(DataAccess{Name: "s", Path: []SubAccess{ArraySub{i}, ArraySub{j}}})
			require.NoError(t, err)
			assert.False(t, seen[id], "signal id %d reused", id)
			seen[id] = true
		}
	}

	assert.Len(t, seen, 6)
}

func TestOutOfBounds(t *testing.T) {
	rt := New()
	ctx := rt.CurrentContext()
	require.NoError(t, ctx.DeclareItem(Signal, "s", []uint32{2}))

	_, err := ctx.GetSignalID(DataAccess{Name: "s", Path: []SubAccess{ArraySub{5}}})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestInheritedScopeReadsFallThroughWritesPersist(t *testing.T) {
	rt := New()
	outer := rt.CurrentContext()
	require.NoError(t, outer.DeclareItem(Variable, "sum", nil))
	require.NoError(t, outer.SetVariable(NewAccess("sum"), u32p(0)))

	rt.PushContext(true)
	inner := rt.CurrentContext()

	val, err := inner.GetVariableValue(NewAccess("sum"))
	require.NoError(t, err)
	require.NotNil(t, val)
	assert.Equal(t, uint32(0), *val)

	require.NoError(t, inner.SetVariable(NewAccess("sum"), u32p(7)))
	rt.PopContext(true)

	after := rt.CurrentContext()
	val, err = after.GetVariableValue(NewAccess("sum"))
	require.NoError(t, err)
	assert.Equal(t, uint32(7), *val)
}

func TestFreshScopeConfinesReads(t *testing.T) {
	rt := New()
	outer := rt.CurrentContext()
	require.NoError(t, outer.DeclareItem(Variable, "secret", nil))
	require.NoError(t, outer.SetVariable(NewAccess("secret"), u32p(1)))

	rt.PushContext(false)
	inner := rt.CurrentContext()

	_, err := inner.GetItemDataType("secret")
	assert.ErrorIs(t, err, ErrUnknownItem)

	rt.PopContext(false)
}

func TestPopContextMismatchPanics(t *testing.T) {
	rt := New()
	rt.PushContext(true)

	assert.Panics(t, func() { rt.PopContext(false) })
}

func TestComponentFieldAccess(t *testing.T) {
	rt := New()
	ctx := rt.CurrentContext()
	require.NoError(t, ctx.DeclareItem(Component, "m", nil))

	m := map[string]SignalRecord{
		"a":   {Dims: nil, IDs: []uint32{10}},
		"out": {Dims: []uint32{4}, IDs: []uint32{20, 21, 22, 23}},
	}
	require.NoError(t, ctx.SetComponent(NewAccess("m"), m))

	id, err := ctx.GetComponentSignalID(DataAccess{Name: "m", Path: []SubAccess{ComponentSub{"a"}}})
	require.NoError(t, err)
	assert.Equal(t, uint32(10), id)

	id, err = ctx.GetComponentSignalID(DataAccess{
		Name: "m",
		Path: []SubAccess{ComponentSub{"out"}, ArraySub{3}},
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(23), id)
}

func TestFreshCallReturnNamingConvention(t *testing.T) {
	rt := New()
	name1 := rt.FreshCallReturnName("f")
	name2 := rt.FreshCallReturnName("f")
	assert.NotEqual(t, name1, name2)
	assert.Regexp(t, `^f_RETURN_\d+$`, name1)
}

func TestSignalIDsNeverCollideWithConstantRange(t *testing.T) {
	rt := New()
	ctx := rt.CurrentContext()
	require.NoError(t, ctx.DeclareItem(Signal, "x", nil))

	id, err := ctx.GetSignalID(NewAccess("x"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, id, uint32(1)<<31)
}
