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
package circuit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSignalDuplicate(t *testing.T) {
	c := New()
	require.NoError(t, c.AddSignal(5))

	err := c.AddSignal(5)
	assert.ErrorIs(t, err, ErrDuplicateSignal)
}

func TestAddGateUnknownSignal(t *testing.T) {
	c := New()
	require.NoError(t, c.AddSignal(1))
	require.NoError(t, c.AddSignal(2))
	require.NoError(t, c.AddSignal(3))

	err := c.AddGate(Add, 1, 2, 99)
	assert.True(t, errors.Is(err, ErrUnknownSignal))

	require.NoError(t, c.AddGate(Add, 1, 2, 3))
	assert.Len(t, c.Gates(), 1)
}

func TestAddConstIdempotent(t *testing.T) {
	c := New()
	require.NoError(t, c.AddConst(7))
	require.NoError(t, c.AddConst(7))

	assert.Equal(t, []uint32{7}, c.Signals())
	assert.True(t, c.IsConstant(7))
}

func TestAddConnection(t *testing.T) {
	c := New()
	require.NoError(t, c.AddSignal(1))
	require.NoError(t, c.AddSignal(2))
	require.NoError(t, c.AddConnection(1, 2))

	conns := c.Connections()
	require.Len(t, conns, 1)
	assert.Equal(t, uint32(1), conns[0].Src)
	assert.Equal(t, uint32(2), conns[0].Dst)

	err := c.AddConnection(1, 42)
	assert.ErrorIs(t, err, ErrUnknownSignal)
}

func TestSignalOrderPreserved(t *testing.T) {
	c := New()
	require.NoError(t, c.AddSignal(10))
	require.NoError(t, c.AddConst(1))
	require.NoError(t, c.AddSignal(11))

	assert.Equal(t, []uint32{10, 1, 11}, c.Signals())
}
