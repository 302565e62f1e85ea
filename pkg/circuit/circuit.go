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

// Package circuit implements the append-only arithmetic circuit store:
// signals, gates and connections, plus the bookkeeping needed to keep
// signal ids dense, stable and collision-free (see SignalIDBoundary).
package circuit

import "fmt"

// SignalIDBoundary partitions the id space so that constant signals
// below it (whose id equals their literal value, see AddConst) never
// collide with signals allocated for declared items or gate outputs.
// Regular signal ids are allocated from this boundary upwards by the
// runtime's context stack (see pkg/runtime). AddConst does not reject
// values at or above the boundary; such a constant that meets an
// allocated id is reported as ErrDuplicateSignal by whichever
// registration comes second.
const SignalIDBoundary = uint32(1) << 31

// Circuit is an append-only store of signals, gates and connections.
// Nothing is ever removed or mutated once appended; callers obtain
// stable integer ids and grow the circuit in program order.
type Circuit struct {
	registered  map[uint32]bool
	isConst     map[uint32]bool
	signalOrder []uint32
	gates       []Gate
	connections []Connection
}

// New returns an empty circuit.
func New() *Circuit {
	return &Circuit{
		registered: make(map[uint32]bool),
		isConst:    make(map[uint32]bool),
	}
}

// AddSignal registers id as a gate-producible signal. Fails with
// ErrDuplicateSignal if id is already registered (whether as a regular
// signal or a constant).
func (c *Circuit) AddSignal(id uint32) error {
	if c.registered[id] {
		return fmt.Errorf("%w: %d", ErrDuplicateSignal, id)
	}

	c.registered[id] = true
	c.signalOrder = append(c.signalOrder, id)

	return nil
}

// AddConst registers a constant-valued signal whose id equals value.
// Re-registering the same constant is a no-op (idempotent).
func (c *Circuit) AddConst(value uint32) error {
	if c.isConst[value] {
		return nil
	}

	if err := c.AddSignal(value); err != nil {
		return err
	}

	c.isConst[value] = true

	return nil
}

// AddGate appends a gate. Fails with ErrUnknownSignal if any of
// lhs/rhs/out was not previously registered.
func (c *Circuit) AddGate(typ GateType, lhs, rhs, out uint32) error {
	for _, id := range []uint32{lhs, rhs, out} {
		if !c.registered[id] {
			return fmt.Errorf("%w: %d", ErrUnknownSignal, id)
		}
	}

	c.gates = append(c.gates, Gate{Type: typ, Lhs: lhs, Rhs: rhs, Out: out})

	return nil
}

// AddConnection appends a connection src -> dst. Fails with
// ErrUnknownSignal if either side was not previously registered.
func (c *Circuit) AddConnection(src, dst uint32) error {
	for _, id := range []uint32{src, dst} {
		if !c.registered[id] {
			return fmt.Errorf("%w: %d", ErrUnknownSignal, id)
		}
	}

	c.connections = append(c.connections, Connection{Src: src, Dst: dst})

	return nil
}

// IsRegistered reports whether id has been registered via AddSignal or
// AddConst.
func (c *Circuit) IsRegistered(id uint32) bool {
	return c.registered[id]
}

// IsConstant reports whether id was registered via AddConst.
func (c *Circuit) IsConstant(id uint32) bool {
	return c.isConst[id]
}

// Signals returns the registered signal ids in registration order.
func (c *Circuit) Signals() []uint32 {
	out := make([]uint32, len(c.signalOrder))
	copy(out, c.signalOrder)

	return out
}

// Gates returns the appended gates in append order.
func (c *Circuit) Gates() []Gate {
	out := make([]Gate, len(c.gates))
	copy(out, c.gates)

	return out
}

// Connections returns the appended connections in append order.
func (c *Circuit) Connections() []Connection {
	out := make([]Connection, len(c.connections))
	copy(out, c.connections)

	return out
}
