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
package process

import (
	"github.com/go-arithc/arithc/pkg/circuit"
	"github.com/go-arithc/arithc/pkg/program"
)

// gateTypeOf maps a source infix operator onto the circuit gate type it
// reifies as when one or both operands are signals.
func gateTypeOf(op program.InfixOpcode) circuit.GateType {
	switch op {
	case program.OpAdd:
		return circuit.Add
	case program.OpSub:
		return circuit.Sub
	case program.OpMul:
		return circuit.Mul
	case program.OpDiv:
		return circuit.Div
	case program.OpIntDiv:
		return circuit.IntDiv
	case program.OpPow:
		return circuit.Pow
	case program.OpMod:
		return circuit.Mod
	case program.OpShiftL:
		return circuit.ShiftL
	case program.OpShiftR:
		return circuit.ShiftR
	case program.OpEq:
		return circuit.Eq
	case program.OpNotEq:
		return circuit.NotEq
	case program.OpLesser:
		return circuit.Lt
	case program.OpLesserEq:
		return circuit.Le
	case program.OpGreater:
		return circuit.Gt
	case program.OpGreaterEq:
		return circuit.Ge
	case program.OpBoolAnd:
		return circuit.BoolAnd
	case program.OpBoolOr:
		return circuit.BoolOr
	case program.OpBitAnd:
		return circuit.BitAnd
	case program.OpBitOr:
		return circuit.BitOr
	case program.OpBitXor:
		return circuit.BitXor
	default:
		panic("unreachable infix opcode")
	}
}

// ExecuteOp performs an infix operator over two compile-time scalar
// values. Division, integer division and modulo fail with an
// OperationError on a zero divisor; Go's native uint32 wraparound is
// used for Add/Sub/Mul/Pow/ShiftL overflow, chosen as the deterministic
// (if implementation-defined) resolution the source spec leaves open.
func ExecuteOp(lhs, rhs uint32, op program.InfixOpcode) (uint32, error) {
	switch op {
	case program.OpMul:
		return lhs * rhs, nil
	case program.OpDiv:
		if rhs == 0 {
			return 0, opError("Division by zero")
		}

		return lhs / rhs, nil
	case program.OpAdd:
		return lhs + rhs, nil
	case program.OpSub:
		return lhs - rhs, nil
	case program.OpPow:
		return powU32(lhs, rhs), nil
	case program.OpIntDiv:
		if rhs == 0 {
			return 0, opError("Integer division by zero")
		}

		return lhs / rhs, nil
	case program.OpMod:
		if rhs == 0 {
			return 0, opError("Modulo by zero")
		}

		return lhs % rhs, nil
	case program.OpShiftL:
		return lhs << (rhs & 31), nil
	case program.OpShiftR:
		return lhs >> (rhs & 31), nil
	case program.OpLesserEq:
		return boolU32(lhs <= rhs), nil
	case program.OpGreaterEq:
		return boolU32(lhs >= rhs), nil
	case program.OpLesser:
		return boolU32(lhs < rhs), nil
	case program.OpGreater:
		return boolU32(lhs > rhs), nil
	case program.OpEq:
		return boolU32(lhs == rhs), nil
	case program.OpNotEq:
		return boolU32(lhs != rhs), nil
	case program.OpBoolOr:
		return boolU32(lhs != 0 || rhs != 0), nil
	case program.OpBoolAnd:
		return boolU32(lhs != 0 && rhs != 0), nil
	case program.OpBitOr:
		return lhs | rhs, nil
	case program.OpBitAnd:
		return lhs & rhs, nil
	case program.OpBitXor:
		return lhs ^ rhs, nil
	default:
		return 0, ErrOperationNotSupported
	}
}

func boolU32(b bool) uint32 {
	if b {
		return 1
	}

	return 0
}

// powU32 computes lhs^rhs over uint32 with wraparound by
// square-and-multiply over the full exponent (rhs is not masked the way
// shift amounts are). Pow(0,0) and Pow(a,0) are both 1, matching the
// source language's exponentiation.
func powU32(lhs, rhs uint32) uint32 {
	result := uint32(1)

	for rhs > 0 {
		if rhs&1 == 1 {
			result *= lhs
		}

		lhs *= lhs
		rhs >>= 1
	}

	return result
}
