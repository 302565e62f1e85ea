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
	"fmt"
	"math"

	"github.com/go-arithc/arithc/pkg/program"
	"github.com/go-arithc/arithc/pkg/runtime"
)

// ProcessExpression resolves expr to a DataAccess handle. Number
// literals and variable references just build an access; InfixOp and
// Call dispatch to the gate-emitting / call-handling logic below.
// Unimplemented expression forms log a notice and return an empty
// access rather than erroring, so they never crash the pipeline.
func (ip *Interpreter) ProcessExpression(expr program.Expression) (runtime.DataAccess, error) {
	switch e := expr.(type) {
	case *program.Number:
		return ip.processNumber(e)
	case *program.Variable:
		return ip.buildAccess(e.Name, e.Access)
	case *program.InfixOp:
		return ip.handleInfixOp(e)
	case *program.Call:
		return ip.handleCall(e)
	case *program.PrefixOp:
		ip.Log.Info("expression not implemented: PrefixOp")
		return runtime.DataAccess{}, nil
	case *program.InlineSwitch:
		ip.Log.Info("expression not implemented: InlineSwitchOp")
		return runtime.DataAccess{}, nil
	case *program.Parallel:
		ip.Log.Info("expression not implemented: ParallelOp")
		return runtime.DataAccess{}, nil
	case *program.AnonymousComp:
		ip.Log.Info("expression not implemented: AnonymousComp")
		return runtime.DataAccess{}, nil
	case *program.ArrayInLine:
		ip.Log.Info("expression not implemented: ArrayInLine")
		return runtime.DataAccess{}, nil
	case *program.Tuple:
		ip.Log.Info("expression not implemented: Tuple")
		return runtime.DataAccess{}, nil
	case *program.UniformArray:
		ip.Log.Info("expression not implemented: UniformArray")
		return runtime.DataAccess{}, nil
	default:
		return runtime.DataAccess{}, fmt.Errorf("unknown expression type %T", expr)
	}
}

func (ip *Interpreter) processNumber(e *program.Number) (runtime.DataAccess, error) {
	if e.Value > math.MaxUint32 {
		return runtime.DataAccess{}, ErrParsingError
	}

	ctx := ip.Runtime.CurrentContext()

	access, err := ctx.DeclareRandomItem(runtime.Variable)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	v := uint32(e.Value)
	if err := ctx.SetVariable(access, &v); err != nil {
		return runtime.DataAccess{}, err
	}

	return access, nil
}

// buildAccess evaluates each array-index expression in access and
// returns the resulting DataAccess for name.
func (ip *Interpreter) buildAccess(name string, access []program.Access) (runtime.DataAccess, error) {
	path := make([]runtime.SubAccess, 0, len(access))

	for _, a := range access {
		switch a := a.(type) {
		case *program.ArrayAccess:
			idx, err := ip.evalScalar(a.Index)
			if err != nil {
				return runtime.DataAccess{}, err
			}

			path = append(path, runtime.ArraySub{Index: idx})
		case *program.ComponentAccess:
			path = append(path, runtime.ComponentSub{Name: a.Signal})
		default:
			return runtime.DataAccess{}, fmt.Errorf("unknown access type %T", a)
		}
	}

	return runtime.DataAccess{Name: name, Path: path}, nil
}

// handleInfixOp evaluates both operands and, if both are Variables,
// computes the operation directly; otherwise it coerces both sides to
// signal ids and emits the corresponding gate.
func (ip *Interpreter) handleInfixOp(e *program.InfixOp) (runtime.DataAccess, error) {
	lhe, err := ip.ProcessExpression(e.Lhs)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	rhe, err := ip.ProcessExpression(e.Rhs)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	ctx := ip.Runtime.CurrentContext()

	lhsType, err := ctx.GetItemDataType(lhe.Name)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	rhsType, err := ctx.GetItemDataType(rhe.Name)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	if lhsType == program.Variable && rhsType == program.Variable {
		return ip.evaluateVariableInfix(ctx, e.Op, lhe, rhe)
	}

	return ip.emitGate(ctx, e.Op, lhe, rhe)
}

func (ip *Interpreter) evaluateVariableInfix(
	ctx *runtime.Context, op program.InfixOpcode, lhe, rhe runtime.DataAccess,
) (runtime.DataAccess, error) {
	lv, err := ctx.GetVariableValue(lhe)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	if lv == nil {
		return runtime.DataAccess{}, ErrEmptyDataItem
	}

	rv, err := ctx.GetVariableValue(rhe)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	if rv == nil {
		return runtime.DataAccess{}, ErrEmptyDataItem
	}

	result, err := ExecuteOp(*lv, *rv, op)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	access, err := ctx.DeclareRandomItem(program.Variable)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	if err := ctx.SetVariable(access, &result); err != nil {
		return runtime.DataAccess{}, err
	}

	return access, nil
}

func (ip *Interpreter) emitGate(
	ctx *runtime.Context, op program.InfixOpcode, lhe, rhe runtime.DataAccess,
) (runtime.DataAccess, error) {
	lhsID, err := ip.getSignalForAccess(ctx, lhe)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	rhsID, err := ip.getSignalForAccess(ctx, rhe)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	out, err := ctx.DeclareRandomItem(program.Signal)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	outID, err := ctx.GetSignalID(out)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	if err := ip.Circuit.AddSignal(outID); err != nil {
		return runtime.DataAccess{}, err
	}

	if err := ip.Circuit.AddGate(gateTypeOf(op), lhsID, rhsID, outID); err != nil {
		return runtime.DataAccess{}, err
	}

	return out, nil
}

// getSignalForAccess coerces access to a signal id: signals and
// components resolve directly, while a variable is registered as a
// constant signal whose id equals its value (circuit.SignalIDBoundary
// keeps constants below it disjoint from regular signal ids).
func (ip *Interpreter) getSignalForAccess(ctx *runtime.Context, access runtime.DataAccess) (uint32, error) {
	typ, err := ctx.GetItemDataType(access.Name)
	if err != nil {
		return 0, err
	}

	switch typ {
	case program.Signal:
		return ctx.GetSignalID(access)
	case program.Component:
		return ctx.GetComponentSignalID(access)
	case program.Variable:
		v, err := ctx.GetVariableValue(access)
		if err != nil {
			return 0, err
		}

		if v == nil {
			return 0, ErrEmptyDataItem
		}

		if err := ip.Circuit.AddConst(*v); err != nil {
			return 0, err
		}

		return *v, nil
	default:
		return 0, fmt.Errorf("unknown data type %v", typ)
	}
}
