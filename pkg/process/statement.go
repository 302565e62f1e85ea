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

	"github.com/go-arithc/arithc/pkg/program"
	"github.com/go-arithc/arithc/pkg/runtime"
)

// ExecuteStatements runs a sequence of statements in order.
func (ip *Interpreter) ExecuteStatements(stmts []program.Statement) error {
	for _, s := range stmts {
		if err := ip.ExecuteStatement(s); err != nil {
			return err
		}
	}

	return nil
}

// ExecuteStatement runs a single statement.
func (ip *Interpreter) ExecuteStatement(s program.Statement) error {
	switch s := s.(type) {
	case *program.Block:
		return ip.ExecuteStatements(s.Stmts)
	case *program.InitializationBlock:
		return ip.ExecuteStatements(s.Inits)
	case *program.Declaration:
		return ip.executeDeclaration(s)
	case *program.While:
		return ip.executeWhile(s)
	case *program.IfThenElse:
		return ip.executeIfThenElse(s)
	case *program.Substitution:
		return ip.executeSubstitution(s)
	case *program.Return:
		return ip.executeReturn(s)
	case *program.MultSubstitution:
		ip.Log.Info("statement not implemented: MultSubstitution")
		return nil
	case *program.UnderscoreSubstitution:
		ip.Log.Info("statement not implemented: UnderscoreSubstitution")
		return nil
	case *program.ConstraintEquality:
		ip.Log.Info("statement not implemented: ConstraintEquality")
		return nil
	case *program.LogCall:
		ip.Log.Info("statement not implemented: LogCall")
		return nil
	case *program.Assert:
		ip.Log.Info("statement not implemented: Assert")
		return nil
	default:
		return fmt.Errorf("unknown statement type %T", s)
	}
}

// executeDeclaration evaluates the declared shape, registers the item,
// and - for signals - registers every leaf's pre-allocated id with the
// circuit, in row-major order (P2).
func (ip *Interpreter) executeDeclaration(s *program.Declaration) error {
	dims := make([]uint32, len(s.Dimensions))

	for i, expr := range s.Dimensions {
		v, err := ip.evalScalar(expr)
		if err != nil {
			return err
		}

		dims[i] = v
	}

	ctx := ip.Runtime.CurrentContext()
	if err := ctx.DeclareItem(s.Type, s.Name, dims); err != nil {
		return err
	}

	if s.Type != program.Signal {
		return nil
	}

	for _, indices := range enumerateIndices(dims) {
		access := runtime.DataAccess{Name: s.Name, Path: arraySubPath(indices)}

		id, err := ctx.GetSignalID(access)
		if err != nil {
			return err
		}

		if err := ip.Circuit.AddSignal(id); err != nil {
			return err
		}
	}

	return nil
}

// executeWhile pushes an inherited frame around the whole loop, and a
// second inherited frame around each iteration's body, so loop-local
// declarations vanish each iteration while writes to variables declared
// before the loop persist.
func (ip *Interpreter) executeWhile(s *program.While) error {
	ip.Runtime.PushContext(true)

	for {
		cond, err := ip.evalScalar(s.Cond)
		if err != nil {
			ip.Runtime.PopContext(true)
			return err
		}

		if cond == 0 {
			break
		}

		ip.Runtime.PushContext(true)

		if err := ip.ExecuteStatement(s.Body); err != nil {
			ip.Runtime.PopContext(true)
			ip.Runtime.PopContext(true)

			return err
		}

		ip.Runtime.PopContext(true)
	}

	ip.Runtime.PopContext(true)

	return nil
}

// executeIfThenElse evaluates Cond in the current frame and executes
// only the taken branch, under a newly pushed inherited frame.
func (ip *Interpreter) executeIfThenElse(s *program.IfThenElse) error {
	cond, err := ip.evalScalar(s.Cond)
	if err != nil {
		return err
	}

	var branch program.Statement

	switch {
	case cond != 0:
		branch = s.Then
	case s.Else != nil:
		branch = s.Else
	default:
		return nil
	}

	ip.Runtime.PushContext(true)

	if err := ip.ExecuteStatement(branch); err != nil {
		ip.Runtime.PopContext(true)
		return err
	}

	ip.Runtime.PopContext(true)

	return nil
}

// executeSubstitution dispatches on the declared type of the
// left-hand-side item (spec.md §4.4.6).
func (ip *Interpreter) executeSubstitution(s *program.Substitution) error {
	lh, err := ip.buildAccess(s.Var, s.Access)
	if err != nil {
		return err
	}

	rh, err := ip.ProcessExpression(s.Rhe)
	if err != nil {
		return err
	}

	ctx := ip.Runtime.CurrentContext()

	typ, err := ctx.GetItemDataType(s.Var)
	if err != nil {
		return err
	}

	switch typ {
	case program.Signal:
		givenOutputID, err := ctx.GetSignalID(lh)
		if err != nil {
			return err
		}

		gateOutputID, err := ip.getSignalForAccess(ctx, rh)
		if err != nil {
			return err
		}

		return ip.Circuit.AddConnection(gateOutputID, givenOutputID)
	case program.Variable:
		v, err := ctx.GetVariableValue(rh)
		if err != nil {
			return err
		}

		return ctx.SetVariable(lh, v)
	case program.Component:
		return ip.executeComponentSubstitution(ctx, s.Op, lh, rh)
	default:
		return fmt.Errorf("unknown data type %v", typ)
	}
}

func (ip *Interpreter) executeComponentSubstitution(
	ctx *runtime.Context, op program.AssignOp, lh, rh runtime.DataAccess,
) error {
	switch op {
	case program.AssignVar:
		m, err := ctx.GetComponentMap(rh)
		if err != nil {
			return err
		}

		return ctx.SetComponent(lh, m)
	case program.AssignConstraintSignal:
		componentSignal, err := ctx.GetComponentSignalID(lh)
		if err != nil {
			return err
		}

		assignedSignal, err := ip.getSignalForAccess(ctx, rh)
		if err != nil {
			return err
		}

		return ip.Circuit.AddConnection(assignedSignal, componentSignal)
	default:
		return ErrOperationNotSupported
	}
}

// executeReturn stores value's scalar result in the reserved RETURN
// variable of the current frame.
func (ip *Interpreter) executeReturn(s *program.Return) error {
	v, err := ip.evalScalar(s.Value)
	if err != nil {
		return err
	}

	ctx := ip.Runtime.CurrentContext()
	if err := ctx.DeclareItem(program.Variable, runtime.ReturnVar, nil); err != nil {
		return err
	}

	return ctx.SetVariable(runtime.NewAccess(runtime.ReturnVar), &v)
}

// enumerateIndices returns every index tuple for an array of the given
// shape, in row-major order (last dimension varies fastest). A scalar
// shape (dims == nil) yields a single empty tuple.
func enumerateIndices(dims []uint32) [][]uint32 {
	if len(dims) == 0 {
		return [][]uint32{{}}
	}

	total := uint32(1)
	for _, d := range dims {
		total *= d
	}

	result := make([][]uint32, 0, total)
	indices := make([]uint32, len(dims))

	for i := uint32(0); i < total; i++ {
		tuple := make([]uint32, len(dims))
		copy(tuple, indices)
		result = append(result, tuple)

		for axis := len(dims) - 1; axis >= 0; axis-- {
			indices[axis]++
			if indices[axis] < dims[axis] {
				break
			}

			indices[axis] = 0
		}
	}

	return result
}

func arraySubPath(indices []uint32) []runtime.SubAccess {
	if len(indices) == 0 {
		return nil
	}

	path := make([]runtime.SubAccess, len(indices))
	for i, idx := range indices {
		path[i] = runtime.ArraySub{Index: idx}
	}

	return path
}
