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
	"github.com/go-arithc/arithc/pkg/program"
	"github.com/go-arithc/arithc/pkg/runtime"
)

// handleCall resolves id as a function or template, evaluates its
// arguments in the caller's frame, executes its body in a fresh frame,
// gathers its return data, and declares a fresh uniquely-named item
// (Variable for a function, Component for a template) in the caller's
// frame to hold it (spec.md §4.4.5).
func (ip *Interpreter) handleCall(e *program.Call) (runtime.DataAccess, error) {
	isFunction := ip.Archive.ContainsFunction(e.ID)
	isTemplate := ip.Archive.ContainsTemplate(e.ID)

	if !isFunction && !isTemplate {
		return runtime.DataAccess{}, undefinedErr(e.ID)
	}

	var (
		params []string
		body   []program.Statement
	)

	if isFunction {
		d := ip.Archive.GetFunctionData(e.ID)
		params, body = d.ParamNames(), d.Body()
	} else {
		d := ip.Archive.GetTemplateData(e.ID)
		params, body = d.ParamNames(), d.Body()
	}

	argValues, err := ip.evaluateArgs(e.Args)
	if err != nil {
		return runtime.DataAccess{}, err
	}

	ip.Runtime.PushContext(false)
	callCtx := ip.Runtime.CurrentContext()

	for i, name := range params {
		if i >= len(argValues) {
			break
		}

		if err := callCtx.DeclareItem(program.Variable, name, nil); err != nil {
			ip.Runtime.PopContext(false)
			return runtime.DataAccess{}, err
		}

		v := argValues[i]
		if err := callCtx.SetVariable(runtime.NewAccess(name), &v); err != nil {
			ip.Runtime.PopContext(false)
			return runtime.DataAccess{}, err
		}
	}

	if err := ip.ExecuteStatements(body); err != nil {
		ip.Runtime.PopContext(false)
		return runtime.DataAccess{}, err
	}

	var (
		functionReturn  *uint32
		componentReturn map[string]runtime.SignalRecord
	)

	if isFunction {
		functionReturn, _ = callCtx.GetVariableValue(runtime.NewAccess(runtime.ReturnVar))
	} else {
		data := ip.Archive.GetTemplateData(e.ID)

		componentReturn = make(map[string]runtime.SignalRecord)

		for _, sig := range data.Inputs() {
			rec, err := callCtx.GetSignal(sig.Name)
			if err != nil {
				ip.Runtime.PopContext(false)
				return runtime.DataAccess{}, err
			}

			componentReturn[sig.Name] = rec
		}

		for _, sig := range data.Outputs() {
			rec, err := callCtx.GetSignal(sig.Name)
			if err != nil {
				ip.Runtime.PopContext(false)
				return runtime.DataAccess{}, err
			}

			componentReturn[sig.Name] = rec
		}
	}

	ip.Runtime.PopContext(false)

	callerCtx := ip.Runtime.CurrentContext()
	name := ip.Runtime.FreshCallReturnName(e.ID)

	if isFunction {
		if err := callerCtx.DeclareItem(program.Variable, name, nil); err != nil {
			return runtime.DataAccess{}, err
		}

		access := runtime.NewAccess(name)

		return access, callerCtx.SetVariable(access, functionReturn)
	}

	if err := callerCtx.DeclareItem(program.Component, name, nil); err != nil {
		return runtime.DataAccess{}, err
	}

	access := runtime.NewAccess(name)

	return access, callerCtx.SetComponent(access, componentReturn)
}

// evaluateArgs processes each argument expression in the caller's frame
// and collects its current scalar value.
func (ip *Interpreter) evaluateArgs(args []program.Expression) ([]uint32, error) {
	values := make([]uint32, len(args))

	for i, arg := range args {
		v, err := ip.evalScalar(arg)
		if err != nil {
			return nil, err
		}

		values[i] = v
	}

	return values, nil
}
