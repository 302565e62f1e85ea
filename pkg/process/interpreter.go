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

// Package process is the circuit-synthesis interpreter: the expression
// evaluator and statement executor that walk a program archive's
// statements and expressions, either performing compile-time scalar
// arithmetic or emitting signals and gates into an arithmetic circuit.
package process

import (
	log "github.com/sirupsen/logrus"

	"github.com/go-arithc/arithc/pkg/circuit"
	"github.com/go-arithc/arithc/pkg/program"
	"github.com/go-arithc/arithc/pkg/runtime"
)

// Interpreter ties together the arithmetic circuit being built, the
// context/scope stack, and the program archive being walked. It is not
// safe for concurrent use: per the source design, exactly one
// interpreter mutates the circuit and the runtime in strict program
// order.
type Interpreter struct {
	Circuit *circuit.Circuit
	Runtime *runtime.Runtime
	Archive program.Archive
	Log     *log.Logger
}

// New returns an Interpreter over the given archive, with a fresh
// circuit and a runtime whose root frame is already pushed.
func New(archive program.Archive) *Interpreter {
	return &Interpreter{
		Circuit: circuit.New(),
		Runtime: runtime.New(),
		Archive: archive,
		Log:     log.StandardLogger(),
	}
}

// Run interprets the named function or template's body in the
// runtime's root frame, optionally binding it to positional argument
// values first (empty for a template with no top-level parameters).
func (ip *Interpreter) Run(id string, args []uint32) error {
	params, body, err := ip.lookup(id)
	if err != nil {
		return err
	}

	ctx := ip.Runtime.CurrentContext()

	for i, p := range params {
		if i >= len(args) {
			break
		}

		if err := ctx.DeclareItem(runtime.Variable, p, nil); err != nil {
			return err
		}

		v := args[i]
		if err := ctx.SetVariable(runtime.NewAccess(p), &v); err != nil {
			return err
		}
	}

	return ip.ExecuteStatements(body)
}

func (ip *Interpreter) lookup(id string) (params []string, body []program.Statement, err error) {
	switch {
	case ip.Archive.ContainsFunction(id):
		d := ip.Archive.GetFunctionData(id)
		return d.ParamNames(), d.Body(), nil
	case ip.Archive.ContainsTemplate(id):
		d := ip.Archive.GetTemplateData(id)
		return d.ParamNames(), d.Body(), nil
	default:
		return nil, nil, undefinedErr(id)
	}
}

func undefinedErr(id string) error {
	return &undefinedError{id: id}
}

type undefinedError struct{ id string }

func (e *undefinedError) Error() string {
	return ErrUndefinedFunctionOrTemplate.Error() + ": " + e.id
}

func (e *undefinedError) Unwrap() error { return ErrUndefinedFunctionOrTemplate }

// evalScalar evaluates expr and returns its current scalar value,
// failing ErrEmptyDataItem if the resolved variable is uninitialized.
func (ip *Interpreter) evalScalar(expr program.Expression) (uint32, error) {
	access, err := ip.ProcessExpression(expr)
	if err != nil {
		return 0, err
	}

	ctx := ip.Runtime.CurrentContext()

	v, err := ctx.GetVariableValue(access)
	if err != nil {
		return 0, err
	}

	if v == nil {
		return 0, ErrEmptyDataItem
	}

	return *v, nil
}
