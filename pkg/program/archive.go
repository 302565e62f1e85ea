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
package program

// SignalDecl names one of a template's declared input or output
// signals. Meta is frontend-defined metadata the interpreter never
// inspects; it is carried through unchanged.
type SignalDecl struct {
	Name string
	Meta any
}

// FunctionData is the frontend's view of a single function definition.
type FunctionData interface {
	// ParamNames returns the function's formal parameter names, in
	// declaration order.
	ParamNames() []string
	// Body returns the function's body as a flat statement list.
	Body() []Statement
}

// TemplateData is the frontend's view of a single template definition.
type TemplateData interface {
	FunctionData
	// Inputs returns the template's declared input signals.
	Inputs() []SignalDecl
	// Outputs returns the template's declared output signals.
	Outputs() []SignalDecl
}

// Archive is the frontend's typed program representation: every
// function and template definition available to a call expression.
// The interpreter only ever reads from it.
type Archive interface {
	ContainsFunction(id string) bool
	ContainsTemplate(id string) bool
	GetFunctionData(id string) FunctionData
	GetTemplateData(id string) TemplateData
}

// funcDef is a minimal in-memory FunctionData, used to build an Archive
// programmatically (e.g. from a driver or from tests) without needing
// the full frontend.
type funcDef struct {
	params []string
	body   []Statement
}

func (f *funcDef) ParamNames() []string { return f.params }
func (f *funcDef) Body() []Statement    { return f.body }

// NewFunction builds a FunctionData from its parameter names and body.
func NewFunction(params []string, body []Statement) FunctionData {
	return &funcDef{params: params, body: body}
}

// templateDef is a minimal in-memory TemplateData.
type templateDef struct {
	funcDef
	inputs  []SignalDecl
	outputs []SignalDecl
}

func (t *templateDef) Inputs() []SignalDecl  { return t.inputs }
func (t *templateDef) Outputs() []SignalDecl { return t.outputs }

// NewTemplate builds a TemplateData from its parameter names, body, and
// declared input/output signals.
func NewTemplate(params []string, body []Statement, inputs, outputs []SignalDecl) TemplateData {
	return &templateDef{
		funcDef: funcDef{params: params, body: body},
		inputs:  inputs,
		outputs: outputs,
	}
}

// memArchive is a simple in-memory Archive implementation, built with
// NewArchive and populated with AddFunction/AddTemplate.
type memArchive struct {
	functions map[string]FunctionData
	templates map[string]TemplateData
}

// NewArchive returns an empty, mutable in-memory Archive.
func NewArchive() *memArchive {
	return &memArchive{
		functions: make(map[string]FunctionData),
		templates: make(map[string]TemplateData),
	}
}

// AddFunction registers a function definition under id.
func (a *memArchive) AddFunction(id string, data FunctionData) {
	a.functions[id] = data
}

// AddTemplate registers a template definition under id.
func (a *memArchive) AddTemplate(id string, data TemplateData) {
	a.templates[id] = data
}

func (a *memArchive) ContainsFunction(id string) bool {
	_, ok := a.functions[id]
	return ok
}

func (a *memArchive) ContainsTemplate(id string) bool {
	_, ok := a.templates[id]
	return ok
}

func (a *memArchive) GetFunctionData(id string) FunctionData { return a.functions[id] }
func (a *memArchive) GetTemplateData(id string) TemplateData { return a.templates[id] }
