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

import (
	"encoding/json"
	"fmt"
)

// DecodeArchive parses a JSON-encoded program archive (the on-disk
// stand-in for the circom-family frontend's output, which is out of
// scope here) into an in-memory Archive. The schema is a tagged union
// keyed by "kind" at every statement/expression/access node, decoded
// via json.RawMessage the way any hand-rolled Go union decoder works.
func DecodeArchive(data []byte) (*memArchive, error) {
	var raw struct {
		Functions map[string]jsonFuncDef `json:"functions"`
		Templates map[string]jsonTplDef  `json:"templates"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding archive: %w", err)
	}

	archive := NewArchive()

	for name, f := range raw.Functions {
		body, err := decodeStatements(f.Body)
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", name, err)
		}

		archive.AddFunction(name, NewFunction(f.Params, body))
	}

	for name, t := range raw.Templates {
		body, err := decodeStatements(t.Body)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", name, err)
		}

		archive.AddTemplate(name, NewTemplate(t.Params, body, toSignalDecls(t.Inputs), toSignalDecls(t.Outputs)))
	}

	return archive, nil
}

type jsonFuncDef struct {
	Params []string          `json:"params"`
	Body   []json.RawMessage `json:"body"`
}

type jsonTplDef struct {
	Params  []string          `json:"params"`
	Body    []json.RawMessage `json:"body"`
	Inputs  []string          `json:"inputs"`
	Outputs []string          `json:"outputs"`
}

func toSignalDecls(names []string) []SignalDecl {
	decls := make([]SignalDecl, len(names))
	for i, n := range names {
		decls[i] = SignalDecl{Name: n}
	}

	return decls
}

type taggedNode struct {
	Kind string `json:"kind"`
}

func decodeStatements(raw []json.RawMessage) ([]Statement, error) {
	stmts := make([]Statement, len(raw))

	for i, r := range raw {
		s, err := decodeStatement(r)
		if err != nil {
			return nil, err
		}

		stmts[i] = s
	}

	return stmts, nil
}

func decodeStatement(raw json.RawMessage) (Statement, error) {
	var tag taggedNode
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}

	switch tag.Kind {
	case "block":
		var n struct {
			Stmts []json.RawMessage `json:"stmts"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		stmts, err := decodeStatements(n.Stmts)
		if err != nil {
			return nil, err
		}

		return &Block{Stmts: stmts}, nil
	case "init_block":
		var n struct {
			Inits []json.RawMessage `json:"inits"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		inits, err := decodeStatements(n.Inits)
		if err != nil {
			return nil, err
		}

		return &InitializationBlock{Inits: inits}, nil
	case "declaration":
		var n struct {
			Type string            `json:"type"`
			Name string            `json:"name"`
			Dims []json.RawMessage `json:"dims"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		typ, err := decodeItemType(n.Type)
		if err != nil {
			return nil, err
		}

		dims, err := decodeExpressions(n.Dims)
		if err != nil {
			return nil, err
		}

		return &Declaration{Type: typ, Name: n.Name, Dimensions: dims}, nil
	case "while":
		var n struct {
			Cond json.RawMessage `json:"cond"`
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		cond, err := decodeExpression(n.Cond)
		if err != nil {
			return nil, err
		}

		body, err := decodeStatement(n.Body)
		if err != nil {
			return nil, err
		}

		return &While{Cond: cond, Body: body}, nil
	case "if":
		var n struct {
			Cond json.RawMessage `json:"cond"`
			Then json.RawMessage `json:"then"`
			Else json.RawMessage `json:"else"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		cond, err := decodeExpression(n.Cond)
		if err != nil {
			return nil, err
		}

		then, err := decodeStatement(n.Then)
		if err != nil {
			return nil, err
		}

		var elseStmt Statement

		if len(n.Else) > 0 && string(n.Else) != "null" {
			elseStmt, err = decodeStatement(n.Else)
			if err != nil {
				return nil, err
			}
		}

		return &IfThenElse{Cond: cond, Then: then, Else: elseStmt}, nil
	case "substitution":
		var n struct {
			Name   string            `json:"name"`
			Access []json.RawMessage `json:"access"`
			Rhe    json.RawMessage   `json:"rhe"`
			Op     string            `json:"op"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		access, err := decodeAccesses(n.Access)
		if err != nil {
			return nil, err
		}

		rhe, err := decodeExpression(n.Rhe)
		if err != nil {
			return nil, err
		}

		return &Substitution{Var: n.Name, Access: access, Rhe: rhe, Op: decodeAssignOp(n.Op)}, nil
	case "return":
		var n struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		v, err := decodeExpression(n.Value)
		if err != nil {
			return nil, err
		}

		return &Return{Value: v}, nil
	case "assert":
		var n struct {
			Arg json.RawMessage `json:"arg"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		arg, err := decodeExpression(n.Arg)
		if err != nil {
			return nil, err
		}

		return &Assert{Arg: arg}, nil
	case "log_call":
		var n struct {
			Args []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		args, err := decodeExpressions(n.Args)
		if err != nil {
			return nil, err
		}

		return &LogCall{Args: args}, nil
	case "constraint_equality":
		var n struct {
			Lhe json.RawMessage `json:"lhe"`
			Rhe json.RawMessage `json:"rhe"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		lhe, err := decodeExpression(n.Lhe)
		if err != nil {
			return nil, err
		}

		rhe, err := decodeExpression(n.Rhe)
		if err != nil {
			return nil, err
		}

		return &ConstraintEquality{Lhe: lhe, Rhe: rhe}, nil
	case "underscore_substitution":
		var n struct {
			Op  string          `json:"op"`
			Rhe json.RawMessage `json:"rhe"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		rhe, err := decodeExpression(n.Rhe)
		if err != nil {
			return nil, err
		}

		return &UnderscoreSubstitution{Op: decodeAssignOp(n.Op), Rhe: rhe}, nil
	default:
		return nil, fmt.Errorf("unknown statement kind %q", tag.Kind)
	}
}

func decodeExpressions(raw []json.RawMessage) ([]Expression, error) {
	exprs := make([]Expression, len(raw))

	for i, r := range raw {
		e, err := decodeExpression(r)
		if err != nil {
			return nil, err
		}

		exprs[i] = e
	}

	return exprs, nil
}

var infixOpcodes = map[string]InfixOpcode{
	"mul": OpMul, "div": OpDiv, "add": OpAdd, "sub": OpSub, "pow": OpPow,
	"int_div": OpIntDiv, "mod": OpMod, "shl": OpShiftL, "shr": OpShiftR,
	"le": OpLesserEq, "ge": OpGreaterEq, "lt": OpLesser, "gt": OpGreater,
	"eq": OpEq, "ne": OpNotEq, "or": OpBoolOr, "and": OpBoolAnd,
	"bit_or": OpBitOr, "bit_and": OpBitAnd, "bit_xor": OpBitXor,
}

func decodeExpression(raw json.RawMessage) (Expression, error) {
	var tag taggedNode
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}

	switch tag.Kind {
	case "number":
		var n struct {
			Value uint64 `json:"value"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		return &Number{Value: n.Value}, nil
	case "variable":
		var n struct {
			Name   string            `json:"name"`
			Access []json.RawMessage `json:"access"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		access, err := decodeAccesses(n.Access)
		if err != nil {
			return nil, err
		}

		return &Variable{Name: n.Name, Access: access}, nil
	case "infix":
		var n struct {
			Op  string          `json:"op"`
			Lhs json.RawMessage `json:"lhs"`
			Rhs json.RawMessage `json:"rhs"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		op, ok := infixOpcodes[n.Op]
		if !ok {
			return nil, fmt.Errorf("unknown infix operator %q", n.Op)
		}

		lhs, err := decodeExpression(n.Lhs)
		if err != nil {
			return nil, err
		}

		rhs, err := decodeExpression(n.Rhs)
		if err != nil {
			return nil, err
		}

		return &InfixOp{Op: op, Lhs: lhs, Rhs: rhs}, nil
	case "call":
		var n struct {
			ID   string            `json:"id"`
			Args []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		args, err := decodeExpressions(n.Args)
		if err != nil {
			return nil, err
		}

		return &Call{ID: n.ID, Args: args}, nil
	case "prefix":
		var n struct {
			Op  string          `json:"op"`
			Rhe json.RawMessage `json:"rhe"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		op, ok := infixOpcodes[n.Op]
		if !ok {
			return nil, fmt.Errorf("unknown prefix operator %q", n.Op)
		}

		rhe, err := decodeExpression(n.Rhe)
		if err != nil {
			return nil, err
		}

		return &PrefixOp{Op: op, Rhe: rhe}, nil
	case "inline_switch":
		var n struct {
			Cond    json.RawMessage `json:"cond"`
			IfTrue  json.RawMessage `json:"if_true"`
			IfFalse json.RawMessage `json:"if_false"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		cond, err := decodeExpression(n.Cond)
		if err != nil {
			return nil, err
		}

		ifTrue, err := decodeExpression(n.IfTrue)
		if err != nil {
			return nil, err
		}

		ifFalse, err := decodeExpression(n.IfFalse)
		if err != nil {
			return nil, err
		}

		return &InlineSwitch{Cond: cond, IfTrue: ifTrue, IfFalse: ifFalse}, nil
	case "array_inline":
		var n struct {
			Values []json.RawMessage `json:"values"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		values, err := decodeExpressions(n.Values)
		if err != nil {
			return nil, err
		}

		return &ArrayInLine{Values: values}, nil
	case "tuple":
		var n struct {
			Values []json.RawMessage `json:"values"`
		}
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}

		values, err := decodeExpressions(n.Values)
		if err != nil {
			return nil, err
		}

		return &Tuple{Values: values}, nil
	default:
		return nil, fmt.Errorf("unknown expression kind %q", tag.Kind)
	}
}

func decodeAccesses(raw []json.RawMessage) ([]Access, error) {
	accesses := make([]Access, len(raw))

	for i, r := range raw {
		var tag taggedNode
		if err := json.Unmarshal(r, &tag); err != nil {
			return nil, err
		}

		switch tag.Kind {
		case "array":
			var n struct {
				Index json.RawMessage `json:"index"`
			}
			if err := json.Unmarshal(r, &n); err != nil {
				return nil, err
			}

			idx, err := decodeExpression(n.Index)
			if err != nil {
				return nil, err
			}

			accesses[i] = &ArrayAccess{Index: idx}
		case "component":
			var n struct {
				Signal string `json:"signal"`
			}
			if err := json.Unmarshal(r, &n); err != nil {
				return nil, err
			}

			accesses[i] = &ComponentAccess{Signal: n.Signal}
		default:
			return nil, fmt.Errorf("unknown access kind %q", tag.Kind)
		}
	}

	return accesses, nil
}

func decodeItemType(s string) (ItemType, error) {
	switch s {
	case "variable":
		return Variable, nil
	case "signal":
		return Signal, nil
	case "component":
		return Component, nil
	default:
		return 0, fmt.Errorf("unknown item type %q", s)
	}
}

func decodeAssignOp(s string) AssignOp {
	switch s {
	case "var":
		return AssignVar
	case "signal":
		return AssignConstraintSignal
	default:
		return AssignOther
	}
}
