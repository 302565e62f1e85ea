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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleArchive = `{
  "functions": {
    "square": {
      "params": ["n"],
      "body": [
        {"kind": "return", "value":
          {"kind": "infix", "op": "mul", "lhs": {"kind": "variable", "name": "n"}, "rhs": {"kind": "variable", "name": "n"}}
        }
      ]
    }
  },
  "templates": {
    "Main": {
      "params": [],
      "body": [
        {"kind": "declaration", "type": "signal", "name": "x"},
        {"kind": "declaration", "type": "signal", "name": "y"},
        {"kind": "substitution", "name": "y", "op": "signal", "rhe":
          {"kind": "infix", "op": "add", "lhs": {"kind": "variable", "name": "x"}, "rhs": {"kind": "number", "value": 1}}
        }
      ],
      "inputs": ["x"],
      "outputs": ["y"]
    }
  }
}`

func TestDecodeArchive(t *testing.T) {
	archive, err := DecodeArchive([]byte(sampleArchive))
	require.NoError(t, err)

	assert.True(t, archive.ContainsFunction("square"))
	assert.True(t, archive.ContainsTemplate("Main"))

	f := archive.GetFunctionData("square")
	assert.Equal(t, []string{"n"}, f.ParamNames())
	require.Len(t, f.Body(), 1)

	ret, ok := f.Body()[0].(*Return)
	require.True(t, ok)

	infix, ok := ret.Value.(*InfixOp)
	require.True(t, ok)
	assert.Equal(t, OpMul, infix.Op)

	tpl := archive.GetTemplateData("Main")
	require.Len(t, tpl.Inputs(), 1)
	require.Len(t, tpl.Outputs(), 1)
	assert.Equal(t, "x", tpl.Inputs()[0].Name)
	assert.Equal(t, "y", tpl.Outputs()[0].Name)
	require.Len(t, tpl.Body(), 3)
}

func TestDecodeArchiveUnknownKind(t *testing.T) {
	_, err := DecodeArchive([]byte(`{"functions":{"f":{"params":[],"body":[{"kind":"bogus"}]}}}`))
	assert.Error(t, err)
}
