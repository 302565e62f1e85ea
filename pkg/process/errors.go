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

import "errors"

// Errors specific to statement/expression execution. Context-level
// errors (ErrAlreadyDeclared, ErrNotAVariable, ErrOutOfBounds, ...) and
// circuit-level errors (ErrDuplicateSignal, ErrUnknownSignal) propagate
// unchanged from pkg/runtime and pkg/circuit.
var (
	ErrUndefinedFunctionOrTemplate = errors.New("undefined function or template")
	ErrEmptyDataItem               = errors.New("read of an uninitialized variable")
	ErrOperationNotSupported       = errors.New("operation not supported")
	ErrParsingError                = errors.New("numeric literal out of range")
)

// OperationError reports an arithmetic fault, e.g. division by zero.
// It wraps a human-readable message the way the source interpreter
// does (OperationError(msg)).
type OperationError struct{ Msg string }

func (e *OperationError) Error() string { return e.Msg }

func opError(msg string) error { return &OperationError{Msg: msg} }
