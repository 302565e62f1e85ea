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
package runtime

import "errors"

// Errors a Context/Runtime operation can return. Scope push/pop
// imbalance is a programmer error and panics instead (see
// Runtime.PopContext); it is detectable by construction and never
// propagated as a typed error.
var (
	ErrAlreadyDeclared = errors.New("item already declared in this frame")
	ErrUnknownItem     = errors.New("item not declared in any reachable frame")
	ErrNotAVariable    = errors.New("item is not a variable")
	ErrNotASignal      = errors.New("item is not a signal")
	ErrNotAComponent   = errors.New("item is not a component")
	ErrOutOfBounds     = errors.New("array index out of bounds")
)
