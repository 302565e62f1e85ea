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
package circuit

import "errors"

// ErrDuplicateSignal is returned by AddSignal when the given id has
// already been registered.
var ErrDuplicateSignal = errors.New("duplicate signal")

// ErrUnknownSignal is returned by AddGate/AddConnection when a
// referenced signal id was never registered.
var ErrUnknownSignal = errors.New("unknown signal")
