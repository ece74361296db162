/*
Copyright The Storage Set Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.

SPDX-License-Identifier: Apache-2.0
*/

package placement

import "sync"

// lastErrorSlot is a legacy compatibility shim paralleling the returned
// Decision's Failed tag, for callers still wired to the older
// "check a sentinel after the call" convention. New code should use the
// returned Decision alone. Go has no goroutine-local storage, so this is
// a single process-wide slot guarded by a mutex; concurrent Select calls
// on different goroutines will race to set it and only the most recent
// failure is visible. It exists only to mirror the legacy calling
// convention described in the design notes, not as a recommended API.
var (
	lastErrorMu sync.Mutex
	lastError   error
)

func setLastError(err error) {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	lastError = err
}

// LastError returns the error recorded by the most recent failing Select
// call across the whole process, or nil if none has failed yet. A later
// successful call does not clear it; see ClearLastError.
func LastError() error {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	return lastError
}

// ClearLastError resets the sentinel. Callers that rely on LastError
// instead of the returned Decision should call this before invoking
// Select if they need to distinguish "no failure yet" from "a previous
// call failed".
func ClearLastError() {
	setLastError(nil)
}
