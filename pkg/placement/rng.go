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

import (
	"math/rand"
	"time"
)

// newRNG returns a seeded *rand.Rand: the caller-supplied seed when one
// is given, or a process-entropy seed derived from the current time
// otherwise. The same seed always reproduces the same sequence of draws.
func newRNG(opts Options) *rand.Rand {
	if opts.RNGSeed != nil {
		return rand.New(rand.NewSource(*opts.RNGSeed)) //nolint:gosec
	}
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
}
