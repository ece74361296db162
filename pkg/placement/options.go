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

import "github.com/logcluster/storageset/pkg/stringset"

// Options carries the caller-supplied knobs recognized by the selector.
// Unrecognized or absent fields take their documented defaults: no
// exclusions, an implementation-chosen rng seed.
type Options struct {
	// ExcludeNodes lists node indices that must never appear in the
	// resulting storage set.
	ExcludeNodes *stringset.Set[int]

	// RNGSeed, when non-nil, makes the domain sampler's draw
	// reproducible. When nil, a process-level entropy source seeds the
	// rng once per call.
	RNGSeed *int64
}

// excludes reports whether idx is excluded, tolerating a nil Options or
// nil ExcludeNodes set.
func (o Options) excludes(idx int) bool {
	return o.ExcludeNodes.Has(idx)
}
