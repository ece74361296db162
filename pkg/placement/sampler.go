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
	"fmt"
	"math/rand"

	"github.com/logcluster/storageset/pkg/nodes"
)

// SampleFromDomain draws k distinct node indices from domainNodes without
// replacement, preferring positive-weight nodes over zero-weight ones:
// it fills the result from the preferred pool first and tops up from the
// fallback pool only when the preferred pool is short. Both pools are
// drawn from uniformly via a partial Fisher–Yates shuffle, so the result
// is exchangeable within each pool given the supplied rng.
func SampleFromDomain(rng *rand.Rand, domainNodes []int, k int, lookup nodes.Snapshot) ([]int, error) {
	if k == 0 {
		return nil, nil
	}

	all := lookup.Nodes()
	preferred := make([]int, 0, len(domainNodes))
	fallback := make([]int, 0, len(domainNodes))
	for _, idx := range domainNodes {
		n, ok := nodes.ByIndex(all, idx)
		if !ok {
			continue
		}
		if n.Preferred() {
			preferred = append(preferred, idx)
		} else {
			fallback = append(fallback, idx)
		}
	}

	if len(preferred)+len(fallback) < k {
		return nil, newError(ErrNotEnoughInDomain,
			fmt.Sprintf("domain has %d eligible nodes, need %d", len(preferred)+len(fallback), k), nil)
	}

	fromPreferred := k
	if fromPreferred > len(preferred) {
		fromPreferred = len(preferred)
	}
	result := partialShuffle(rng, preferred, fromPreferred)

	remaining := k - fromPreferred
	if remaining > 0 {
		result = append(result, partialShuffle(rng, fallback, remaining)...)
	}

	return result, nil
}

// partialShuffle returns k elements drawn uniformly without replacement
// from pool, via a partial Fisher–Yates shuffle. pool is not mutated: the
// shuffle runs over a local copy.
func partialShuffle(rng *rand.Rand, pool []int, k int) []int {
	if k <= 0 {
		return nil
	}
	work := make([]int, len(pool))
	copy(work, pool)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:k]
}
