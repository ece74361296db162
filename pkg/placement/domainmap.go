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
	"sort"

	"github.com/logcluster/storageset/pkg/location"
	"github.com/logcluster/storageset/pkg/nodes"
)

// DomainMap groups eligible storage-node indices by the domain key they
// fall into at a given scope. Bucket order is insertion order, i.e.
// ascending node index, matching the deterministic configuration
// traversal order the facade relies on for reproducibility.
type DomainMap map[string][]int

// SortedKeys returns the domain keys in ascending lexical order, the
// deterministic iteration order required by the facade.
func (dm DomainMap) SortedKeys() []string {
	keys := make([]string, 0, len(dm))
	for k := range dm {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NumDomains returns the number of distinct domains.
func (dm DomainMap) NumDomains() int {
	return len(dm)
}

// MinDomainSize returns the size of the smallest domain, and false if the
// map is empty.
func (dm DomainMap) MinDomainSize() (int, bool) {
	min := -1
	for _, v := range dm {
		if min == -1 || len(v) < min {
			min = len(v)
		}
	}
	return min, min != -1
}

// ClusterSize returns the total number of eligible nodes across all
// domains.
func (dm DomainMap) ClusterSize() int {
	total := 0
	for _, v := range dm {
		total += len(v)
	}
	return total
}

// PruneAtSize returns a new DomainMap with every domain whose size equals
// size removed. The input map is not mutated; callers that need in-place
// pruning semantics should reassign their variable to the result.
func (dm DomainMap) PruneAtSize(size int) DomainMap {
	out := make(DomainMap, len(dm))
	for k, v := range dm {
		if len(v) == size {
			continue
		}
		out[k] = v
	}
	return out
}

// BuildDomainMap partitions the nodes of a cluster snapshot into domains
// at the given scope, per the eligibility and fail-fast rules of the
// Domain Map Builder: a node missing location data, or one whose
// location omits the requested scope, fails the whole build; an excluded
// or not-included-in-nodesets node is silently skipped.
func BuildDomainMap(snapshot nodes.Snapshot, scope location.NodeLocationScope, opts Options) (DomainMap, error) {
	dm := make(DomainMap)
	for _, n := range snapshot.Nodes() {
		if n.Location == nil || n.Location.IsEmpty() {
			return nil, newError(ErrMissingLocation,
				fmt.Sprintf("node %d has no location", n.Index), nil)
		}
		if !n.Location.HasLabelAt(scope) {
			return nil, newError(ErrScopeNotSpecified,
				fmt.Sprintf("node %d has no label at scope %s", n.Index, scope), nil)
		}
		if opts.excludes(n.Index) {
			continue
		}
		if !n.IncludedInNodesets {
			continue
		}
		key := n.Location.PrefixKey(scope)
		dm[key] = append(dm[key], n.Index)
	}
	return dm, nil
}
