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

// Package validator provides a reference implementation of the
// placement.Validator collaborator: the weight-aware check that decides
// whether a sampled storage set can actually support a replication
// property's factor once zero-weight nodes are accounted for.
package validator

import (
	"github.com/logcluster/storageset/pkg/loggroup"
	"github.com/logcluster/storageset/pkg/nodes"
	"github.com/logcluster/storageset/pkg/placement"
)

// WeightAware rejects a storage set when too few of its members carry
// positive weight to host the replication factor, mirroring the quorum
// coherence check the reference operator runs before allowing a
// failover: a candidate set is only as good as the number of members
// actually eligible to hold live data.
type WeightAware struct {
	// MinPreferredFraction is the minimum fraction (0, 1] of the whole
	// storage set that must be preferred (positive weight) nodes; the
	// required count is len(set)*MinPreferredFraction rounded down. A zero value defaults to requiring only that the
	// replication factor itself be coverable by preferred nodes overall.
	MinPreferredFraction float64
}

// ValidStorageSet implements placement.Validator.
func (v WeightAware) ValidStorageSet(
	all []nodes.NodeDescriptor,
	set placement.StorageSet,
	rp loggroup.ReplicationProperty,
) bool {
	sf, ok := rp.SmallestScope()
	if !ok || len(set) == 0 {
		return false
	}

	preferred := 0
	for _, idx := range set {
		n, found := nodes.ByIndex(all, idx)
		if !found {
			return false
		}
		if n.Preferred() {
			preferred++
		}
	}

	if preferred < sf.Factor {
		return false
	}

	if v.MinPreferredFraction > 0 {
		required := int(float64(len(set)) * v.MinPreferredFraction)
		if preferred < required {
			return false
		}
	}

	return true
}
