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

// Package flatselect implements the non-cross-domain selector used when
// a log group's replication scope is NODE: the entire eligible node pool
// is treated as a single domain. It exists so the cross-domain facade's
// contract — semantic equivalence in the scope==NODE case — has a
// concrete, swappable default implementation to delegate to.
package flatselect

import (
	"context"
	"math/rand"
	"time"

	"github.com/logcluster/storageset/pkg/loggroup"
	"github.com/logcluster/storageset/pkg/placement"
)

// Selector is a placement.FlatSelector treating every included, non-excluded
// node as belonging to a single domain.
type Selector struct{}

// eligibleNodes returns the indices of nodes that are candidates for
// selection: included in nodesets and not excluded by opts.
func eligibleNodes(cfg placement.ClusterConfig, opts placement.Options) []int {
	var out []int
	for _, n := range cfg.Nodes.Nodes() {
		if !n.IncludedInNodesets {
			continue
		}
		if opts.ExcludeNodes.Has(n.Index) {
			continue
		}
		out = append(out, n.Index)
	}
	return out
}

// FlatSize implements placement.FlatSelector. With a single domain, the
// "divisibility across domains" constraint is vacuous: any target
// between the replication factor and the pool size is usable as-is.
func (Selector) FlatSize(
	_ context.Context,
	_ string,
	cfg placement.ClusterConfig,
	sizeTarget *int,
	rp loggroup.ReplicationProperty,
	opts placement.Options,
) int {
	pool := len(eligibleNodes(cfg, opts))
	sf, _ := rp.SmallestScope()

	target := pool
	if sizeTarget != nil {
		target = *sizeTarget
	}
	if target < sf.Factor {
		target = sf.Factor
	}
	if target > pool {
		target = pool
	}
	return target
}

// FlatSelect implements placement.FlatSelector.
func (s Selector) FlatSelect(
	_ context.Context,
	logID string,
	cfg placement.ClusterConfig,
	previous placement.StorageSet,
	opts placement.Options,
) placement.Decision {
	group, ok := cfg.LogGroups.GetLogGroup(logID)
	if !ok {
		return placement.Decision{Kind: placement.DecisionFailed,
			Err: &placement.Error{Kind: placement.ErrNotFound, Msg: "log group " + logID + " not found"}}
	}

	pool := eligibleNodes(cfg, opts)
	size := s.FlatSize(context.Background(), logID, cfg, group.NodesetSize(), group.Replication, opts)
	if size > len(pool) {
		return placement.Decision{Kind: placement.DecisionFailed,
			Err: &placement.Error{Kind: placement.ErrNotEnoughInDomain, Msg: "eligible pool is smaller than the nodeset size"}}
	}

	rng := seededRNG(opts)
	chosen := drawWithoutReplacement(rng, pool, size)

	result := sortedCopy(chosen)

	if cfg.Validator != nil && !cfg.Validator.ValidStorageSet(cfg.Nodes.Nodes(), result, group.Replication) {
		return placement.Decision{Kind: placement.DecisionFailed,
			Err: &placement.Error{Kind: placement.ErrInvalidWeights, Msg: "sampled storage set failed validation"}}
	}

	if previous != nil && equalSets(previous, result) {
		return placement.Decision{Kind: placement.DecisionKeep, Set: result}
	}
	return placement.Decision{Kind: placement.DecisionNeedsChange, Set: result}
}

func seededRNG(opts placement.Options) *rand.Rand {
	if opts.RNGSeed != nil {
		return rand.New(rand.NewSource(*opts.RNGSeed)) //nolint:gosec
	}
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec
}

func drawWithoutReplacement(rng *rand.Rand, pool []int, k int) []int {
	work := make([]int, len(pool))
	copy(work, pool)
	if k > len(work) {
		k = len(work)
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(work)-i)
		work[i], work[j] = work[j], work[i]
	}
	return work[:k]
}

func sortedCopy(idx []int) placement.StorageSet {
	out := make([]int, len(idx))
	copy(out, idx)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return placement.StorageSet(out)
}

func equalSets(a, b placement.StorageSet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
