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

// Package placement implements the cross-domain storage-set selector:
// given a cluster snapshot, a log group's replication requirement, and an
// optional previous storage set, it deterministically chooses a balanced
// subset of storage nodes that can host the log's replicas while
// honoring the cross-domain replication invariant.
package placement

import (
	"context"
	"time"

	"github.com/cloudnative-pg/machinery/pkg/log"

	"github.com/logcluster/storageset/pkg/location"
	"github.com/logcluster/storageset/pkg/loggroup"
	"github.com/logcluster/storageset/pkg/nodes"
)

// ClusterConfig bundles the external collaborators the facade consumes:
// a read-only node snapshot, a log-group lookup, a weight-aware
// validator, and a flat selector to delegate to for NODE-scope
// replication. None of these are owned or mutated by the selector.
type ClusterConfig struct {
	Nodes     nodes.Snapshot
	LogGroups loggroup.Lookup
	Validator Validator
	Flat      FlatSelector
}

// Select chooses a storage set for logID, or explains why it could not.
// It is a pure function of its arguments plus the rng seed carried in
// opts: identical inputs, including seed, always produce a
// byte-identical Decision.
func Select(ctx context.Context, cfg ClusterConfig, logID string, previous StorageSet, opts Options) Decision {
	start := time.Now()
	contextLogger := log.FromContext(ctx).WithValues("tag", "storageset", "logID", logID)
	decision := selectInternal(ctx, contextLogger, cfg, logID, previous, opts)

	decisionsTotal.WithLabelValues(decisionKindLabel(decision.Kind)).Inc()
	selectDuration.Observe(time.Since(start).Seconds())
	return decision
}

func selectInternal(
	ctx context.Context,
	contextLogger log.Logger,
	cfg ClusterConfig,
	logID string,
	previous StorageSet,
	opts Options,
) Decision {
	group, ok := cfg.LogGroups.GetLogGroup(logID)
	if !ok {
		return failed(newError(ErrNotFound, "log group "+logID+" not found", nil))
	}

	sf, ok := group.Replication.SmallestScope()
	if !ok {
		return failed(newError(ErrInvalidScope, "log group has no replication property", nil))
	}
	scope, factor := sf.Scope, sf.Factor

	if scope == location.NODE {
		if cfg.Flat == nil {
			return failed(newError(ErrFailed, "no flat selector configured for node-scope replication", nil))
		}
		d := cfg.Flat.FlatSelect(ctx, logID, cfg, previous, opts)
		if d.Kind == DecisionFailed {
			setLastError(d.Err)
		}
		return d
	}
	if scope >= location.ROOT {
		return failed(newError(ErrInvalidScope, "replication scope must be finer than ROOT", nil))
	}

	dm, err := BuildDomainMap(cfg.Nodes, scope, opts)
	if err != nil {
		return failed(err)
	}
	if dm.NumDomains() == 0 {
		return failed(newError(ErrNotEnoughInDomain, "no eligible domains at the requested scope", nil))
	}

	chosenSize, prunedMap, err := PlanSize(ctx, group.NodesetSize(), factor, dm, defaultAdvisoryLimiter())
	if err != nil {
		return failed(err)
	}

	numDomains := prunedMap.NumDomains()
	if numDomains == 0 {
		return failed(newError(ErrNotEnoughInDomain, "pruning left no domains to sample from", nil))
	}
	quota := chosenSize / numDomains

	rng := newRNG(opts)
	var indices []int
	for _, key := range prunedMap.SortedKeys() {
		sampled, sErr := SampleFromDomain(rng, prunedMap[key], quota, cfg.Nodes)
		if sErr != nil {
			contextLogger.Warning("domain could not supply its quota", "domain", key, "quota", quota)
			return failed(sErr)
		}
		indices = append(indices, sampled...)
	}

	result := newStorageSet(indices)

	if cfg.Validator == nil || !cfg.Validator.ValidStorageSet(cfg.Nodes.Nodes(), result, group.Replication) {
		return failed(newError(ErrInvalidWeights, "sampled storage set failed validation", nil))
	}

	if previous != nil && previous.Equal(result) {
		return keep(result)
	}
	return needsChange(result)
}
