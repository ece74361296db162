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

// Package nodes models the cluster-configuration snapshot consumed by the
// selector: a read-only, ascending-index enumeration of storage nodes.
// Loading, parsing, and validating that snapshot from a real configuration
// source is an external concern (see pkg/nodes.Snapshot); this package
// only defines the shape the selector depends on, plus an in-memory
// implementation used by tests, fixtures, and the CLI.
package nodes

import "github.com/logcluster/storageset/pkg/location"

// NodeDescriptor describes one storage node as seen by the selector.
type NodeDescriptor struct {
	Index              int
	Address            string
	Location           *location.NodeLocation
	IncludedInNodesets bool
	Weight             float64
}

// Preferred reports whether the node should be drawn from the preferred
// pool during sampling (positive weight) as opposed to the fallback pool
// (zero weight).
func (n NodeDescriptor) Preferred() bool {
	return n.Weight > 0
}

// Snapshot enumerates the nodes of a cluster configuration, in ascending
// index order, as a read-only view. Implementations are expected to be
// safe for concurrent use by multiple selector invocations.
type Snapshot interface {
	Nodes() []NodeDescriptor
}

// StaticSnapshot is a Snapshot backed by an in-memory slice, sorted by
// index at construction time. It is the reference implementation used by
// tests, fixtures, and the CLI's YAML loader.
type StaticSnapshot struct {
	nodes []NodeDescriptor
}

// NewStaticSnapshot builds a StaticSnapshot from the given descriptors,
// sorting them by ascending index.
func NewStaticSnapshot(nodeList []NodeDescriptor) *StaticSnapshot {
	sorted := make([]NodeDescriptor, len(nodeList))
	copy(sorted, nodeList)
	insertionSortByIndex(sorted)
	return &StaticSnapshot{nodes: sorted}
}

// Nodes implements Snapshot.
func (s *StaticSnapshot) Nodes() []NodeDescriptor {
	return s.nodes
}

// insertionSortByIndex sorts in place by ascending Index.
func insertionSortByIndex(nodeList []NodeDescriptor) {
	for i := 1; i < len(nodeList); i++ {
		for j := i; j > 0 && nodeList[j-1].Index > nodeList[j].Index; j-- {
			nodeList[j-1], nodeList[j] = nodeList[j], nodeList[j-1]
		}
	}
}

// ByIndex returns the descriptor for the given node index, if present.
func ByIndex(all []NodeDescriptor, index int) (NodeDescriptor, bool) {
	for _, n := range all {
		if n.Index == index {
			return n, true
		}
	}
	return NodeDescriptor{}, false
}
