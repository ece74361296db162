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

// Package loggroup models log-group attribute retrieval, an external
// collaborator from the selector's point of view: the selector only
// needs a log group's replication property and optional nodeset size.
package loggroup

import "github.com/logcluster/storageset/pkg/location"

// ScopeFactor pairs a replication scope with the replica count required
// across that scope.
type ScopeFactor struct {
	Scope  location.NodeLocationScope
	Factor int
}

// ReplicationProperty is the ordered set of (scope, factor) requirements
// attached to a log group.
type ReplicationProperty struct {
	Entries []ScopeFactor
}

// SmallestScope returns the entry with the finest (smallest) scope, which
// is the only entry this selector's core algorithm consults. The bool
// result is false when the property carries no entries.
func (rp ReplicationProperty) SmallestScope() (ScopeFactor, bool) {
	if len(rp.Entries) == 0 {
		return ScopeFactor{}, false
	}
	smallest := rp.Entries[0]
	for _, e := range rp.Entries[1:] {
		if e.Scope < smallest.Scope {
			smallest = e
		}
	}
	return smallest, true
}

// LogGroup is the subset of log-group attributes the selector depends on.
type LogGroup struct {
	ID                   string
	Replication          ReplicationProperty
	RequestedNodesetSize *int
}

// NodesetSize returns the operator-requested nodeset size, if any.
func (g LogGroup) NodesetSize() *int {
	return g.RequestedNodesetSize
}

// Lookup resolves a log group by id. A real implementation consults the
// cluster's logs configuration; this package only defines the contract.
type Lookup interface {
	GetLogGroup(logID string) (LogGroup, bool)
}

// StaticLookup is a Lookup backed by an in-memory map, used by tests,
// fixtures, and the CLI.
type StaticLookup map[string]LogGroup

// GetLogGroup implements Lookup.
func (m StaticLookup) GetLogGroup(logID string) (LogGroup, bool) {
	g, ok := m[logID]
	return g, ok
}
