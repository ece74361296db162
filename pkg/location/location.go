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

package location

import "strings"

// NodeLocation is an ordered tuple of labels aligned to the scope ladder,
// indexed by NodeLocationScope. A label may be empty when the location is
// partial; labels at indices beyond what the operator configured are left
// as the zero value.
type NodeLocation struct {
	labels [ROOT]string
}

// NewNodeLocation builds a location from labels given finest-to-coarsest,
// i.e. labels[NODE], labels[RACK], labels[ROW], ...
func NewNodeLocation(labels ...string) *NodeLocation {
	loc := &NodeLocation{}
	for i, l := range labels {
		if i >= len(loc.labels) {
			break
		}
		loc.labels[i] = l
	}
	return loc
}

// IsEmpty reports whether no label has been set at any scope.
func (l *NodeLocation) IsEmpty() bool {
	if l == nil {
		return true
	}
	for _, v := range l.labels {
		if v != "" {
			return false
		}
	}
	return true
}

// HasLabelAt reports whether a non-empty label is present at scope s.
func (l *NodeLocation) HasLabelAt(s NodeLocationScope) bool {
	if l == nil || s < NODE || int(s) >= len(l.labels) {
		return false
	}
	return l.labels[s] != ""
}

// labelAt returns the raw label at scope s, which may be empty.
func (l *NodeLocation) labelAt(s NodeLocationScope) string {
	if l == nil || s < NODE || int(s) >= len(l.labels) {
		return ""
	}
	return l.labels[s]
}

// PrefixKey returns a stable string key identifying the domain a node
// belongs to at scope s: the concatenation of every label from s up to
// the coarsest configured scope. Two nodes share a domain at scope s iff
// their PrefixKey(s) values are equal.
func (l *NodeLocation) PrefixKey(s NodeLocationScope) string {
	var b strings.Builder
	for scope := s; scope < ROOT; scope++ {
		if scope != s {
			b.WriteByte('/')
		}
		b.WriteString(l.labelAt(scope))
	}
	return b.String()
}

// ValidateAgainstScope reports whether every scope from s up to the
// coarsest populated label is populated, i.e. the label at s is present
// and the location has no "hole" above it. Empty labels above the
// coarsest populated one are allowed. This mirrors the
// original LogDevice source's location-well-formedness check, which the
// distilled spec does not mention but also does not forbid.
func (l *NodeLocation) ValidateAgainstScope(s NodeLocationScope) bool {
	if l == nil {
		return false
	}
	top := ROOT - 1
	for top > s && l.labelAt(top) == "" {
		top--
	}
	for scope := s; scope <= top; scope++ {
		if l.labelAt(scope) == "" {
			return false
		}
	}
	return true
}

// String renders the location as a slash-separated path from the
// coarsest populated scope down to NODE, for diagnostics.
func (l *NodeLocation) String() string {
	if l == nil {
		return "<no location>"
	}
	parts := make([]string, 0, len(l.labels))
	for scope := ROOT - 1; scope >= NODE; scope-- {
		if v := l.labelAt(scope); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "<empty>"
	}
	return strings.Join(parts, "/")
}
