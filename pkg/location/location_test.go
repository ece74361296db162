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

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NodeLocationScope", func() {
	It("orders scopes from finest to coarsest", func() {
		Expect(NODE < RACK).To(BeTrue())
		Expect(RACK < ROW).To(BeTrue())
		Expect(ROW < CLUSTER).To(BeTrue())
		Expect(CLUSTER < DATA_CENTER).To(BeTrue())
		Expect(DATA_CENTER < REGION).To(BeTrue())
		Expect(REGION < ROOT).To(BeTrue())
	})

	It("round-trips through String and ParseNodeLocationScope", func() {
		for s := NODE; s <= ROOT; s++ {
			parsed, err := ParseNodeLocationScope(s.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(s))
		}
	})

	It("rejects unknown scope names", func() {
		_, err := ParseNodeLocationScope("galaxy")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("NodeLocation", func() {
	It("is empty with no labels", func() {
		Expect(NewNodeLocation().IsEmpty()).To(BeTrue())
		var nilLoc *NodeLocation
		Expect(nilLoc.IsEmpty()).To(BeTrue())
	})

	It("reports whether a scope label is present", func() {
		loc := NewNodeLocation("node1", "rack1", "row1")
		Expect(loc.HasLabelAt(NODE)).To(BeTrue())
		Expect(loc.HasLabelAt(RACK)).To(BeTrue())
		Expect(loc.HasLabelAt(CLUSTER)).To(BeFalse())
	})

	It("derives a stable prefix key at a given scope", func() {
		a := NewNodeLocation("node1", "rack1", "row1")
		b := NewNodeLocation("node2", "rack1", "row1")
		c := NewNodeLocation("node3", "rack2", "row1")

		Expect(a.PrefixKey(RACK)).To(Equal(b.PrefixKey(RACK)))
		Expect(a.PrefixKey(RACK)).NotTo(Equal(c.PrefixKey(RACK)))
		Expect(a.PrefixKey(NODE)).NotTo(Equal(b.PrefixKey(NODE)))
	})

	It("validates that no scope above the requested one is missing", func() {
		complete := NewNodeLocation("node1", "rack1", "row1")
		Expect(complete.ValidateAgainstScope(RACK)).To(BeTrue())

		var withHole NodeLocation
		withHole.labels[NODE] = "node1"
		withHole.labels[ROW] = "row1"
		Expect(withHole.ValidateAgainstScope(RACK)).To(BeFalse())
	})

	It("renders a human readable path", func() {
		loc := NewNodeLocation("node1", "rack1", "row1")
		Expect(loc.String()).To(Equal("row1/rack1/node1"))
	})
})
