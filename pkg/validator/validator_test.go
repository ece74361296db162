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

package validator

import (
	"github.com/logcluster/storageset/pkg/location"
	"github.com/logcluster/storageset/pkg/loggroup"
	"github.com/logcluster/storageset/pkg/nodes"
	"github.com/logcluster/storageset/pkg/placement"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WeightAware", func() {
	rp := loggroup.ReplicationProperty{Entries: []loggroup.ScopeFactor{
		{Scope: location.RACK, Factor: 2},
	}}

	It("accepts a set with enough preferred nodes", func() {
		all := []nodes.NodeDescriptor{
			{Index: 1, Weight: 1},
			{Index: 2, Weight: 1},
			{Index: 3, Weight: 0},
		}
		ok := WeightAware{}.ValidStorageSet(all, placement.StorageSet{1, 2, 3}, rp)
		Expect(ok).To(BeTrue())
	})

	It("rejects a set with too few preferred nodes", func() {
		all := []nodes.NodeDescriptor{
			{Index: 1, Weight: 1},
			{Index: 2, Weight: 0},
			{Index: 3, Weight: 0},
		}
		ok := WeightAware{}.ValidStorageSet(all, placement.StorageSet{1, 2, 3}, rp)
		Expect(ok).To(BeFalse())
	})

	It("rejects an empty set", func() {
		ok := WeightAware{}.ValidStorageSet(nil, placement.StorageSet{}, rp)
		Expect(ok).To(BeFalse())
	})

	It("enforces MinPreferredFraction when set", func() {
		all := []nodes.NodeDescriptor{
			{Index: 1, Weight: 1},
			{Index: 2, Weight: 1},
			{Index: 3, Weight: 0},
			{Index: 4, Weight: 0},
		}
		strict := WeightAware{MinPreferredFraction: 0.75}
		Expect(strict.ValidStorageSet(all, placement.StorageSet{1, 2, 3, 4}, rp)).To(BeFalse())

		lenient := WeightAware{MinPreferredFraction: 0.5}
		Expect(lenient.ValidStorageSet(all, placement.StorageSet{1, 2, 3, 4}, rp)).To(BeTrue())
	})
})
