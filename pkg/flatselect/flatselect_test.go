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

package flatselect_test

import (
	"context"
	"fmt"

	"github.com/logcluster/storageset/pkg/flatselect"
	"github.com/logcluster/storageset/pkg/loggroup"
	"github.com/logcluster/storageset/pkg/nodes"
	"github.com/logcluster/storageset/pkg/placement"
	"github.com/logcluster/storageset/pkg/validator"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func flatCluster(n int) nodes.Snapshot {
	var all []nodes.NodeDescriptor
	for i := 1; i <= n; i++ {
		all = append(all, nodes.NodeDescriptor{
			Index:              i,
			Address:            fmt.Sprintf("node-%d", i),
			IncludedInNodesets: true,
			Weight:             1,
		})
	}
	return nodes.NewStaticSnapshot(all)
}

func intPtr(v int) *int { return &v }

func rpWithFactor(factor int) loggroup.ReplicationProperty {
	return loggroup.ReplicationProperty{Entries: []loggroup.ScopeFactor{{Scope: 0, Factor: factor}}}
}

var _ = Describe("Selector", func() {
	seed := int64(55)

	cfgFor := func(n, factor int, target *int) placement.ClusterConfig {
		return placement.ClusterConfig{
			Nodes: flatCluster(n),
			LogGroups: loggroup.StaticLookup{
				"log1": {
					ID:                   "log1",
					Replication:          rpWithFactor(factor),
					RequestedNodesetSize: target,
				},
			},
			Validator: validator.WeightAware{},
			Flat:      flatselect.Selector{},
		}
	}

	It("selects exactly the requested size from the single pool", func() {
		cfg := cfgFor(10, 2, intPtr(4))
		d := flatselect.Selector{}.FlatSelect(context.Background(), "log1", cfg, nil, placement.Options{RNGSeed: &seed})
		Expect(d.Kind).To(Equal(placement.DecisionNeedsChange))
		Expect(d.Set).To(HaveLen(4))
	})

	It("clamps the target up to the replication factor when set too small", func() {
		cfg := cfgFor(10, 3, intPtr(1))
		size := flatselect.Selector{}.FlatSize(context.Background(), "log1", cfg, intPtr(1), rpWithFactor(3), placement.Options{})
		Expect(size).To(Equal(3))
	})

	It("clamps the target down to the pool size when oversized", func() {
		cfg := cfgFor(5, 2, nil)
		size := flatselect.Selector{}.FlatSize(context.Background(), "log1", cfg, intPtr(100), rpWithFactor(2), placement.Options{})
		Expect(size).To(Equal(5))
	})

	It("is reproducible given the same seed", func() {
		cfg := cfgFor(10, 2, intPtr(5))
		a := flatselect.Selector{}.FlatSelect(context.Background(), "log1", cfg, nil, placement.Options{RNGSeed: &seed})
		b := flatselect.Selector{}.FlatSelect(context.Background(), "log1", cfg, nil, placement.Options{RNGSeed: &seed})
		Expect(a.Set).To(Equal(b.Set))
	})

	It("returns Keep when the freshly drawn set equals previous", func() {
		cfg := cfgFor(10, 2, intPtr(5))
		first := flatselect.Selector{}.FlatSelect(context.Background(), "log1", cfg, nil, placement.Options{RNGSeed: &seed})
		second := flatselect.Selector{}.FlatSelect(context.Background(), "log1", cfg, first.Set, placement.Options{RNGSeed: &seed})
		Expect(second.Kind).To(Equal(placement.DecisionKeep))
	})
})
