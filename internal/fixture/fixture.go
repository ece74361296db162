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

// Package fixture reads and writes YAML cluster snapshots for the CLI:
// the node list and log-group definitions that pkg/placement needs to
// plan and select a storage set, plus a synthetic generator for
// exercising the selector without a live cluster.
package fixture

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/sethvargo/go-password/password"
	"gopkg.in/yaml.v3"

	"github.com/logcluster/storageset/pkg/location"
	"github.com/logcluster/storageset/pkg/loggroup"
	"github.com/logcluster/storageset/pkg/nodes"
)

// NodeFixture is the YAML-serializable form of a nodes.NodeDescriptor.
type NodeFixture struct {
	Index    int      `yaml:"index"`
	Address  string   `yaml:"address"`
	Location []string `yaml:"location"`
	Included bool     `yaml:"included"`
	Weight   float64  `yaml:"weight"`
	// JoinToken is a synthetic credential stamped on generated fixtures;
	// real snapshots leave it empty since the selector never reads it.
	JoinToken string `yaml:"joinToken,omitempty"`
}

// ScopeFactorFixture is the YAML form of a loggroup.ScopeFactor.
type ScopeFactorFixture struct {
	Scope  string `yaml:"scope"`
	Factor int    `yaml:"factor"`
}

// LogGroupFixture is the YAML form of a loggroup.LogGroup.
type LogGroupFixture struct {
	ID                   string               `yaml:"id"`
	Replication          []ScopeFactorFixture `yaml:"replication"`
	RequestedNodesetSize *int                 `yaml:"requestedNodesetSize,omitempty"`
}

// Cluster is the top-level document a cluster snapshot YAML file holds.
type Cluster struct {
	Nodes     []NodeFixture     `yaml:"nodes"`
	LogGroups []LogGroupFixture `yaml:"logGroups"`
}

// Load reads and parses a cluster snapshot from path.
func Load(path string) (*Cluster, error) {
	raw, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("reading cluster fixture: %w", err)
	}
	var c Cluster
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parsing cluster fixture: %w", err)
	}
	return &c, nil
}

// Save writes c to path as YAML.
func Save(path string, c *Cluster) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding cluster fixture: %w", err)
	}
	return os.WriteFile(path, raw, 0o600)
}

// Snapshot converts the fixture into a live nodes.Snapshot.
func (c *Cluster) Snapshot() nodes.Snapshot {
	descriptors := make([]nodes.NodeDescriptor, 0, len(c.Nodes))
	for _, n := range c.Nodes {
		descriptors = append(descriptors, nodes.NodeDescriptor{
			Index:              n.Index,
			Address:            n.Address,
			Location:           location.NewNodeLocation(n.Location...),
			IncludedInNodesets: n.Included,
			Weight:             n.Weight,
		})
	}
	return nodes.NewStaticSnapshot(descriptors)
}

// Lookup converts the fixture's log groups into a live loggroup.Lookup.
func (c *Cluster) Lookup() (loggroup.StaticLookup, error) {
	out := make(loggroup.StaticLookup, len(c.LogGroups))
	for _, g := range c.LogGroups {
		entries := make([]loggroup.ScopeFactor, 0, len(g.Replication))
		for _, sf := range g.Replication {
			scope, err := location.ParseNodeLocationScope(sf.Scope)
			if err != nil {
				return nil, fmt.Errorf("log group %s: %w", g.ID, err)
			}
			entries = append(entries, loggroup.ScopeFactor{Scope: scope, Factor: sf.Factor})
		}
		out[g.ID] = loggroup.LogGroup{
			ID:                   g.ID,
			Replication:          loggroup.ReplicationProperty{Entries: entries},
			RequestedNodesetSize: g.RequestedNodesetSize,
		}
	}
	return out, nil
}

// Generate builds a synthetic cluster spread evenly across domainNames
// at RACK scope, with one log group ("synthetic-log") replicated 3 ways.
func Generate(rng *rand.Rand, nodesPerDomain int, domainNames []string) (*Cluster, error) {
	var nodeFixtures []NodeFixture
	index := 1
	for _, domain := range domainNames {
		for i := 0; i < nodesPerDomain; i++ {
			token, err := password.Generate(20, 6, 0, false, true)
			if err != nil {
				return nil, fmt.Errorf("generating join token: %w", err)
			}
			weight := 1.0
			if rng.Float64() < 0.1 {
				weight = 0
			}
			nodeFixtures = append(nodeFixtures, NodeFixture{
				Index:     index,
				Address:   fmt.Sprintf("%s.storage.internal:4440", uuid.New().String()),
				Location:  []string{fmt.Sprintf("node%d", index), domain, "row1", "cluster1", "dc1", "region1"},
				Included:  true,
				Weight:    weight,
				JoinToken: token,
			})
			index++
		}
	}

	size := len(domainNames) * 3
	return &Cluster{
		Nodes: nodeFixtures,
		LogGroups: []LogGroupFixture{
			{
				ID:                   "synthetic-log",
				Replication:          []ScopeFactorFixture{{Scope: location.RACK.String(), Factor: 3}},
				RequestedNodesetSize: &size,
			},
		},
	}, nil
}
