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

package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/logcluster/storageset/internal/fixture"
)

func newGenerateCmd() *cobra.Command {
	var nodesPerDomain int
	var domainCount int
	var seed int64
	var out string

	generateCmd := &cobra.Command{
		Use:   "generate <output.yaml>",
		Short: "Writes a synthetic cluster snapshot fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			out = args[0]
			return runGenerate(out, nodesPerDomain, domainCount, seed)
		},
	}

	generateCmd.Flags().IntVar(&nodesPerDomain, "nodes-per-domain", 8, "Number of nodes to generate per domain")
	generateCmd.Flags().IntVar(&domainCount, "domains", 3, "Number of racks to generate")
	generateCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "Seed for the synthetic weight assignment")

	return generateCmd
}

func runGenerate(out string, nodesPerDomain, domainCount int, seed int64) error {
	domainNames := make([]string, domainCount)
	for i := range domainNames {
		domainNames[i] = fmt.Sprintf("rack%d", i+1)
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec
	cluster, err := fixture.Generate(rng, nodesPerDomain, domainNames)
	if err != nil {
		return err
	}

	if err := fixture.Save(out, cluster); err != nil {
		return err
	}
	fmt.Printf("wrote %d nodes across %d domains to %s\n", nodesPerDomain*domainCount, domainCount, out)
	return nil
}
