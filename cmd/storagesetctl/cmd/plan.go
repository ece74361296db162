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
	"context"
	"fmt"

	"github.com/cheynewallace/tabby"
	"github.com/logrusorgru/aurora/v4"
	"github.com/spf13/cobra"

	"github.com/logcluster/storageset/internal/fixture"
	"github.com/logcluster/storageset/pkg/placement"
)

func newPlanCmd() *cobra.Command {
	var logID string

	planCmd := &cobra.Command{
		Use:   "plan <cluster.yaml>",
		Short: "Prints the domain map and planned size for a log group, without sampling",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPlan(args[0], logID)
		},
	}

	planCmd.Flags().StringVar(&logID, "log-id", "", "Log group id to plan for (required)")
	_ = planCmd.MarkFlagRequired("log-id")

	return planCmd
}

func runPlan(path, logID string) error {
	cluster, err := fixture.Load(path)
	if err != nil {
		return err
	}

	lookup, err := cluster.Lookup()
	if err != nil {
		return err
	}
	group, ok := lookup.GetLogGroup(logID)
	if !ok {
		return fmt.Errorf("log group %q not found in %s", logID, path)
	}

	sf, ok := group.Replication.SmallestScope()
	if !ok {
		return fmt.Errorf("log group %q has no replication property", logID)
	}

	snapshot := cluster.Snapshot()
	dm, err := placement.BuildDomainMap(snapshot, sf.Scope, placement.Options{})
	if err != nil {
		return err
	}

	chosenSize, prunedMap, err := placement.PlanSize(context.Background(), group.NodesetSize(), sf.Factor, dm, nil)
	if err != nil {
		return err
	}

	fmt.Println(aurora.Green(fmt.Sprintf("Plan for %s (scope %s, factor %d)", logID, sf.Scope, sf.Factor)))
	fmt.Printf("chosen size: %d across %d domains\n\n", chosenSize, prunedMap.NumDomains())

	table := tabby.New()
	table.AddHeader("Domain", "Nodes", "Contributing")
	for _, key := range dm.SortedKeys() {
		_, kept := prunedMap[key]
		status := "yes"
		if !kept {
			status = string(aurora.Red("pruned").String())
		}
		table.AddLine(key, len(dm[key]), status)
	}
	table.Print()

	return nil
}
