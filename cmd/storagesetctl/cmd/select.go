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

	"github.com/logrusorgru/aurora/v4"
	"github.com/spf13/cobra"

	"github.com/logcluster/storageset/internal/config"
	"github.com/logcluster/storageset/internal/fixture"
	"github.com/logcluster/storageset/pkg/flatselect"
	"github.com/logcluster/storageset/pkg/placement"
	"github.com/logcluster/storageset/pkg/validator"
)

func newSelectCmd() *cobra.Command {
	var logID string
	var minPreferredFraction float64

	selectCmd := &cobra.Command{
		Use:   "select <cluster.yaml>",
		Short: "Runs the selector end to end and prints the resulting decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSelect(args[0], logID, minPreferredFraction)
		},
	}

	selectCmd.Flags().StringVar(&logID, "log-id", "", "Log group id to select a storage set for (required)")
	selectCmd.Flags().Float64Var(&minPreferredFraction, "min-preferred-fraction", 0,
		"Minimum fraction of the chosen set that must be preferred (positive-weight) nodes")
	_ = selectCmd.MarkFlagRequired("log-id")

	return selectCmd
}

func runSelect(path, logID string, minPreferredFraction float64) error {
	cluster, err := fixture.Load(path)
	if err != nil {
		return err
	}
	lookup, err := cluster.Lookup()
	if err != nil {
		return err
	}

	cfg := config.Load(nil)
	var seed *int64
	if cfg.RNGSeed != 0 {
		seed = &cfg.RNGSeed
	}

	clusterCfg := placement.ClusterConfig{
		Nodes:     cluster.Snapshot(),
		LogGroups: lookup,
		Validator: validator.WeightAware{MinPreferredFraction: minPreferredFraction},
		Flat:      flatselect.Selector{},
	}

	decision := placement.Select(context.Background(), clusterCfg, logID, nil, placement.Options{RNGSeed: seed})
	printDecision(logID, decision)
	return nil
}

func printDecision(logID string, d placement.Decision) {
	switch d.Kind {
	case placement.DecisionFailed:
		fmt.Println(aurora.Red(fmt.Sprintf("FAILED  %s: %v", logID, d.Err)))
	case placement.DecisionKeep:
		fmt.Println(aurora.Green(fmt.Sprintf("KEEP    %s: %v", logID, d.Set)))
	case placement.DecisionNeedsChange:
		fmt.Println(aurora.Yellow(fmt.Sprintf("CHANGE  %s: %v", logID, d.Set)))
	}
}
