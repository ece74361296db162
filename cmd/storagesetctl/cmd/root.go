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

// Package cmd wires the storagesetctl subcommands.
package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/logrusorgru/aurora/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cloudnative-pg/machinery/pkg/log"

	"github.com/logcluster/storageset/internal/config"
	"github.com/logcluster/storageset/pkg/placement"
)

// NewRootCmd builds the top-level storagesetctl command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "storagesetctl",
		Short:        "Inspect and drive the cross-domain storage-set selector",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load(nil)
			log.SetLogLevel(cfg.LogLevel)

			if cfg.AdvisoryWindowSeconds > 0 {
				placement.SetAdvisoryWindow(time.Duration(cfg.AdvisoryWindowSeconds) * time.Second)
			}
			startMetricsServer(cmd, cfg.MetricsBindAddress)

			return configureColor(cmd)
		},
	}

	addColorFlag(rootCmd)
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// startMetricsServer registers the placement package's collectors and
// serves them at addr in the background. An empty addr disables the
// metrics server entirely, matching MetricsBindAddress's own doc comment.
func startMetricsServer(cmd *cobra.Command, addr string) {
	if addr == "" {
		return
	}

	placement.MustRegister(prometheus.DefaultRegisterer)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	contextLogger := log.FromContext(cmd.Context()).WithValues("tag", "storageset")
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			contextLogger.Error(err, "metrics server exited", "address", addr)
		}
	}()
}

func addColorFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String("color", "auto", "Control color output; one of 'always', 'auto', or 'never'")
}

func configureColor(cmd *cobra.Command) error {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}

	var shouldColorize bool
	switch colorFlag {
	case "always":
		shouldColorize = true
	case "never":
		shouldColorize = false
	case "auto":
		shouldColorize = term.IsTerminal(int(os.Stdout.Fd()))
	default:
		return fmt.Errorf("invalid value for --color: %s, must be one of 'always', 'auto', or 'never'", colorFlag)
	}

	aurora.DefaultColorizer = aurora.New(aurora.WithColors(shouldColorize))
	return nil
}
