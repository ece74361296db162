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

package config

// Data holds the CLI's tunables, loadable from the environment with
// compiled-in defaults.
type Data struct {
	// RNGSeed seeds the selector's sampler when non-zero. A zero value
	// tells the CLI to use an implementation-chosen seed.
	RNGSeed int64 `json:"rngSeed" env:"STORAGESET_RNG_SEED"`

	// AdvisoryWindowSeconds is the length, in seconds, of the window over
	// which the size planner's advisories (of every reason together) are
	// capped at a fixed budget.
	AdvisoryWindowSeconds int `json:"advisoryWindowSeconds" env:"STORAGESET_ADVISORY_WINDOW_SECONDS"`

	// MetricsBindAddress is where the Prometheus registry is served, in
	// host:port form. Empty disables the metrics server.
	MetricsBindAddress string `json:"metricsBindAddress" env:"STORAGESET_METRICS_BIND_ADDRESS"`

	// LogLevel controls the verbosity of the structured logger.
	LogLevel string `json:"logLevel" env:"STORAGESET_LOG_LEVEL"`
}

// defaultData is the baseline Data used whenever the environment and an
// optional overrides map leave a field unset.
var defaultData = Data{
	AdvisoryWindowSeconds: 10,
	MetricsBindAddress:    "",
	LogLevel:              "info",
}

// Load builds a Data from overrides and the process environment,
// falling back to defaultData for anything left unset or malformed.
func Load(overrides map[string]string) *Data {
	data := &Data{}
	ReadConfigMap(data, &defaultData, overrides, OSEnvironment{})
	return data
}
