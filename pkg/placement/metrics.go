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

package placement

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics registered under the "storageset" namespace. These are the
// "observational ... stream" the core promises in lieu of doing any I/O
// itself: the selector never scrapes or pushes, it only updates local
// counters that an embedding service can register and expose.
var (
	decisionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storageset",
		Name:      "decisions_total",
		Help:      "Number of Select decisions, by outcome kind.",
	}, []string{"kind"})

	advisoriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storageset",
		Name:      "advisories_total",
		Help:      "Number of size-planner advisories emitted, by reason.",
	}, []string{"reason"})

	selectDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "storageset",
		Name:      "select_duration_seconds",
		Help:      "Duration of Select invocations.",
		Buckets:   prometheus.DefBuckets,
	})
)

// MustRegister registers this package's collectors with reg. Callers
// embedding the selector in a service with its own registry call this
// once at startup; it is never invoked automatically so that importing
// this package never has registration side effects.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(decisionsTotal, advisoriesTotal, selectDuration)
}

func decisionKindLabel(k DecisionKind) string {
	switch k {
	case DecisionKeep:
		return "keep"
	case DecisionNeedsChange:
		return "needs_change"
	default:
		return "failed"
	}
}
