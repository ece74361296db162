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
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/cloudnative-pg/machinery/pkg/log"
)

// advisoryWindowBudget is the maximum number of advisories an
// AdvisoryLimiter will emit per window (spec: ≤10 per 10s).
const advisoryWindowBudget = 10

// AdvisoryLimiter rate-limits the Size Planner's observational advisory
// ("the caller's target was overridden"), emitted when the planner picks
// a size other than the one requested. It never suppresses errors: it
// only throttles this one observational message.
//
// The budget is reset on a cron schedule rather than a sliding window,
// matching the reference operator's own use of robfig/cron for
// time-driven resets (see its scheduled-backup controller).
type AdvisoryLimiter struct {
	mu      sync.Mutex
	emitted int

	sched *cron.Cron
}

// NewAdvisoryLimiter creates a limiter that resets its budget every
// window. The limiter's cron scheduler runs until Stop is called.
func NewAdvisoryLimiter(window time.Duration) *AdvisoryLimiter {
	l := &AdvisoryLimiter{sched: cron.New()}
	_, _ = l.sched.AddFunc(fmt.Sprintf("@every %s", window), l.reset)
	l.sched.Start()
	return l
}

func (l *AdvisoryLimiter) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.emitted = 0
}

// Stop releases the limiter's background cron goroutine.
func (l *AdvisoryLimiter) Stop() {
	l.sched.Stop()
}

var (
	defaultLimiterMu     sync.Mutex
	defaultLimiterInst   *AdvisoryLimiter
	defaultLimiterWindow = 10 * time.Second
)

// SetAdvisoryWindow configures the window used by the package-wide
// advisory limiter that Select falls back to when no *AdvisoryLimiter is
// passed explicitly. It only takes effect before that limiter has been
// constructed; call it during process startup, before the first Select.
func SetAdvisoryWindow(window time.Duration) {
	defaultLimiterMu.Lock()
	defer defaultLimiterMu.Unlock()
	if defaultLimiterInst == nil {
		defaultLimiterWindow = window
	}
}

// defaultAdvisoryLimiter lazily starts the package-wide advisory limiter
// used by Select, so importing this package never starts a background
// goroutine on its own.
func defaultAdvisoryLimiter() *AdvisoryLimiter {
	defaultLimiterMu.Lock()
	defer defaultLimiterMu.Unlock()
	if defaultLimiterInst == nil {
		defaultLimiterInst = NewAdvisoryLimiter(defaultLimiterWindow)
	}
	return defaultLimiterInst
}

// emit logs the advisory and counts it against the budget, returning
// false without logging once the window's budget is exhausted. A nil
// receiver always emits, unthrottled — used where no limiter was wired.
func (l *AdvisoryLimiter) emit(ctx context.Context, chosenSize int, reason string) bool {
	contextLogger := log.FromContext(ctx).WithValues("tag", "storageset")

	if l == nil {
		contextLogger.Warning("planner overrode requested nodeset size",
			"chosenSize", chosenSize, "reason", reason)
		advisoriesTotal.WithLabelValues(reason).Inc()
		return true
	}

	l.mu.Lock()
	if l.emitted >= advisoryWindowBudget {
		l.mu.Unlock()
		return false
	}
	l.emitted++
	l.mu.Unlock()

	contextLogger.Warning("planner overrode requested nodeset size",
		"chosenSize", chosenSize, "reason", reason)
	advisoriesTotal.WithLabelValues(reason).Inc()
	return true
}
