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

import "context"

// planResult bundles the outcome of one planning iteration, kept
// internal because only PlanSize's final, best-so-far answer is ever
// observed by a caller.
type planResult struct {
	size int
	dm   DomainMap
}

// PlanSize resolves the final nodeset size and prunes the domain map when
// a handful of under-populated domains would otherwise bottleneck the
// result. See spec §4.2: the planner returns the largest per-domain quota
// q such that q·D satisfies divisibility, q·D ≥ replicationFactor,
// q·D ≤ cluster size, and q ≤ the smallest domain's size — pruning
// domains at the minimum size and retrying when doing so is worth more
// than one extra row across the remaining domains.
//
// target may be nil, meaning "use the full cluster size". advisory may be
// nil, meaning advisories are emitted unthrottled (see AdvisoryLimiter).
func PlanSize(ctx context.Context, target *int, replicationFactor int, dm DomainMap, advisory *AdvisoryLimiter) (int, DomainMap, error) {
	current := dm
	var best planResult
	haveBest := false

	for {
		d := current.NumDomains()
		if d == 0 {
			if !haveBest {
				return 0, nil, newError(ErrFailed, "no domains remain to plan over", nil)
			}
			return best.size, best.dm, nil
		}

		cluster := current.ClusterSize()
		min, _ := current.MinDomainSize()

		t := cluster
		if target != nil {
			t = *target
		}

		valid, reason := validTarget(t, replicationFactor, d, cluster, min)

		var chosen int
		var prune bool
		if valid {
			chosen = t
		} else {
			qMin := ceilDiv(replicationFactor, d)
			qMax := cluster / d
			q := roundDiv(t, d)
			if q < qMin {
				q = qMin
			}
			if q > qMax {
				// Degenerate case (e.g. replicationFactor > cluster) can
				// make qMin > qMax; qMax still wins here.
				q = qMax
			}
			if q > min {
				q = min
				prune = true
			}
			chosen = q * d
			advisory.emit(ctx, chosen, reason)
		}

		if !haveBest || chosen > best.size+d {
			best = planResult{size: chosen, dm: current}
			haveBest = true
		}

		if !prune {
			return best.size, best.dm, nil
		}

		current = current.PruneAtSize(min)
	}
}

// validTarget reports whether t is usable as-is, and if not, the single
// highest-priority reason it was rejected: non-divisible, too small, too
// large, then small-domain-bottleneck.
func validTarget(t, replicationFactor, numDomains, cluster, minDomainSize int) (bool, string) {
	switch {
	case t%numDomains != 0:
		return false, "target size is not a multiple of the domain count"
	case t < replicationFactor:
		return false, "target size is smaller than the replication factor"
	case t > cluster:
		return false, "target size is larger than the eligible cluster"
	case t > minDomainSize*numDomains:
		return false, "a small domain would bottleneck the requested size"
	default:
		return true, ""
	}
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// roundDiv computes round(a/b) using integer arithmetic, rounding .5
// upward, for non-negative a and positive b.
func roundDiv(a, b int) int {
	return (a + b/2) / b
}

