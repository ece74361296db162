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

	"github.com/logcluster/storageset/pkg/loggroup"
)

// FlatSelector is the capability the facade delegates to when the
// replication scope is NODE, i.e. no cross-domain constraint applies. It
// treats the whole eligible node pool as a single domain. A concrete
// implementation is resolved statically at construction time (see
// pkg/flatselect for the reference one); the facade's contract only
// requires that FlatSelect behave as a one-domain special case of Select.
type FlatSelector interface {
	FlatSelect(ctx context.Context, logID string, cfg ClusterConfig, previous StorageSet, opts Options) Decision
	FlatSize(ctx context.Context, logID string, cfg ClusterConfig, sizeTarget *int, rp loggroup.ReplicationProperty, opts Options) int
}
