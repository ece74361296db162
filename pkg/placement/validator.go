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
	"github.com/logcluster/storageset/pkg/loggroup"
	"github.com/logcluster/storageset/pkg/nodes"
)

// Validator is the external collaborator that decides whether a sampled
// StorageSet can actually support a replication property, accounting for
// node weights (e.g. rejecting a set with too many zero-weight nodes).
// The selector treats a positive result as the final word: it never
// second-guesses the validator, only surfaces its rejection as
// ErrInvalidWeights.
type Validator interface {
	ValidStorageSet(all []nodes.NodeDescriptor, set StorageSet, rp loggroup.ReplicationProperty) bool
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(all []nodes.NodeDescriptor, set StorageSet, rp loggroup.ReplicationProperty) bool

// ValidStorageSet implements Validator.
func (f ValidatorFunc) ValidStorageSet(all []nodes.NodeDescriptor, set StorageSet, rp loggroup.ReplicationProperty) bool {
	return f(all, set, rp)
}
