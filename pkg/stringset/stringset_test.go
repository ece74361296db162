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

package stringset

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("String set", func() {
	It("starts as an empty set", func() {
		Expect(New[string]().Len()).To(Equal(0))
	})

	It("starts with a list of strings", func() {
		Expect(From([]string{"one", "two"}).Len()).To(Equal(2))
		Expect(From([]string{"one", "two", "two"}).Len()).To(Equal(2))
	})

	It("stores string keys", func() {
		set := New[string]()
		Expect(set.Has("test")).To(BeFalse())
		Expect(set.Has("test2")).To(BeFalse())

		set.Put("test")
		Expect(set.Has("test")).To(BeTrue())
		Expect(set.Has("test2")).To(BeFalse())
	})

	It("deletes keys", func() {
		set := From([]string{"one", "two"})
		set.Delete("one")
		Expect(set.Has("one")).To(BeFalse())
		Expect(set.Len()).To(Equal(1))
	})

	It("sorts its members on demand", func() {
		set := From([]string{"delta", "alpha", "charlie", "bravo"})
		Expect(SortedStrings(set)).To(Equal([]string{"alpha", "bravo", "charlie", "delta"}))
	})
})

var _ = Describe("Int set", func() {
	It("deduplicates node indices", func() {
		set := From([]int{4, 2, 4, 7})
		Expect(set.Len()).To(Equal(3))
		Expect(SortedInts(set)).To(Equal([]int{2, 4, 7}))
	})

	It("treats a nil set as empty", func() {
		var set *Set[int]
		Expect(set.Has(1)).To(BeFalse())
		Expect(set.Len()).To(Equal(0))
	})
})
