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

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeEnvironment struct {
	values map[string]string
}

func newFakeEnvironment(data map[string]string) fakeEnvironment {
	if data == nil {
		data = map[string]string{}
	}
	return fakeEnvironment{values: data}
}

func (f fakeEnvironment) Getenv(key string) string {
	return f.values[key]
}

type fakeData struct {
	WatchScope   string   `env:"WATCH_SCOPE"`
	Tags         []string `env:"TAGS"`
	RetryBudget  int      `env:"RETRY_BUDGET"`
	SamplingRate float64  `env:"SAMPLING_RATE"`
}

var defaultFakeData = fakeData{Tags: []string{"first", "second"}}

var _ = Describe("ReadConfigMap", func() {
	It("splits and trims comma-separated lists", func() {
		Expect(splitAndTrim("string, with space , inside\t")).To(
			Equal([]string{"string", "with space", "inside"}))
	})

	It("loads values from the overrides map", func() {
		cfg := &fakeData{}
		ReadConfigMap(cfg, &defaultFakeData, map[string]string{
			"WATCH_SCOPE": "row1",
			"TAGS":        "one, two",
		}, newFakeEnvironment(nil))
		Expect(cfg.WatchScope).To(Equal("row1"))
		Expect(cfg.Tags).To(Equal([]string{"one", "two"}))
	})

	It("loads values from the environment when the map is empty", func() {
		cfg := &fakeData{}
		env := newFakeEnvironment(map[string]string{
			"WATCH_SCOPE":   "rack2",
			"RETRY_BUDGET":  "4",
			"SAMPLING_RATE": "0.5",
		})
		ReadConfigMap(cfg, &defaultFakeData, nil, env)
		Expect(cfg.WatchScope).To(Equal("rack2"))
		Expect(cfg.RetryBudget).To(Equal(4))
		Expect(cfg.SamplingRate).To(Equal(0.5))
	})

	It("falls back to the default on a malformed value", func() {
		cfg := &fakeData{RetryBudget: 7}
		defaults := fakeData{RetryBudget: 7}
		env := newFakeEnvironment(map[string]string{"RETRY_BUDGET": "not-a-number"})
		ReadConfigMap(cfg, &defaults, nil, env)
		Expect(cfg.RetryBudget).To(Equal(7))
	})

	It("falls back to the default slice when unset", func() {
		cfg := &fakeData{}
		ReadConfigMap(cfg, &defaultFakeData, nil, newFakeEnvironment(nil))
		Expect(cfg.Tags).To(Equal(defaultFakeData.Tags))
	})
})

var _ = Describe("Load", func() {
	It("produces the compiled-in defaults when nothing overrides them", func() {
		d := Load(nil)
		Expect(d.AdvisoryWindowSeconds).To(Equal(10))
		Expect(d.LogLevel).To(Equal("info"))
	})

	It("honors an override map", func() {
		d := Load(map[string]string{"STORAGESET_LOG_LEVEL": "debug"})
		Expect(d.LogLevel).To(Equal("debug"))
	})
})
