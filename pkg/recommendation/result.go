// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recommendation

import (
	"encoding/json"

	"github.com/mchmarny/propensity/pkg/catalog"
	"github.com/mchmarny/propensity/pkg/header"
	"github.com/mchmarny/propensity/pkg/profile"
	"github.com/mchmarny/propensity/pkg/rules"
)

// Result is the Recommendations document returned for one evaluation.
// Recommendations is set for the standard and acr schemas, Actions for the
// industry schema. The list used by the schema is always encoded, as an
// empty list when no rule matched; the other one is omitted.
type Result struct {
	header.Header `json:",inline" yaml:",inline"`

	Schema          rules.Schema           `json:"schema" yaml:"schema"`
	Profile         *profile.Profile       `json:"profile" yaml:"profile"`
	Warnings        []string               `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	MatchedRules    []string               `json:"matchedRules" yaml:"matchedRules"`
	Recommendations []rules.Recommendation `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Actions         []rules.Action         `json:"actions,omitempty" yaml:"actions,omitempty"`
	Catalog         []catalog.Area         `json:"catalog" yaml:"catalog"`
}

// resultWire is the encoded form of Result.
type resultWire struct {
	header.Header `json:",inline" yaml:",inline"`

	Schema          rules.Schema            `json:"schema" yaml:"schema"`
	Profile         *profile.Profile        `json:"profile" yaml:"profile"`
	Warnings        []string                `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	MatchedRules    []string                `json:"matchedRules" yaml:"matchedRules"`
	Recommendations *[]rules.Recommendation `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Actions         *[]rules.Action         `json:"actions,omitempty" yaml:"actions,omitempty"`
	Catalog         []catalog.Area          `json:"catalog" yaml:"catalog"`
}

func (r *Result) wire() resultWire {
	w := resultWire{
		Header:       r.Header,
		Schema:       r.Schema,
		Profile:      r.Profile,
		Warnings:     r.Warnings,
		MatchedRules: r.MatchedRules,
		Catalog:      r.Catalog,
	}
	if w.MatchedRules == nil {
		w.MatchedRules = []string{}
	}

	if r.Schema == rules.SchemaIndustry {
		actions := r.Actions
		if actions == nil {
			actions = []rules.Action{}
		}
		w.Actions = &actions
		return w
	}

	recs := r.Recommendations
	if recs == nil {
		recs = []rules.Recommendation{}
	}
	w.Recommendations = &recs
	return w
}

// MarshalJSON implements json.Marshaler.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

// MarshalYAML implements yaml.Marshaler.
func (r *Result) MarshalYAML() (any, error) {
	return r.wire(), nil
}

// Len returns the number of emitted records.
func (r *Result) Len() int {
	return len(r.Recommendations) + len(r.Actions)
}

// Empty reports whether no rule matched.
func (r *Result) Empty() bool {
	return r.Len() == 0
}

// Offers returns every offer named by the result in emission order,
// without duplicates.
func (r *Result) Offers() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(offers ...string) {
		for _, o := range offers {
			if o == "" || seen[o] {
				continue
			}
			seen[o] = true
			out = append(out, o)
		}
	}
	for _, rec := range r.Recommendations {
		add(rec.Offers()...)
	}
	for _, a := range r.Actions {
		add(a.Offer)
	}
	return out
}
