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

package rules

import (
	"github.com/mchmarny/propensity/pkg/profile"
)

// Mode controls how many rules of a group may emit.
type Mode int

const (
	// FirstMatch emits at most the first matching rule.
	FirstMatch Mode = iota
	// AllMatch emits every matching rule.
	AllMatch
)

// String returns the mode name.
func (m Mode) String() string {
	if m == AllMatch {
		return "all"
	}
	return "first"
}

// Predicate decides whether a rule emits. accumulated is the number of
// records emitted by earlier rules in the same evaluation.
type Predicate func(p *profile.Profile, accumulated int) bool

// Rule pairs a predicate with the record it emits.
type Rule[T any] struct {
	ID   string
	When Predicate
	Emit T
}

// Group is an ordered list of rules evaluated under one mode.
type Group[T any] struct {
	Name  string
	Mode  Mode
	Rules []Rule[T]
}

// Set is an ordered list of groups.
type Set[T any] struct {
	Schema Schema
	Groups []Group[T]
}

type cloner[T any] interface {
	clone() T
}

// Evaluate runs every group in order and returns the emitted records.
func (s *Set[T]) Evaluate(p *profile.Profile) []T {
	out, _ := s.Trace(p)
	return out
}

// Trace is Evaluate that also returns the IDs of the rules that emitted,
// in emission order. Rules see a normalized copy of p with defaults
// substituted for absent fields; p itself is not modified.
func (s *Set[T]) Trace(p *profile.Profile) ([]T, []string) {
	if p == nil {
		p = profile.New()
	} else {
		cp := *p
		p = cp.WithDefaults()
	}

	out := make([]T, 0)
	ids := make([]string, 0)
	for _, g := range s.Groups {
		for _, r := range g.Rules {
			if !r.When(p, len(out)) {
				continue
			}
			rec := r.Emit
			if c, ok := any(rec).(cloner[T]); ok {
				rec = c.clone()
			}
			out = append(out, rec)
			ids = append(ids, r.ID)
			if g.Mode == FirstMatch {
				break
			}
		}
	}
	return out, ids
}

// Templates returns every record the set can emit, in declaration order.
func (s *Set[T]) Templates() []T {
	var out []T
	for _, g := range s.Groups {
		for _, r := range g.Rules {
			out = append(out, r.Emit)
		}
	}
	return out
}

// RuleIDs returns the IDs of every rule in declaration order.
func (s *Set[T]) RuleIDs() []string {
	var out []string
	for _, g := range s.Groups {
		for _, r := range g.Rules {
			out = append(out, r.ID)
		}
	}
	return out
}

// all combines predicates with logical AND.
func all(preds ...Predicate) Predicate {
	return func(p *profile.Profile, n int) bool {
		for _, pred := range preds {
			if !pred(p, n) {
				return false
			}
		}
		return true
	}
}

// anyOf combines predicates with logical OR.
func anyOf(preds ...Predicate) Predicate {
	return func(p *profile.Profile, n int) bool {
		for _, pred := range preds {
			if pred(p, n) {
				return true
			}
		}
		return false
	}
}

func not(pred Predicate) Predicate {
	return func(p *profile.Profile, n int) bool {
		return !pred(p, n)
	}
}
