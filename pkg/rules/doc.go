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

// Package rules implements the offer recommendation decision table.
//
// A rule set is an ordered list of groups. Each group is an ordered list of
// rules (id, predicate, template) and a mode:
//
//   - FirstMatch: the first matching rule emits and the rest of the group is
//     skipped (mutually exclusive tiers)
//   - AllMatch: every matching rule emits (independent overlays)
//
// Groups run strictly in declaration order. Predicates receive the profile
// and the number of records emitted so far, which lets the cross-solution
// capstone fire only after enough earlier groups matched.
//
// Three schemas are provided:
//
//   - standard: identity, data, security operations, cloud and capstone
//     groups emitting Recommendation records (default)
//   - acr: the standard groups with consumed-revenue gates on the top
//     security operations tiers and on the capstone
//   - industry: rules R1-R10 emitting Action records with next steps
//
// Evaluation is pure and total. A nil profile is evaluated as the
// all-default profile, and unknown enum values fail every predicate that
// tests them. Rule sets are immutable and safe for concurrent use.
//
//	recs := rules.Evaluate(profile.Build(
//	    profile.WithE5Propensity(75),
//	    profile.WithIdentityMaturity("weak"),
//	))
package rules
