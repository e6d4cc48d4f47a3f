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
	"fmt"
	"strings"
)

// Schema selects a rule set.
type Schema string

// Schema constants.
const (
	SchemaStandard Schema = "standard"
	SchemaACR      Schema = "acr"
	SchemaIndustry Schema = "industry"
)

// DefaultSchema is used when no schema is requested.
const DefaultSchema = SchemaStandard

// ParseSchema parses s into a Schema. Empty input yields DefaultSchema.
func ParseSchema(s string) (Schema, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(SchemaStandard), "baseline", "default":
		return SchemaStandard, nil
	case string(SchemaACR):
		return SchemaACR, nil
	case string(SchemaIndustry), "overlay":
		return SchemaIndustry, nil
	default:
		return DefaultSchema, fmt.Errorf("invalid schema: %s (supported: %s)", s, strings.Join(GetSchemaTypes(), ", "))
	}
}

// GetSchemaTypes returns all supported schemas.
func GetSchemaTypes() []string {
	return []string{string(SchemaStandard), string(SchemaACR), string(SchemaIndustry)}
}

// String returns the string representation of the schema.
func (s Schema) String() string {
	return string(s)
}

// Recommendation is a solution area recommendation emitted by the standard
// and acr schemas.
type Recommendation struct {
	RuleID        string `json:"rule_id" yaml:"rule_id"`
	SolutionArea  string `json:"solution_area" yaml:"solution_area"`
	PrimaryOffer  string `json:"primary_offer" yaml:"primary_offer"`
	FollowUpOffer string `json:"follow_up_offer" yaml:"follow_up_offer"`
	Rationale     string `json:"rationale" yaml:"rationale"`
	Timeline      string `json:"timeline" yaml:"timeline"`
}

// Action is an offer with next steps emitted by the industry schema.
type Action struct {
	RuleID    string   `json:"rule_id" yaml:"rule_id"`
	Offer     string   `json:"offer" yaml:"offer"`
	Rationale string   `json:"rationale" yaml:"rationale"`
	Timeline  string   `json:"timeline" yaml:"timeline"`
	NextSteps []string `json:"next_steps" yaml:"next_steps"`
}

func (a Action) clone() Action {
	a.NextSteps = append([]string(nil), a.NextSteps...)
	return a
}

// Offers returns the primary and follow-up offers.
func (r Recommendation) Offers() []string {
	return []string{r.PrimaryOffer, r.FollowUpOffer}
}

// Outcome is the result of evaluating a profile against one schema. Only
// one of Recommendations and Actions is populated, depending on schema.
type Outcome struct {
	Schema          Schema           `json:"schema" yaml:"schema"`
	MatchedRules    []string         `json:"matchedRules" yaml:"matchedRules"`
	Recommendations []Recommendation `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Actions         []Action         `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// Len returns the number of emitted records.
func (o *Outcome) Len() int {
	return len(o.Recommendations) + len(o.Actions)
}
