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

	"github.com/mchmarny/propensity/pkg/profile"
)

// EvaluateSchema evaluates p against the rule set selected by schema. An
// empty schema selects DefaultSchema.
func EvaluateSchema(schema Schema, p *profile.Profile) (*Outcome, error) {
	if schema == "" {
		schema = DefaultSchema
	}

	o := &Outcome{Schema: schema}
	switch schema {
	case SchemaStandard:
		o.Recommendations, o.MatchedRules = Standard().Trace(p)
	case SchemaACR:
		o.Recommendations, o.MatchedRules = ACR().Trace(p)
	case SchemaIndustry:
		o.Actions, o.MatchedRules = Industry().Trace(p)
	default:
		return nil, fmt.Errorf("invalid schema: %s (supported: %v)", schema, GetSchemaTypes())
	}
	return o, nil
}
