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
	"github.com/mchmarny/propensity/pkg/catalog"
	"github.com/mchmarny/propensity/pkg/profile"
)

var acrSet = &Set[Recommendation]{
	Schema: SchemaACR,
	Groups: []Group[Recommendation]{
		identityGroup(),
		dataGroup(),
		{
			Name: "secops",
			Mode: FirstMatch,
			Rules: []Rule[Recommendation]{
				{
					ID: RuleSecOpsUnifiedThreat,
					When: all(
						propensityAtLeast(propensityHigh),
						sentinelACRIn(largeACR...),
						anyOf(defenderActive, sentinelActive),
					),
					Emit: recommendation(RuleSecOpsUnifiedThreat, catalog.AreaSecOps,
						catalog.OfferUnifiedThreatProtection, catalog.OfferCopilotAccelerator,
						"High E5 readiness with significant Sentinel consumption. Consolidate Sentinel, threat intelligence, and Defender XDR into Unified Threat Protection with Copilot on top.",
						"6–8 weeks"),
				},
				redSentinelRule(),
				copilotAcceleratorRule(sentinelActive, securityACRIn(mediumPlusACR...)),
				redDefenderRule(),
			},
		},
		incidentGroup(),
		cloudGroup(),
		capstoneGroup(securityACRIn(largeACR...)),
	},
}

// ACR returns the consumed-revenue aware rule set.
func ACR() *Set[Recommendation] {
	return acrSet
}

// EvaluateACR evaluates p against the acr schema.
func EvaluateACR(p *profile.Profile) []Recommendation {
	return acrSet.Evaluate(p)
}
