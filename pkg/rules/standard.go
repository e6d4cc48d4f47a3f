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

// Standard rule IDs.
const (
	RuleIAMDiagnosticsFirst      = "iam-diagnostics-first"
	RuleIAMModernizationFirst    = "iam-modernization-first"
	RuleDataDiagnosticsFirst     = "data-diagnostics-first"
	RuleDataModernizationFirst   = "data-modernization-first"
	RuleSecOpsUnifiedThreat      = "secops-unified-threat-protection"
	RuleSecOpsREDSentinel        = "secops-red-sentinel"
	RuleSecOpsCopilotAccelerator = "secops-copilot-accelerator"
	RuleSecOpsREDDefender        = "secops-red-defender"
	RuleSecOpsIncidentResponse   = "secops-incident-response"
	RuleCloudOptimizationFirst   = "cloud-optimization-first"
	RuleCloudModernizationFirst  = "cloud-modernization-first"
	RuleCrossSolutionZeroTrust   = "cross-solution-zero-trust"
)

var standardSet = &Set[Recommendation]{
	Schema: SchemaStandard,
	Groups: []Group[Recommendation]{
		identityGroup(),
		dataGroup(),
		{
			Name: "secops",
			Mode: FirstMatch,
			Rules: []Rule[Recommendation]{
				redSentinelRule(),
				copilotAcceleratorRule(sentinelActive),
				redDefenderRule(),
			},
		},
		incidentGroup(),
		cloudGroup(),
		capstoneGroup(),
	},
}

// Standard returns the default rule set.
func Standard() *Set[Recommendation] {
	return standardSet
}

// Evaluate evaluates p against the standard schema.
func Evaluate(p *profile.Profile) []Recommendation {
	return standardSet.Evaluate(p)
}

func recommendation(id, area, primary, followUp, rationale, timeline string) Recommendation {
	return Recommendation{
		RuleID:        id,
		SolutionArea:  area,
		PrimaryOffer:  primary,
		FollowUpOffer: followUp,
		Rationale:     rationale,
		Timeline:      timeline,
	}
}

func identityGroup() Group[Recommendation] {
	return Group[Recommendation]{
		Name: "identity",
		Mode: FirstMatch,
		Rules: []Rule[Recommendation]{
			{
				ID:   RuleIAMDiagnosticsFirst,
				When: anyOf(propensityBelow(propensityLow), identityIn(lowIdentity...)),
				Emit: recommendation(RuleIAMDiagnosticsFirst, catalog.AreaIAM,
					catalog.OfferIdentityDiagnostics, catalog.OfferIdentityModernization,
					"Low identity maturity detected. Start with an IAM Diagnostic to uncover risks, followed by modernization to strengthen Entra security posture.",
					"2–4 weeks"),
			},
			{
				ID:   RuleIAMModernizationFirst,
				When: all(propensityBetween(propensityLow, propensityHigh), identityIn(moderateIdentity...)),
				Emit: recommendation(RuleIAMModernizationFirst, catalog.AreaIAM,
					catalog.OfferIdentityModernization, catalog.OfferIdentityDiagnostics,
					"Moderate E5 readiness and existing identity controls. Focus on Entra modernization and automation for PIM and Conditional Access.",
					"4–6 weeks"),
			},
		},
	}
}

func dataGroup() Group[Recommendation] {
	return Group[Recommendation]{
		Name: "data",
		Mode: FirstMatch,
		Rules: []Rule[Recommendation]{
			{
				ID:   RuleDataDiagnosticsFirst,
				When: dataRiskIn(elevatedDataRisk...),
				Emit: recommendation(RuleDataDiagnosticsFirst, catalog.AreaData,
					catalog.OfferDataDiagnostics, catalog.OfferDataModernization,
					"High data exposure risk. Diagnostic will assess sensitivity labels, insider risk, and AI data governance to prepare for modernization.",
					"3–5 weeks"),
			},
			{
				ID:   RuleDataModernizationFirst,
				When: all(propensityAtLeast(propensityModerate), dataRiskIn(profile.DataRiskMedium)),
				Emit: recommendation(RuleDataModernizationFirst, catalog.AreaData,
					catalog.OfferDataModernization, catalog.OfferDataDiagnostics,
					"Moderate risk with E5 potential. Introduce data protection modernization to extend Purview, Insider Risk, and AI security controls.",
					"4–6 weeks"),
			},
		},
	}
}

func redSentinelRule() Rule[Recommendation] {
	return Rule[Recommendation]{
		ID:   RuleSecOpsREDSentinel,
		When: all(propensityAtLeast(propensityHigh), anyOf(defenderActive, sentinelActive)),
		Emit: recommendation(RuleSecOpsREDSentinel, catalog.AreaSecOps,
			catalog.OfferREDSentinel, catalog.OfferUnifiedThreatProtection,
			"High E5 readiness with active Defender or Sentinel signals. Deploy RED Sentinel for unified detection and integrate with Unified Threat Protection stack.",
			"4–6 weeks"),
	}
}

// copilotAcceleratorRule is gated on Sentinel plus any extra schema gates.
func copilotAcceleratorRule(gates ...Predicate) Rule[Recommendation] {
	return Rule[Recommendation]{
		ID:   RuleSecOpsCopilotAccelerator,
		When: all(append([]Predicate{propensityAtLeast(propensityElevated)}, gates...)...),
		Emit: recommendation(RuleSecOpsCopilotAccelerator, catalog.AreaSecOps,
			catalog.OfferCopilotAccelerator, catalog.OfferUnifiedThreatProtection,
			"Strong E5 readiness with Sentinel in place. Accelerate SOC workflows with Security Copilot agents before consolidating on Unified Threat Protection.",
			"3–4 weeks"),
	}
}

func redDefenderRule() Rule[Recommendation] {
	return Rule[Recommendation]{
		ID:   RuleSecOpsREDDefender,
		When: all(propensityBetween(propensityLow, propensityHigh), defenderActive, not(sentinelActive)),
		Emit: recommendation(RuleSecOpsREDDefender, catalog.AreaSecOps,
			catalog.OfferREDDefender, catalog.OfferCopilotAccelerator,
			"Mid-level E5 readiness with limited SOC visibility. RED Defender strengthens endpoint protection and Copilot enables AI-driven response.",
			"4–5 weeks"),
	}
}

func incidentGroup() Group[Recommendation] {
	return Group[Recommendation]{
		Name: "secops-overlay",
		Mode: AllMatch,
		Rules: []Rule[Recommendation]{
			{
				ID:   RuleSecOpsIncidentResponse,
				When: recentIncident,
				Emit: recommendation(RuleSecOpsIncidentResponse, catalog.AreaSecOps,
					catalog.OfferUnifiedThreatProtection, catalog.OfferCopilotAccelerator,
					"Recent security incident reported. Consolidate detection and response on Unified Threat Protection and add Copilot-assisted investigation to shorten response times.",
					"2–3 weeks"),
			},
		},
	}
}

func cloudGroup() Group[Recommendation] {
	return Group[Recommendation]{
		Name: "cloud",
		Mode: FirstMatch,
		Rules: []Rule[Recommendation]{
			{
				ID:   RuleCloudOptimizationFirst,
				When: all(multicloud, cloudMaturityIn(profile.CloudMaturityLow, profile.CloudMaturityMedium)),
				Emit: recommendation(RuleCloudOptimizationFirst, catalog.AreaCloud,
					catalog.OfferCSPM, catalog.OfferCWPP,
					"Multicloud estate with developing cloud security. Establish posture management across clouds with Defender CSPM before extending workload protection.",
					"3–5 weeks"),
			},
			{
				ID:   RuleCloudModernizationFirst,
				When: all(cloudMaturityIn(profile.CloudMaturityHigh), propensityAtLeast(propensityModerate)),
				Emit: recommendation(RuleCloudModernizationFirst, catalog.AreaCloud,
					catalog.OfferCWPP, catalog.OfferCSPM,
					"Mature cloud security with E5 potential. Modernize workload protection for servers, containers, and databases, then tune posture management.",
					"4–6 weeks"),
			},
		},
	}
}

// capstoneGroup must stay last: it reads the count of earlier matches.
func capstoneGroup(gates ...Predicate) Group[Recommendation] {
	preds := append([]Predicate{
		propensityAtLeast(propensityElevated),
		accumulatedAtLeast(capstoneMinMatches),
	}, gates...)
	return Group[Recommendation]{
		Name: "cross-solution",
		Mode: AllMatch,
		Rules: []Rule[Recommendation]{
			{
				ID:   RuleCrossSolutionZeroTrust,
				When: all(preds...),
				Emit: recommendation(RuleCrossSolutionZeroTrust, catalog.AreaCrossSolution,
					catalog.OfferZeroTrustRoadmap, catalog.OfferSecurityFactory,
					"Multiple solution areas in scope with strong E5 readiness. Align the engagements under a Zero Trust maturity roadmap and industrialize delivery through the Microsoft Security Factory.",
					"6–8 weeks"),
			},
		},
	}
}
