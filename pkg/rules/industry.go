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

// Industry rule IDs.
const (
	RuleR1  = "R1"
	RuleR2  = "R2"
	RuleR3  = "R3"
	RuleR4  = "R4"
	RuleR5  = "R5"
	RuleR6  = "R6"
	RuleR7  = "R7"
	RuleR8  = "R8"
	RuleR9  = "R9"
	RuleR10 = "R10"
)

var industrySet = &Set[Action]{
	Schema: SchemaIndustry,
	Groups: []Group[Action]{
		{
			Name: "primary",
			Mode: FirstMatch,
			Rules: []Rule[Action]{
				{
					ID:   RuleR1,
					When: all(propensityAtLeast(propensityHigh), defenderActive, sentinelActive),
					Emit: Action{
						RuleID:    RuleR1,
						Offer:     catalog.OfferUnifiedThreatProtection,
						Rationale: "High E5 readiness with both Defender and Sentinel deployed. Ready to unify SIEM and XDR operations.",
						Timeline:  "6–8 weeks",
						NextSteps: []string{
							"Run a Unified Threat Protection envisioning workshop with the SOC lead",
							"Map Sentinel analytics rules to Defender XDR incidents",
							"Plan Security Copilot onboarding for tier-1 analysts",
						},
					},
				},
				{
					ID:   RuleR2,
					When: all(propensityAtLeast(propensityHigh), anyOf(defenderActive, sentinelActive)),
					Emit: Action{
						RuleID:    RuleR2,
						Offer:     catalog.OfferREDSentinel,
						Rationale: "High E5 readiness with partial security operations tooling. Extend coverage with RED Sentinel.",
						Timeline:  "4–6 weeks",
						NextSteps: []string{
							"Assess current log sources and data connectors",
							"Scope the RED Sentinel deployment and success criteria",
							"Schedule a detection engineering review",
						},
					},
				},
				{
					ID:   RuleR3,
					When: all(propensityBetween(propensityModerate, propensityHigh), identityIn(moderateIdentity...)),
					Emit: Action{
						RuleID:    RuleR3,
						Offer:     catalog.OfferIdentityModernization,
						Rationale: "Moderate-to-strong E5 readiness with established identity controls. Modernize Entra governance.",
						Timeline:  "4–6 weeks",
						NextSteps: []string{
							"Review Conditional Access and PIM configuration",
							"Identify legacy authentication to retire",
							"Agree an identity governance rollout plan",
						},
					},
				},
				{
					ID:   RuleR4,
					When: all(propensityBetween(propensityLow, propensityHigh), identityIn(lowIdentity...)),
					Emit: Action{
						RuleID:    RuleR4,
						Offer:     catalog.OfferIdentityDiagnostics,
						Rationale: "Mid-level E5 readiness with weak identity posture. Diagnose identity risks before modernization.",
						Timeline:  "2–4 weeks",
						NextSteps: []string{
							"Run the Identity Diagnostics assessment",
							"Baseline MFA coverage and privileged accounts",
							"Present findings with a modernization proposal",
						},
					},
				},
				{
					ID:   RuleR5,
					When: all(propensityBetween(propensityLow, propensityHigh), dataRiskIn(elevatedDataRisk...)),
					Emit: Action{
						RuleID:    RuleR5,
						Offer:     catalog.OfferDataDiagnostics,
						Rationale: "Mid-level E5 readiness with elevated data exposure. Assess data and AI security risk.",
						Timeline:  "3–5 weeks",
						NextSteps: []string{
							"Inventory sensitive data locations and labels",
							"Assess insider risk and AI data governance",
							"Prioritize Purview controls for rollout",
						},
					},
				},
				{
					ID:   RuleR6,
					When: propensityBelow(propensityLow),
					Emit: Action{
						RuleID:    RuleR6,
						Offer:     catalog.OfferPostureAssessment,
						Rationale: "Low E5 readiness. Start with a broad security posture assessment to build the business case.",
						Timeline:  "2–3 weeks",
						NextSteps: []string{
							"Run the Security Posture Assessment",
							"Review Secure Score with the client",
							"Identify quick wins for the next planning cycle",
						},
					},
				},
			},
		},
		{
			Name: "overlays",
			Mode: AllMatch,
			Rules: []Rule[Action]{
				{
					ID:   RuleR7,
					When: regulatedIndustry,
					Emit: Action{
						RuleID:    RuleR7,
						Offer:     catalog.OfferDataModernization,
						Rationale: "Regulated industry with compliance obligations. Prioritize data protection and retention controls.",
						Timeline:  "4–6 weeks",
						NextSteps: []string{
							"Map regulatory requirements to Purview capabilities",
							"Plan sensitivity labeling and DLP policies",
							"Align retention and eDiscovery with compliance teams",
						},
					},
				},
				{
					ID:   RuleR8,
					When: all(propensityAtLeast(propensityLow), not(defenderActive), not(sentinelActive)),
					Emit: Action{
						RuleID:    RuleR8,
						Offer:     catalog.OfferREDDefender,
						Rationale: "E5 readiness without Defender or Sentinel in place. Establish endpoint and XDR coverage.",
						Timeline:  "4–5 weeks",
						NextSteps: []string{
							"Confirm device estate and onboarding approach",
							"Scope a RED Defender pilot",
							"Define SOC ownership for Defender alerts",
						},
					},
				},
				{
					ID:   RuleR9,
					When: recentIncident,
					Emit: Action{
						RuleID:    RuleR9,
						Offer:     catalog.OfferCopilotAccelerator,
						Rationale: "Recent security incident. Accelerate investigation and response with Security Copilot.",
						Timeline:  "2–3 weeks",
						NextSteps: []string{
							"Review the incident timeline with the client",
							"Enable Security Copilot for incident investigation",
							"Build agentic playbooks for recurring alert types",
						},
					},
				},
				{
					ID:   RuleR10,
					When: multicloud,
					Emit: Action{
						RuleID:    RuleR10,
						Offer:     catalog.OfferCSPM,
						Rationale: "Multicloud estate. Unify cloud security posture management across providers.",
						Timeline:  "3–5 weeks",
						NextSteps: []string{
							"Connect all cloud accounts to Defender for Cloud",
							"Baseline posture recommendations per provider",
							"Agree remediation ownership per workload",
						},
					},
				},
			},
		},
	},
}

// Industry returns the industry-overlay rule set.
func Industry() *Set[Action] {
	return industrySet
}

// EvaluateIndustry evaluates p against the industry schema.
func EvaluateIndustry(p *profile.Profile) []Action {
	return industrySet.Evaluate(p)
}
