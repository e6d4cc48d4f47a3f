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

package catalog

// Solution areas.
const (
	AreaIAM           = "IAM"
	AreaData          = "Data & AI Security"
	AreaSecOps        = "SecOps"
	AreaCloud         = "Cloud Security"
	AreaCrossSolution = "Cross-Solution Security"
)

// Offers.
const (
	OfferIdentityDiagnostics     = "Identity Diagnostics"
	OfferIdentityModernization   = "Identity Modernization"
	OfferDataDiagnostics         = "Data & AI Security Diagnostics"
	OfferDataModernization       = "Data Protection Modernization"
	OfferREDSentinel             = "RED Sentinel"
	OfferREDDefender             = "RED Defender"
	OfferCopilotAccelerator      = "Security Copilot Accelerator (including Agentic)"
	OfferUnifiedThreatProtection = "Unified Threat Protection (Sentinel, TI, Defender XDR, Copilot)"
	OfferCSPM                    = "Cloud Security Optimization (CSPM)"
	OfferCWPP                    = "Cloud Security Modernization (CWPP)"
	OfferPostureAssessment       = "Security Posture Assessment"
	OfferZeroTrustRoadmap        = "Zero Trust Maturity Roadmap"
	OfferSecurityFactory         = "Microsoft Security Factory Integration"
)
