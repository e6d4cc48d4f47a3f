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

// Propensity thresholds.
const (
	propensityLow      = 40
	propensityModerate = 60
	propensityElevated = 70
	propensityHigh     = 80
	capstoneMinMatches = 3
)

// propensityAtLeast matches e5 >= lo.
func propensityAtLeast(lo int) Predicate {
	return func(p *profile.Profile, _ int) bool {
		return p.E5Propensity >= lo
	}
}

// propensityBelow matches e5 < hi.
func propensityBelow(hi int) Predicate {
	return func(p *profile.Profile, _ int) bool {
		return p.E5Propensity < hi
	}
}

// propensityBetween matches lo <= e5 < hi.
func propensityBetween(lo, hi int) Predicate {
	return all(propensityAtLeast(lo), propensityBelow(hi))
}

func identityIn(set ...profile.IdentityMaturity) Predicate {
	return func(p *profile.Profile, _ int) bool {
		return p.IdentityMaturity.In(set...)
	}
}

func dataRiskIn(set ...profile.DataRisk) Predicate {
	return func(p *profile.Profile, _ int) bool {
		return p.DataRisk.In(set...)
	}
}

func cloudMaturityIn(set ...profile.CloudMaturity) Predicate {
	return func(p *profile.Profile, _ int) bool {
		return p.CloudMaturity.In(set...)
	}
}

func securityACRIn(set ...profile.ACRTier) Predicate {
	return func(p *profile.Profile, _ int) bool {
		return p.SecurityACR.In(set...)
	}
}

func sentinelACRIn(set ...profile.ACRTier) Predicate {
	return func(p *profile.Profile, _ int) bool {
		return p.SentinelACR.In(set...)
	}
}

func defenderActive(p *profile.Profile, _ int) bool { return p.DefenderActive }

func sentinelActive(p *profile.Profile, _ int) bool { return p.SentinelActive }

func recentIncident(p *profile.Profile, _ int) bool { return p.RecentIncident }

func multicloud(p *profile.Profile, _ int) bool { return p.Multicloud }

// accumulatedAtLeast matches once n records have been emitted.
func accumulatedAtLeast(n int) Predicate {
	return func(_ *profile.Profile, accumulated int) bool {
		return accumulated >= n
	}
}

// regulatedIndustries are compared against the folded profile industry.
var regulatedIndustries = []string{
	"financial services",
	"banking",
	"insurance",
	"healthcare",
	"government",
	"public sector",
	"life sciences",
	"pharmaceuticals",
	"energy",
	"utilities",
}

// regulatedIndustry matches profiles in a regulated vertical.
func regulatedIndustry(p *profile.Profile, _ int) bool {
	for _, r := range regulatedIndustries {
		if p.Industry == r {
			return true
		}
	}
	return false
}

// Shared maturity and tier sets.
var (
	lowIdentity      = []profile.IdentityMaturity{profile.IdentityWeak, profile.IdentityNone, profile.IdentityPoor}
	moderateIdentity = []profile.IdentityMaturity{profile.IdentityAverage, profile.IdentityGood}
	elevatedDataRisk = []profile.DataRisk{profile.DataRiskHigh, profile.DataRiskVeryHigh}
	largeACR         = []profile.ACRTier{profile.ACRLarge, profile.ACRVeryLarge}
	mediumPlusACR    = []profile.ACRTier{profile.ACRMedium, profile.ACRLarge, profile.ACRVeryLarge}
)
