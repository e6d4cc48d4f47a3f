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

package profile

import (
	"strings"

	"golang.org/x/text/cases"
)

// IdentityMaturity describes the maturity of a client's identity controls.
type IdentityMaturity string

// IdentityMaturity constants.
const (
	IdentityWeak    IdentityMaturity = "weak"
	IdentityNone    IdentityMaturity = "none"
	IdentityPoor    IdentityMaturity = "poor"
	IdentityAverage IdentityMaturity = "average"
	IdentityGood    IdentityMaturity = "good"
	IdentityStrong  IdentityMaturity = "strong"
	IdentityUnknown IdentityMaturity = "unknown"
)

// ParseIdentityMaturity normalizes s. Empty input yields IdentityUnknown.
func ParseIdentityMaturity(s string) IdentityMaturity {
	if n := normalize(s); n != "" {
		return IdentityMaturity(n)
	}
	return IdentityUnknown
}

// IsKnown reports whether m is one of the defined maturity levels.
func (m IdentityMaturity) IsKnown() bool {
	switch m {
	case IdentityWeak, IdentityNone, IdentityPoor, IdentityAverage, IdentityGood, IdentityStrong, IdentityUnknown:
		return true
	default:
		return false
	}
}

// In reports whether m is one of set.
func (m IdentityMaturity) In(set ...IdentityMaturity) bool {
	return in(m, set)
}

// GetIdentityMaturityTypes returns all identity maturity levels, weakest first.
func GetIdentityMaturityTypes() []string {
	return []string{"none", "poor", "weak", "average", "good", "strong", "unknown"}
}

// DataRisk describes the client's data exposure risk.
type DataRisk string

// DataRisk constants.
const (
	DataRiskLow      DataRisk = "low"
	DataRiskMedium   DataRisk = "medium"
	DataRiskHigh     DataRisk = "high"
	DataRiskVeryHigh DataRisk = "very high"
)

// ParseDataRisk normalizes s. Empty input yields DataRiskMedium.
func ParseDataRisk(s string) DataRisk {
	if n := normalize(s); n != "" {
		return DataRisk(n)
	}
	return DataRiskMedium
}

// IsKnown reports whether r is one of the defined risk levels.
func (r DataRisk) IsKnown() bool {
	switch r {
	case DataRiskLow, DataRiskMedium, DataRiskHigh, DataRiskVeryHigh:
		return true
	default:
		return false
	}
}

// In reports whether r is one of set.
func (r DataRisk) In(set ...DataRisk) bool {
	return in(r, set)
}

// GetDataRiskTypes returns all data risk levels, lowest first.
func GetDataRiskTypes() []string {
	return []string{"low", "medium", "high", "very high"}
}

// CloudMaturity describes the maturity of the client's cloud security.
type CloudMaturity string

// CloudMaturity constants.
const (
	CloudMaturityLow    CloudMaturity = "low"
	CloudMaturityMedium CloudMaturity = "medium"
	CloudMaturityHigh   CloudMaturity = "high"
)

// ParseCloudMaturity normalizes s. Empty input yields CloudMaturityMedium.
func ParseCloudMaturity(s string) CloudMaturity {
	if n := normalize(s); n != "" {
		return CloudMaturity(n)
	}
	return CloudMaturityMedium
}

// IsKnown reports whether m is one of the defined maturity levels.
func (m CloudMaturity) IsKnown() bool {
	switch m {
	case CloudMaturityLow, CloudMaturityMedium, CloudMaturityHigh:
		return true
	default:
		return false
	}
}

// In reports whether m is one of set.
func (m CloudMaturity) In(set ...CloudMaturity) bool {
	return in(m, set)
}

// GetCloudMaturityTypes returns all cloud maturity levels, lowest first.
func GetCloudMaturityTypes() []string {
	return []string{"low", "medium", "high"}
}

// ACRTier is a consumed-revenue band.
type ACRTier string

// ACRTier constants.
const (
	ACRSmall     ACRTier = "small"
	ACRMedium    ACRTier = "medium"
	ACRLarge     ACRTier = "large"
	ACRVeryLarge ACRTier = "very large"
)

// ParseACRTier normalizes s. Empty input yields ACRMedium.
func ParseACRTier(s string) ACRTier {
	if n := normalize(s); n != "" {
		return ACRTier(n)
	}
	return ACRMedium
}

// IsKnown reports whether t is one of the defined tiers.
func (t ACRTier) IsKnown() bool {
	switch t {
	case ACRSmall, ACRMedium, ACRLarge, ACRVeryLarge:
		return true
	default:
		return false
	}
}

// In reports whether t is one of set.
func (t ACRTier) In(set ...ACRTier) bool {
	return in(t, set)
}

// GetACRTierTypes returns all ACR tiers, smallest first.
func GetACRTierTypes() []string {
	return []string{"small", "medium", "large", "very large"}
}

// DefaultIndustry is used when no industry is given.
const DefaultIndustry = "general"

// ParseIndustry folds case and trims s. Empty input yields DefaultIndustry.
func ParseIndustry(s string) string {
	n := strings.Join(strings.Fields(cases.Fold().String(s)), " ")
	if n == "" {
		return DefaultIndustry
	}
	return n
}

// normalize folds case and treats "_" and "-" as spaces so "Very_High",
// "very-high" and " very high " all read as "very high".
func normalize(s string) string {
	fields := strings.FieldsFunc(cases.Fold().String(s), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '_' || r == '-'
	})
	return strings.Join(fields, " ")
}

func in[T comparable](v T, set []T) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
