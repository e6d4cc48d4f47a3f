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
	"fmt"
	"strings"
)

// Propensity bounds. Scores outside the range are evaluated as given and
// reported by Unrecognized.
const (
	MinPropensity = 0
	MaxPropensity = 100
)

// Profile is a client's security posture.
type Profile struct {
	// Name optionally identifies the client. It is never evaluated.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// E5Propensity is the E5 license propensity score (0-100).
	E5Propensity int `json:"e5_propensity" yaml:"e5_propensity"`

	// IdentityMaturity is the maturity of identity controls.
	IdentityMaturity IdentityMaturity `json:"identity_maturity" yaml:"identity_maturity"`

	// DefenderActive is set when Microsoft Defender is deployed.
	DefenderActive bool `json:"defender_active" yaml:"defender_active"`

	// SentinelActive is set when Microsoft Sentinel is deployed.
	SentinelActive bool `json:"sentinel_active" yaml:"sentinel_active"`

	// Industry is a free-form vertical, compared case-insensitively.
	Industry string `json:"industry" yaml:"industry"`

	// RecentIncident is set when the client had a recent security incident.
	RecentIncident bool `json:"recent_incident" yaml:"recent_incident"`

	// Multicloud is set when workloads span more than one cloud.
	Multicloud bool `json:"multicloud" yaml:"multicloud"`

	// DataRisk is the data exposure risk.
	DataRisk DataRisk `json:"data_risk" yaml:"data_risk"`

	// CloudMaturity is the cloud security maturity.
	CloudMaturity CloudMaturity `json:"cloud_maturity" yaml:"cloud_maturity"`

	// SecurityACR is the security consumed-revenue tier.
	SecurityACR ACRTier `json:"security_acr" yaml:"security_acr"`

	// SentinelACR is the Sentinel consumed-revenue tier.
	SentinelACR ACRTier `json:"sentinel_acr" yaml:"sentinel_acr"`
}

// New returns the all-default profile.
func New() *Profile {
	return &Profile{
		E5Propensity:     0,
		IdentityMaturity: IdentityUnknown,
		Industry:         DefaultIndustry,
		DataRisk:         DataRiskMedium,
		CloudMaturity:    CloudMaturityMedium,
		SecurityACR:      ACRMedium,
		SentinelACR:      ACRMedium,
	}
}

// WithDefaults normalizes every enumerated field and fills empty ones with
// their defaults. It returns p for chaining.
func (p *Profile) WithDefaults() *Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.IdentityMaturity = ParseIdentityMaturity(string(p.IdentityMaturity))
	p.Industry = ParseIndustry(p.Industry)
	p.DataRisk = ParseDataRisk(string(p.DataRisk))
	p.CloudMaturity = ParseCloudMaturity(string(p.CloudMaturity))
	p.SecurityACR = ParseACRTier(string(p.SecurityACR))
	p.SentinelACR = ParseACRTier(string(p.SentinelACR))
	return p
}

// Unrecognized lists fields whose values fall outside their known set, as
// "field=value" pairs in field order. An empty result means every field is
// recognized.
func (p *Profile) Unrecognized() []string {
	var out []string
	if p.E5Propensity < MinPropensity || p.E5Propensity > MaxPropensity {
		out = append(out, fmt.Sprintf("e5_propensity=%d", p.E5Propensity))
	}
	if !p.IdentityMaturity.IsKnown() {
		out = append(out, fmt.Sprintf("identity_maturity=%s", p.IdentityMaturity))
	}
	if !p.DataRisk.IsKnown() {
		out = append(out, fmt.Sprintf("data_risk=%s", p.DataRisk))
	}
	if !p.CloudMaturity.IsKnown() {
		out = append(out, fmt.Sprintf("cloud_maturity=%s", p.CloudMaturity))
	}
	if !p.SecurityACR.IsKnown() {
		out = append(out, fmt.Sprintf("security_acr=%s", p.SecurityACR))
	}
	if !p.SentinelACR.IsKnown() {
		out = append(out, fmt.Sprintf("sentinel_acr=%s", p.SentinelACR))
	}
	return out
}

// String returns a compact description used in log lines.
func (p *Profile) String() string {
	return fmt.Sprintf("profile(e5=%d, identity=%s, defender=%t, sentinel=%t, industry=%s, incident=%t, multicloud=%t, data=%s, cloud=%s, securityACR=%s, sentinelACR=%s)",
		p.E5Propensity, p.IdentityMaturity, p.DefenderActive, p.SentinelActive, p.Industry,
		p.RecentIncident, p.Multicloud, p.DataRisk, p.CloudMaturity, p.SecurityACR, p.SentinelACR)
}

// Option is a functional option for building a Profile.
type Option func(*Profile)

// WithName sets the client name.
func WithName(name string) Option {
	return func(p *Profile) { p.Name = name }
}

// WithE5Propensity sets the propensity score.
func WithE5Propensity(score int) Option {
	return func(p *Profile) { p.E5Propensity = score }
}

// WithIdentityMaturity sets the identity maturity.
func WithIdentityMaturity(s string) Option {
	return func(p *Profile) { p.IdentityMaturity = ParseIdentityMaturity(s) }
}

// WithDefenderActive sets the Defender flag.
func WithDefenderActive(v bool) Option {
	return func(p *Profile) { p.DefenderActive = v }
}

// WithSentinelActive sets the Sentinel flag.
func WithSentinelActive(v bool) Option {
	return func(p *Profile) { p.SentinelActive = v }
}

// WithIndustry sets the industry.
func WithIndustry(s string) Option {
	return func(p *Profile) { p.Industry = ParseIndustry(s) }
}

// WithRecentIncident sets the recent incident flag.
func WithRecentIncident(v bool) Option {
	return func(p *Profile) { p.RecentIncident = v }
}

// WithMulticloud sets the multicloud flag.
func WithMulticloud(v bool) Option {
	return func(p *Profile) { p.Multicloud = v }
}

// WithDataRisk sets the data risk.
func WithDataRisk(s string) Option {
	return func(p *Profile) { p.DataRisk = ParseDataRisk(s) }
}

// WithCloudMaturity sets the cloud maturity.
func WithCloudMaturity(s string) Option {
	return func(p *Profile) { p.CloudMaturity = ParseCloudMaturity(s) }
}

// WithSecurityACR sets the security ACR tier.
func WithSecurityACR(s string) Option {
	return func(p *Profile) { p.SecurityACR = ParseACRTier(s) }
}

// WithSentinelACR sets the Sentinel ACR tier.
func WithSentinelACR(s string) Option {
	return func(p *Profile) { p.SentinelACR = ParseACRTier(s) }
}

// Build returns the default profile with opts applied.
func Build(opts ...Option) *Profile {
	p := New()
	for _, opt := range opts {
		opt(p)
	}
	return p
}
