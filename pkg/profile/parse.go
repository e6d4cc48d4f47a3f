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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mchmarny/propensity/pkg/header"
	"github.com/mchmarny/propensity/pkg/serializer"
)

// Query parameter names. Each field also accepts the short alias used by
// the CLI flags.
const (
	ParamName             = "name"
	ParamE5Propensity     = "e5_propensity"
	ParamIdentityMaturity = "identity_maturity"
	ParamDefenderActive   = "defender_active"
	ParamSentinelActive   = "sentinel_active"
	ParamIndustry         = "industry"
	ParamRecentIncident   = "recent_incident"
	ParamMulticloud       = "multicloud"
	ParamDataRisk         = "data_risk"
	ParamCloudMaturity    = "cloud_maturity"
	ParamSecurityACR      = "security_acr"
	ParamSentinelACR      = "sentinel_acr"
)

var paramAliases = map[string]string{
	ParamE5Propensity:     "e5",
	ParamIdentityMaturity: "identity",
	ParamDefenderActive:   "defender",
	ParamSentinelActive:   "sentinel",
	ParamRecentIncident:   "incident",
	ParamDataRisk:         "data-risk",
	ParamCloudMaturity:    "cloud-maturity",
	ParamSecurityACR:      "security-acr",
	ParamSentinelACR:      "sentinel-acr",
}

// ParseFromRequest parses a profile from HTTP query parameters.
func ParseFromRequest(r *http.Request) (*Profile, error) {
	if r == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}
	return ParseFromValues(r.URL.Query())
}

// ParseFromValues parses a profile from URL values. Every parameter is
// optional. Only malformed numbers and booleans are errors; unknown enum
// values are kept.
func ParseFromValues(values url.Values) (*Profile, error) {
	get := func(key string) string {
		if v := values.Get(key); v != "" {
			return v
		}
		if alias, ok := paramAliases[key]; ok {
			return values.Get(alias)
		}
		return ""
	}

	p := New()
	p.Name = strings.TrimSpace(get(ParamName))

	if s := get(ParamE5Propensity); s != "" {
		n, err := ParsePropensity(s)
		if err != nil {
			return nil, err
		}
		p.E5Propensity = n
	}

	flags := []struct {
		key string
		dst *bool
	}{
		{ParamDefenderActive, &p.DefenderActive},
		{ParamSentinelActive, &p.SentinelActive},
		{ParamRecentIncident, &p.RecentIncident},
		{ParamMulticloud, &p.Multicloud},
	}
	for _, f := range flags {
		s := get(f.key)
		if s == "" {
			continue
		}
		b, err := ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", f.key, err)
		}
		*f.dst = b
	}

	p.IdentityMaturity = ParseIdentityMaturity(get(ParamIdentityMaturity))
	p.Industry = ParseIndustry(get(ParamIndustry))
	p.DataRisk = ParseDataRisk(get(ParamDataRisk))
	p.CloudMaturity = ParseCloudMaturity(get(ParamCloudMaturity))
	p.SecurityACR = ParseACRTier(get(ParamSecurityACR))
	p.SentinelACR = ParseACRTier(get(ParamSentinelACR))

	return p, nil
}

// ParsePropensity parses an integer propensity score.
func ParsePropensity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid e5_propensity value %q: must be an integer", s)
	}
	return n, nil
}

// ParseBool accepts the strconv forms plus yes/no and on/off.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "on":
		return true, nil
	case "no", "n", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%q is not a boolean", s)
	}
	return b, nil
}

// rawDocument accepts both a bare profile and a ClientProfile resource.
type rawDocument struct {
	header.Header `json:",inline" yaml:",inline"`
	Profile       `json:",inline" yaml:",inline"`

	Spec *Profile `json:"spec,omitempty" yaml:"spec,omitempty"`
}

func (d *rawDocument) toProfile() (*Profile, error) {
	if err := d.Header.Validate(header.KindClientProfile); err != nil {
		return nil, err
	}

	p := &d.Profile
	if d.Spec != nil {
		p = d.Spec
	}
	if p.Name == "" {
		p.Name = d.Header.Metadata["name"]
	}
	return p.WithDefaults(), nil
}

// ParseFromBody parses a profile from a JSON or YAML body. The format is
// chosen from contentType; empty or unrecognized types are read as JSON.
func ParseFromBody(body io.Reader, contentType string) (*Profile, error) {
	if body == nil {
		return nil, fmt.Errorf("request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("request body is empty")
	}

	format := serializer.FormatFromContentType(contentType)
	raw, err := serializer.FromReader[rawDocument](format, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s body: %w", format, err)
	}
	return raw.toProfile()
}

// LoadFromFile loads a profile from a local path or http(s) URL. The
// format is derived from the extension.
func LoadFromFile(ctx context.Context, path string) (*Profile, error) {
	raw, err := serializer.FromFile[rawDocument](ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile file: %w", err)
	}
	return raw.toProfile()
}
