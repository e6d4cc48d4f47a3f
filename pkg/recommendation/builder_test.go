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

package recommendation

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mchmarny/propensity/pkg/catalog"
	apperrors "github.com/mchmarny/propensity/pkg/errors"
	"github.com/mchmarny/propensity/pkg/header"
	"github.com/mchmarny/propensity/pkg/profile"
	"github.com/mchmarny/propensity/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func capstoneProfile() *profile.Profile {
	return profile.Build(
		profile.WithName("contoso"),
		profile.WithE5Propensity(75),
		profile.WithIdentityMaturity("weak"),
		profile.WithDataRisk("high"),
		profile.WithMulticloud(true),
		profile.WithCloudMaturity("low"),
	)
}

func TestNewBuilder(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, rules.DefaultSchema, b.Schema)
	assert.Positive(t, b.CacheTTL)

	b = NewBuilder(WithVersion("v1.0.0"), WithSchema(rules.SchemaACR), WithCacheTTL(time.Minute))
	assert.Equal(t, "v1.0.0", b.Version)
	assert.Equal(t, rules.SchemaACR, b.Schema)
	assert.Equal(t, time.Minute, b.CacheTTL)
}

func TestBuild_Standard(t *testing.T) {
	b := NewBuilder(WithVersion("v1.2.3"))

	res, err := b.Build(context.Background(), capstoneProfile(), "")
	require.NoError(t, err)

	assert.Equal(t, header.KindRecommendations, res.Kind)
	assert.Equal(t, header.APIVersion, res.APIVersion)
	assert.Equal(t, "v1.2.3", res.Metadata[header.MetadataVersion])
	assert.NotEmpty(t, res.Metadata[header.MetadataTimestamp])

	assert.Equal(t, rules.SchemaStandard, res.Schema)
	assert.Empty(t, res.Actions)
	assert.Empty(t, res.Warnings)
	require.NotEmpty(t, res.Recommendations)
	assert.Equal(t, rules.RuleIAMDiagnosticsFirst, res.MatchedRules[0])
	assert.Contains(t, res.MatchedRules, rules.RuleCrossSolutionZeroTrust)
	assert.Len(t, res.MatchedRules, len(res.Recommendations))

	for i, rec := range res.Recommendations {
		assert.Equal(t, res.MatchedRules[i], rec.RuleID)
	}

	assert.Len(t, res.Catalog, len(catalog.MustLoad().Areas()))
}

func TestBuild_EmptyResult(t *testing.T) {
	res, err := NewBuilder().Build(context.Background(), profile.Build(profile.WithE5Propensity(50)), rules.SchemaStandard)
	require.NoError(t, err)

	assert.True(t, res.Empty())
	assert.NotNil(t, res.MatchedRules)
	assert.Empty(t, res.MatchedRules)
	assert.NotEmpty(t, res.Catalog)
}

func TestBuild_NilProfileUsesDefaults(t *testing.T) {
	res, err := NewBuilder().Build(context.Background(), nil, "")
	require.NoError(t, err)

	require.NotNil(t, res.Profile)
	assert.Equal(t, profile.New(), res.Profile)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	p := &profile.Profile{E5Propensity: 90, IdentityMaturity: "  GOOD "}

	res, err := NewBuilder().Build(context.Background(), p, "")
	require.NoError(t, err)

	assert.Equal(t, profile.IdentityMaturity("  GOOD "), p.IdentityMaturity)
	assert.Equal(t, profile.IdentityGood, res.Profile.IdentityMaturity)
}

func TestBuild_Schemas(t *testing.T) {
	p := capstoneProfile()
	p.Industry = "healthcare"
	p.RecentIncident = true

	b := NewBuilder()
	for _, schema := range []rules.Schema{rules.SchemaStandard, rules.SchemaACR, rules.SchemaIndustry} {
		t.Run(string(schema), func(t *testing.T) {
			res, err := b.Build(context.Background(), p, schema)
			require.NoError(t, err)
			assert.Equal(t, schema, res.Schema)

			want, err := rules.EvaluateSchema(schema, p)
			require.NoError(t, err)
			assert.Equal(t, want.MatchedRules, res.MatchedRules)

			if schema == rules.SchemaIndustry {
				assert.NotEmpty(t, res.Actions)
				assert.Empty(t, res.Recommendations)
			} else {
				assert.Empty(t, res.Actions)
			}
		})
	}
}

func TestBuild_BuilderDefaultSchema(t *testing.T) {
	p := capstoneProfile()
	p.Industry = "financial services"

	res, err := NewBuilder(WithSchema(rules.SchemaIndustry)).Build(context.Background(), p, "")
	require.NoError(t, err)
	assert.Equal(t, rules.SchemaIndustry, res.Schema)
}

func TestBuild_UnknownSchema(t *testing.T) {
	_, err := NewBuilder().Build(context.Background(), capstoneProfile(), rules.Schema("variant"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
}

func TestBuild_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder().Build(ctx, capstoneProfile(), "")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTimeout, apperrors.CodeOf(err))
}

func TestBuild_WarningsForUnrecognizedValues(t *testing.T) {
	p := profile.Build(profile.WithE5Propensity(50), profile.WithIdentityMaturity("excellent"))

	res, err := NewBuilder().Build(context.Background(), p, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"identity_maturity=excellent"}, res.Warnings)
}

func TestBuild_Deterministic(t *testing.T) {
	b := NewBuilder()
	first, err := b.Build(context.Background(), capstoneProfile(), "")
	require.NoError(t, err)

	for range 10 {
		next, err := b.Build(context.Background(), capstoneProfile(), "")
		require.NoError(t, err)
		assert.Equal(t, first.MatchedRules, next.MatchedRules)
		assert.Equal(t, first.Recommendations, next.Recommendations)
	}
}

func TestResult_Offers(t *testing.T) {
	res, err := NewBuilder().Build(context.Background(), capstoneProfile(), "")
	require.NoError(t, err)

	offers := res.Offers()
	require.NotEmpty(t, offers)
	assert.Equal(t, catalog.OfferIdentityDiagnostics, offers[0])

	seen := map[string]bool{}
	cat := catalog.MustLoad()
	for _, o := range offers {
		assert.False(t, seen[o], "duplicate offer %s", o)
		seen[o] = true
		assert.True(t, cat.Contains(o), "offer %s not in catalog", o)
	}
}

func TestBuilder_Catalog(t *testing.T) {
	cat, err := NewBuilder().Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, header.KindOfferCatalog, cat.Kind)
	assert.NotEmpty(t, cat.Areas())
}

func TestResult_EncodesSchemaListWhenEmpty(t *testing.T) {
	tests := []struct {
		schema  rules.Schema
		present string
		absent  string
	}{
		{rules.SchemaStandard, "recommendations", "actions"},
		{rules.SchemaACR, "recommendations", "actions"},
		{rules.SchemaIndustry, "actions", "recommendations"},
	}

	for _, tt := range tests {
		t.Run(string(tt.schema), func(t *testing.T) {
			res := &Result{Schema: tt.schema}

			data, err := json.Marshal(res)
			require.NoError(t, err)
			var doc map[string]any
			require.NoError(t, json.Unmarshal(data, &doc))
			assert.Equal(t, []any{}, doc[tt.present])
			assert.Equal(t, []any{}, doc["matchedRules"])
			assert.NotContains(t, doc, tt.absent)

			data, err = yaml.Marshal(res)
			require.NoError(t, err)
			doc = nil
			require.NoError(t, yaml.Unmarshal(data, &doc))
			assert.Equal(t, []any{}, doc[tt.present])
			assert.NotContains(t, doc, tt.absent)
		})
	}
}

func TestBuild_EmptyResultEncodesEmptyList(t *testing.T) {
	res, err := NewBuilder().Build(context.Background(), profile.Build(profile.WithE5Propensity(50)), rules.SchemaStandard)
	require.NoError(t, err)
	require.True(t, res.Empty())

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"recommendations":[]`)
	assert.Contains(t, string(data), `"kind":"Recommendations"`)

	var back Result
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, res.Schema, back.Schema)
	assert.Equal(t, res.Catalog, back.Catalog)
}
