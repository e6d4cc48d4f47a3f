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

package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mchmarny/propensity/pkg/profile"
	"github.com/mchmarny/propensity/pkg/recommendation"
	"github.com/mchmarny/propensity/pkg/rules"
)

// Tool names.
const (
	ToolRecommendOffers  = "recommend_offers"
	ToolListOfferCatalog = "list_offer_catalog"

	argSchema = "schema"
)

// RecommendTool handles the recommend_offers tool.
type RecommendTool struct {
	builder *recommendation.Builder
}

// NewRecommendTool creates a RecommendTool backed by b.
func NewRecommendTool(b *recommendation.Builder) *RecommendTool {
	return &RecommendTool{builder: b}
}

// Definition returns the MCP tool definition for registration.
func (t *RecommendTool) Definition() mcp.Tool {
	return mcp.NewTool(ToolRecommendOffers,
		mcp.WithDescription(
			"Recommend security offers for a client profile. Every argument is optional "+
				"and defaults when omitted. Returns a markdown report with each recommended "+
				"offer, its rationale and timeline, followed by the offer catalog.",
		),
		mcp.WithString(profile.ParamName,
			mcp.Description("Client name, echoed in the result."),
		),
		mcp.WithNumber(profile.ParamE5Propensity,
			mcp.Description("E5 license propensity score from 0 to 100."),
			mcp.Min(profile.MinPropensity),
			mcp.Max(profile.MaxPropensity),
		),
		mcp.WithString(profile.ParamIdentityMaturity,
			mcp.Description("Identity maturity."),
			mcp.Enum(profile.GetIdentityMaturityTypes()...),
		),
		mcp.WithBoolean(profile.ParamDefenderActive,
			mcp.Description("Microsoft Defender is deployed and active."),
		),
		mcp.WithBoolean(profile.ParamSentinelActive,
			mcp.Description("Microsoft Sentinel is deployed and active."),
		),
		mcp.WithString(profile.ParamIndustry,
			mcp.Description("Client industry, e.g. healthcare or financial services."),
		),
		mcp.WithBoolean(profile.ParamRecentIncident,
			mcp.Description("The client had a recent security incident."),
		),
		mcp.WithBoolean(profile.ParamMulticloud,
			mcp.Description("The client runs workloads on more than one cloud."),
		),
		mcp.WithString(profile.ParamDataRisk,
			mcp.Description("Data exposure risk."),
			mcp.Enum(profile.GetDataRiskTypes()...),
		),
		mcp.WithString(profile.ParamCloudMaturity,
			mcp.Description("Cloud security maturity."),
			mcp.Enum(profile.GetCloudMaturityTypes()...),
		),
		mcp.WithString(profile.ParamSecurityACR,
			mcp.Description("Security consumed revenue tier."),
			mcp.Enum(profile.GetACRTierTypes()...),
		),
		mcp.WithString(profile.ParamSentinelACR,
			mcp.Description("Sentinel consumed revenue tier."),
			mcp.Enum(profile.GetACRTierTypes()...),
		),
		mcp.WithString(argSchema,
			mcp.Description("Rule set to evaluate. Defaults to the server's schema."),
			mcp.Enum(rules.GetSchemaTypes()...),
		),
	)
}

// Handle processes the recommend_offers tool call. Invalid input is
// reported as a tool error so the model can correct it.
func (t *RecommendTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	schema := t.builder.Schema
	if s := req.GetString(argSchema, ""); s != "" {
		parsed, err := rules.ParseSchema(s)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		schema = parsed
	}

	values, err := argValues(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	values.Del(argSchema)

	p, err := profile.ParseFromValues(values)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid client profile: %v", err)), nil
	}

	res, err := t.builder.Build(ctx, p, schema)
	if err != nil {
		return nil, fmt.Errorf("building recommendations: %w", err)
	}

	return mcp.NewToolResultText(res.Markdown()), nil
}

// CatalogTool handles the list_offer_catalog tool.
type CatalogTool struct {
	builder *recommendation.Builder
}

// NewCatalogTool creates a CatalogTool backed by b.
func NewCatalogTool(b *recommendation.Builder) *CatalogTool {
	return &CatalogTool{builder: b}
}

// Definition returns the MCP tool definition for registration.
func (t *CatalogTool) Definition() mcp.Tool {
	return mcp.NewTool(ToolListOfferCatalog,
		mcp.WithDescription("List every security offer grouped by solution area."),
	)
}

// Handle processes the list_offer_catalog tool call.
func (t *CatalogTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cat, err := t.builder.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading offer catalog: %w", err)
	}
	return mcp.NewToolResultText(recommendation.CatalogMarkdown(cat.Areas())), nil
}
