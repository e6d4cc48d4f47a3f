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
	"log/slog"
	"time"

	"github.com/mchmarny/propensity/pkg/catalog"
	"github.com/mchmarny/propensity/pkg/defaults"
	apperrors "github.com/mchmarny/propensity/pkg/errors"
	"github.com/mchmarny/propensity/pkg/header"
	"github.com/mchmarny/propensity/pkg/profile"
	"github.com/mchmarny/propensity/pkg/rules"
)

// Builder evaluates profiles and wraps the outcome in a Result document.
// A Builder holds no per-request state and is safe for concurrent use.
type Builder struct {
	// Version is stamped into result metadata.
	Version string
	// Schema is used when a request does not name one.
	Schema rules.Schema
	// CacheTTL sets the max-age of successful HTTP responses.
	CacheTTL time.Duration
}

// Option configures a Builder.
type Option func(*Builder)

// WithVersion sets the tool version recorded in result metadata.
func WithVersion(version string) Option {
	return func(b *Builder) {
		b.Version = version
	}
}

// WithSchema sets the schema used when a request does not name one.
func WithSchema(schema rules.Schema) Option {
	return func(b *Builder) {
		b.Schema = schema
	}
}

// WithCacheTTL sets the Cache-Control max-age of HTTP responses.
func WithCacheTTL(ttl time.Duration) Option {
	return func(b *Builder) {
		b.CacheTTL = ttl
	}
}

// NewBuilder returns a Builder with the standard schema and default cache TTL.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		Schema:   rules.DefaultSchema,
		CacheTTL: defaults.RecommendationCacheTTL,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build evaluates p against schema. A nil profile is evaluated with every
// field at its default; an empty schema selects the builder's schema.
func (b *Builder) Build(ctx context.Context, p *profile.Profile, schema rules.Schema) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeTimeout, "recommendation canceled", err)
	}

	if p == nil {
		p = profile.New()
	} else {
		cp := *p
		p = cp.WithDefaults()
	}
	if schema == "" {
		schema = b.Schema
	}

	start := time.Now()

	outcome, err := rules.EvaluateSchema(schema, p)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"unsupported schema", err, map[string]any{
				"schema":    string(schema),
				"supported": rules.GetSchemaTypes(),
			})
	}

	cat, err := catalog.Load(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "offer catalog unavailable", err)
	}

	res := &Result{
		Schema:          outcome.Schema,
		Profile:         p,
		Warnings:        p.Unrecognized(),
		MatchedRules:    outcome.MatchedRules,
		Recommendations: outcome.Recommendations,
		Actions:         outcome.Actions,
		Catalog:         cat.Areas(),
	}
	res.Init(header.KindRecommendations, header.APIVersion, b.Version)

	buildDuration.WithLabelValues(string(res.Schema)).Observe(time.Since(start).Seconds())
	evaluationsTotal.WithLabelValues(string(res.Schema), outcomeLabel(res)).Inc()
	for _, id := range res.MatchedRules {
		ruleMatches.WithLabelValues(string(res.Schema), id).Inc()
	}

	if len(res.Warnings) > 0 {
		slog.Warn("profile has unrecognized values",
			"profile", p.Name,
			"values", res.Warnings,
		)
	}

	slog.Debug("recommendation built",
		"schema", res.Schema,
		"profile", p.String(),
		"matched", res.MatchedRules,
	)

	return res, nil
}

// Catalog returns the offer catalog as an OfferCatalog document.
func (b *Builder) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	cat, err := catalog.Load(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "offer catalog unavailable", err)
	}
	return cat, nil
}

func outcomeLabel(r *Result) string {
	if r.Empty() {
		return "empty"
	}
	return "matched"
}
