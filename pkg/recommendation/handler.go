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
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mchmarny/propensity/pkg/defaults"
	apperrors "github.com/mchmarny/propensity/pkg/errors"
	"github.com/mchmarny/propensity/pkg/profile"
	"github.com/mchmarny/propensity/pkg/rules"
	"github.com/mchmarny/propensity/pkg/serializer"
	"github.com/mchmarny/propensity/pkg/server"
)

// ParamSchema selects the rule set for a request.
const ParamSchema = "schema"

// HandleRecommendations evaluates a profile given as query parameters (GET)
// or as a JSON or YAML body (POST). The schema query parameter selects the
// rule set for both methods.
func (b *Builder) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecommendationHandlerTimeout)
	defer cancel()

	var p *profile.Profile
	var err error

	switch r.Method {
	case http.MethodGet:
		p, err = profile.ParseFromRequest(r)
	case http.MethodPost:
		body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
		defer body.Close()
		p, err = profile.ParseFromBody(body, r.Header.Get("Content-Type"))
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet, http.MethodPost},
			})
		return
	}

	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, apperrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{
					"limit": tooLarge.Limit,
				})
			return
		}
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid client profile", false, map[string]any{
				"error": err.Error(),
			})
		return
	}

	schema := b.Schema
	if s := r.URL.Query().Get(ParamSchema); s != "" {
		if schema, err = rules.ParseSchema(s); err != nil {
			server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
				"Invalid schema", false, map[string]any{
					"schema":    s,
					"supported": rules.GetSchemaTypes(),
				})
			return
		}
	}

	slog.Debug("recommendation request",
		"requestID", server.RequestIDFromContext(ctx),
		"method", r.Method,
		"schema", schema,
		"profile", p.String(),
	)

	result, err := b.Build(ctx, p, schema)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to build recommendations", nil)
		return
	}

	if r.Method == http.MethodGet {
		w.Header().Set("Cache-Control", cacheControl(b.CacheTTL))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	serializer.Respond(w, r, http.StatusOK, result)
}

// HandleCatalog returns the offer catalog.
func (b *Builder) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.CatalogHandlerTimeout)
	defer cancel()

	cat, err := b.Catalog(ctx)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to load offer catalog", nil)
		return
	}

	w.Header().Set("Cache-Control", cacheControl(defaults.CatalogCacheTTL))
	serializer.Respond(w, r, http.StatusOK, cat)
}

func cacheControl(ttl time.Duration) string {
	if ttl <= 0 {
		return "no-cache"
	}
	return fmt.Sprintf("public, max-age=%d", int(ttl.Seconds()))
}
