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

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/mchmarny/propensity/pkg/recommendation"
	"github.com/mchmarny/propensity/pkg/rules"
	"github.com/mchmarny/propensity/pkg/server"
)

// Serve blocks until a signal arrives, so these tests drive the same
// routes through NewServer and its in-process handler instead.

func TestConstants(t *testing.T) {
	if name != "propensityd" {
		t.Errorf("name = %q, want %q", name, "propensityd")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

func TestRoutes(t *testing.T) {
	routes := Routes(recommendation.NewBuilder())

	for _, path := range []string{PathRecommendations, PathCatalog} {
		if h, ok := routes[path]; !ok || h == nil {
			t.Errorf("expected %s route", path)
		}
	}
	if len(routes) != 2 {
		t.Errorf("expected exactly 2 routes, got %d", len(routes))
	}
}

func TestNewServer_Endpoints(t *testing.T) {
	h := NewServer(recommendation.NewBuilder(recommendation.WithVersion("test"))).Handler()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{"recommendations get", http.MethodGet, PathRecommendations + "?e5_propensity=30", "", http.StatusOK},
		{"recommendations post", http.MethodPost, PathRecommendations, `{"e5_propensity": 90, "sentinel_active": true}`, http.StatusOK},
		{"recommendations bad schema", http.MethodGet, PathRecommendations + "?schema=nope", "", http.StatusBadRequest},
		{"recommendations put", http.MethodPut, PathRecommendations, "", http.StatusMethodNotAllowed},
		{"catalog", http.MethodGet, PathCatalog, "", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"root", http.MethodGet, "/", "", http.StatusOK},
		{"unknown", http.MethodGet, "/v2/recommendations", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d; body: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if w.Header().Get("Content-Type") == "" {
				t.Error("expected Content-Type header to be set")
			}
		})
	}
}

func TestNewServer_RootListsRoutes(t *testing.T) {
	h := NewServer(recommendation.NewBuilder()).Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp server.RootResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode root response: %v", err)
	}
	if resp.Name != name {
		t.Errorf("expected name %q, got %q", name, resp.Name)
	}
	for _, want := range []string{PathCatalog, PathRecommendations} {
		found := false
		for _, r := range resp.Routes {
			if r == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected route %s in %v", want, resp.Routes)
		}
	}
}

func TestNewServer_ExtraOptions(t *testing.T) {
	cfg := server.NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1

	h := NewServer(recommendation.NewBuilder(), server.WithConfig(cfg)).Handler()

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, PathCatalog, nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, PathCatalog, nil))

	if first.Code != http.StatusOK {
		t.Errorf("expected first request 200, got %d", first.Code)
	}
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected second request 429, got %d", second.Code)
	}
}

func TestNewServer_ConcurrentRequests(t *testing.T) {
	b := recommendation.NewBuilder(recommendation.WithSchema(rules.SchemaACR))
	h := NewServer(b).Handler()

	var wg sync.WaitGroup
	errs := make(chan string, 50)
	for i := range 50 {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, PathRecommendations+"?e5_propensity="+strings.Repeat("9", 1+score%2), nil)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				errs <- w.Body.String()
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("unexpected failure: %s", e)
	}
}
