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

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNew_Options(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s := New()
		require.NotNil(t, s.config)
		require.NotNil(t, s.httpServer)
		require.NotNil(t, s.rateLimiter)
		assert.Equal(t, defaultName, s.config.Name)
		assert.Contains(t, s.config.Handlers, "/")
	})

	t.Run("name version and handlers", func(t *testing.T) {
		s := New(
			WithName("propensityd"),
			WithVersion("v1.2.3"),
			WithHandler(map[string]http.HandlerFunc{"/v1/catalog": noContent}),
			WithHandler(map[string]http.HandlerFunc{"/v1/recommendations": noContent}),
		)
		assert.Equal(t, "propensityd", s.config.Name)
		assert.Equal(t, "v1.2.3", s.config.Version)
		assert.Contains(t, s.config.Handlers, "/v1/catalog")
		assert.Contains(t, s.config.Handlers, "/v1/recommendations")
	})

	t.Run("config replaces settings", func(t *testing.T) {
		cfg := NewConfig()
		cfg.Name = "propensity-test"
		cfg.Port = 9090
		cfg.RateLimit = 500

		s := New(WithConfig(cfg))
		assert.Equal(t, "propensity-test", s.config.Name)
		assert.Equal(t, 9090, s.config.Port)
		assert.EqualValues(t, 500, s.config.RateLimit)
		assert.Equal(t, ":9090", s.httpServer.Addr)
	})

	t.Run("config keeps earlier handlers", func(t *testing.T) {
		cfg := NewConfig()
		s := New(WithHandler(map[string]http.HandlerFunc{"/v1/kept": noContent}), WithConfig(cfg))

		assert.Contains(t, s.config.Handlers, "/v1/kept")
		assert.Nil(t, cfg.Handlers, "caller config must not be modified")
	})
}

func TestHealthAndReady(t *testing.T) {
	s := New()
	h := s.Handler()

	w := serve(h, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusServiceUnavailable, serve(h, http.MethodGet, "/ready").Code)
	s.setReady(true)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/ready").Code)
	s.setReady(false)
	assert.Equal(t, http.StatusServiceUnavailable, serve(h, http.MethodGet, "/ready").Code)
}

func TestRouter(t *testing.T) {
	h := New(WithHandler(map[string]http.HandlerFunc{"/v1/catalog": noContent})).Handler()

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"health", http.MethodGet, "/health", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"root", http.MethodGet, "/", http.StatusOK},
		{"root wrong method", http.MethodPost, "/", http.StatusMethodNotAllowed},
		{"registered handler", http.MethodGet, "/v1/catalog", http.StatusNoContent},
		{"unknown path", http.MethodGet, "/v1/offers", http.StatusNotFound},
		{"health wrong method", http.MethodPost, "/health", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(h, tt.method, tt.path).Code)
		})
	}
}

func TestRouter_HandlerRunsBehindMiddleware(t *testing.T) {
	var seen string
	h := New(WithHandler(map[string]http.HandlerFunc{
		"/v1/recommendations": func(w http.ResponseWriter, r *http.Request) {
			seen = RequestIDFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		},
	})).Handler()

	w := serve(h, http.MethodGet, "/v1/recommendations")

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get("X-Request-Id"))
	assert.Equal(t, DefaultAPIVersion, w.Header().Get("X-API-Version"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
}

func TestRouter_NotFoundIsStructured(t *testing.T) {
	w := serve(New().Handler(), http.MethodGet, "/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "NOT_FOUND", resp.Code)
	assert.NotEmpty(t, resp.RequestID)
}

func TestRootListsRoutes(t *testing.T) {
	s := New(
		WithName("propensityd"),
		WithVersion("v1.2.3"),
		WithHandler(map[string]http.HandlerFunc{"/v1/recommendations": noContent}),
	)

	w := serve(s.Handler(), http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)

	var resp RootResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "propensityd", resp.Name)
	assert.Equal(t, "v1.2.3", resp.Version)
	assert.False(t, resp.Ready)
	assert.Contains(t, resp.Routes, "/v1/recommendations")
}

func TestCustomRootHandlerNotOverridden(t *testing.T) {
	called := false
	s := New(WithHandler(map[string]http.HandlerFunc{
		"/": func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		},
	}))

	serve(s.Handler(), http.MethodGet, "/")
	assert.True(t, called)
}

func TestGracefulShutdown(t *testing.T) {
	cfg := NewConfig()
	cfg.Port = 18181
	cfg.ShutdownTimeout = 100 * time.Millisecond

	s := New(WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("shutdown timed out")
	}
}
