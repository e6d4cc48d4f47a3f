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
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/mchmarny/propensity/pkg/logging"
	"github.com/mchmarny/propensity/pkg/recommendation"
	"github.com/mchmarny/propensity/pkg/rules"
	"github.com/mchmarny/propensity/pkg/server"
)

const (
	name           = "propensityd"
	versionDefault = "dev"

	// EnvVarSchema selects the default rule set of the API.
	EnvVarSchema = "PROPENSITY_SCHEMA"

	// Route paths.
	PathRecommendations = "/v1/recommendations"
	PathCatalog         = "/v1/catalog"
)

var (
	// overridden during build with ldflags, e.g.
	// -X "github.com/mchmarny/propensity/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the API handlers served by b.
func Routes(b *recommendation.Builder) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathRecommendations: b.HandleRecommendations,
		PathCatalog:         b.HandleCatalog,
	}
}

// NewServer wires the API routes of b into a server. Extra options are
// applied after the defaults.
func NewServer(b *recommendation.Builder, opts ...server.Option) *server.Server {
	base := []server.Option{
		server.WithName(name),
		server.WithVersion(b.Version),
		server.WithHandler(Routes(b)),
	}
	return server.New(append(base, opts...)...)
}

// Serve starts the API server and blocks until shutdown. The default
// schema is read from PROPENSITY_SCHEMA and the log level from LOG_LEVEL.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	schema, err := rules.ParseSchema(os.Getenv(EnvVarSchema))
	if err != nil {
		slog.Error("invalid default schema", "env", EnvVarSchema, "error", err)
		return err
	}

	b := recommendation.NewBuilder(
		recommendation.WithVersion(version),
		recommendation.WithSchema(schema),
	)

	if err := NewServer(b).Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
