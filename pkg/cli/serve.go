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

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/propensity/pkg/api"
	"github.com/mchmarny/propensity/pkg/recommendation"
	"github.com/mchmarny/propensity/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the recommendation HTTP API",
		Description: `Serve the recommendation API until interrupted.

Endpoints:
  - GET|POST /v1/recommendations
  - GET /v1/catalog
  - GET /health, /ready, /metrics

Server limits are read from SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT and
RATE_LIMIT_BURST.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "port to listen on (default: 8080)",
				Sources: cli.EnvVars(server.EnvVarPort),
			},
			schemaFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			schema, err := parseSchema(cmd)
			if err != nil {
				return err
			}

			cfg := server.NewConfig()
			if cmd.IsSet("port") {
				port := int(cmd.Int("port"))
				if port < 1 || port > 65535 {
					return fmt.Errorf("invalid port: %d", port)
				}
				cfg.Port = port
			}

			b := recommendation.NewBuilder(
				recommendation.WithVersion(version),
				recommendation.WithSchema(schema),
			)

			slog.Info("starting", "name", name, "version", version, "commit", commit, "date", date)
			return api.NewServer(b, server.WithConfig(cfg)).Run(ctx)
		},
	}
}
