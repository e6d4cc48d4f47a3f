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
	"os"

	"github.com/urfave/cli/v3"

	mcptools "github.com/mchmarny/propensity/pkg/mcp"
	"github.com/mchmarny/propensity/pkg/recommendation"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "mcp",
		EnableShellCompletion: true,
		Usage:                 "Serve recommendation tools over MCP stdio",
		Description: `Run a Model Context Protocol server on stdin/stdout exposing the
recommend_offers and list_offer_catalog tools.

Logs are written to stderr so they do not corrupt the protocol stream.`,
		Flags: []cli.Flag{
			schemaFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			schema, err := parseSchema(cmd)
			if err != nil {
				return err
			}

			b := recommendation.NewBuilder(
				recommendation.WithVersion(version),
				recommendation.WithSchema(schema),
			)

			return mcptools.Serve(ctx, b, os.Stdin, os.Stdout)
		},
	}
}
