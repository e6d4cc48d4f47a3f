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
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mchmarny/propensity/pkg/logging"
	"github.com/mchmarny/propensity/pkg/recommendation"
)

const serverName = "propensity"

// NewServer returns an MCP server exposing the recommendation tools of b.
func NewServer(b *recommendation.Builder) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		b.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	recommend := NewRecommendTool(b)
	s.AddTool(recommend.Definition(), recommend.Handle)

	cat := NewCatalogTool(b)
	s.AddTool(cat.Definition(), cat.Handle)

	return s
}

// Serve runs the MCP server over the given streams until ctx is canceled
// or stdin is closed. Logs go to the default slog handler, which must not
// write to stdout.
func Serve(ctx context.Context, b *recommendation.Builder, stdin io.Reader, stdout io.Writer) error {
	stdio := server.NewStdioServer(NewServer(b))
	stdio.SetErrorLogger(logging.NewLogLogger(slog.LevelError, false))

	slog.Info("serving mcp tools over stdio", "name", serverName, "version", b.Version)
	if err := stdio.Listen(ctx, stdin, stdout); err != nil && ctx.Err() == nil {
		return fmt.Errorf("mcp server failed: %w", err)
	}
	return nil
}

const instructions = `Recommends security offers for a client from a fixed decision table.

Call recommend_offers with whatever client attributes are known. Every
argument is optional; missing ones take their defaults (e5_propensity 0,
identity_maturity unknown, risk and maturity levels medium, flags false).
The result lists the recommended offers with rationale and timeline,
followed by the full offer catalog. An empty list means no rule matched.

Call list_offer_catalog to see every offer grouped by solution area.`
