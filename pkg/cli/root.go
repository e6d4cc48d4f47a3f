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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/propensity/pkg/logging"
	"github.com/mchmarny/propensity/pkg/rules"
	"github.com/mchmarny/propensity/pkg/serializer"
)

const (
	name           = "propensity"
	versionDefault = "dev"

	// EnvVarSchema selects the default rule set.
	EnvVarSchema = "PROPENSITY_SCHEMA"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %v)", serializer.SupportedFormats()),
	}

	schemaFlag = &cli.StringFlag{
		Name:    "schema",
		Aliases: []string{"s"},
		Value:   string(rules.DefaultSchema),
		Usage:   fmt.Sprintf("rule set to evaluate (supported values: %v)", rules.GetSchemaTypes()),
		Sources: cli.EnvVars(EnvVarSchema),
	}
)

// Execute runs the root command. It is the only entry point of the CLI
// binary and exits the process on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		code := 1
		if ctx.Err() != nil {
			code = 2
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(code)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Recommend security offers for a client profile",
		Description: `Evaluates a client profile against a fixed decision table and
recommends security offers from the offer catalog.

Three rule sets are available:
  - standard: baseline propensity and maturity rules (default)
  - acr: standard rules plus consumed revenue tiers
  - industry: single primary action plus industry overlays`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log verbosity (debug, info, warn, error)",
				Sources: cli.EnvVars(logging.EnvVarLogLevel),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			recommendCmd(),
			catalogCmd(),
			serveCmd(),
			mcpCmd(),
		},
		ShellComplete: commandLister,
	}
}

// commandLister prints the visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil || cmd.Root() == nil {
		return
	}
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	for _, c := range cmd.Root().Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(w, c.Name)
	}
}

// parseOutputFormat reads and validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// parseSchema reads and validates the --schema flag.
func parseSchema(cmd *cli.Command) (rules.Schema, error) {
	return rules.ParseSchema(cmd.String("schema"))
}
