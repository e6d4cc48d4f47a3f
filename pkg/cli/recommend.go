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

	"github.com/mchmarny/propensity/pkg/profile"
	"github.com/mchmarny/propensity/pkg/recommendation"
	"github.com/mchmarny/propensity/pkg/serializer"
)

func recommendCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recommend",
		EnableShellCompletion: true,
		Usage:                 "Recommend security offers for a client profile",
		Description: `Evaluate a client profile and print the recommended offers.

The profile is built from flags, or loaded with --profile from a file or
URL (bare profile or ClientProfile resource). Flags that are set explicitly
override the loaded values. Missing fields take their defaults.

The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"f"},
				Usage:   "Path or http(s) URL of a client profile (JSON or YAML)",
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Client name",
			},
			&cli.IntFlag{
				Name:  "e5",
				Usage: fmt.Sprintf("E5 license propensity score (%d-%d)", profile.MinPropensity, profile.MaxPropensity),
			},
			&cli.StringFlag{
				Name: "identity",
				Usage: fmt.Sprintf("Identity maturity (supported values: %v)",
					profile.GetIdentityMaturityTypes()),
			},
			&cli.BoolFlag{
				Name:  "defender",
				Usage: "Microsoft Defender is deployed and active",
			},
			&cli.BoolFlag{
				Name:  "sentinel",
				Usage: "Microsoft Sentinel is deployed and active",
			},
			&cli.StringFlag{
				Name:  "industry",
				Usage: "Client industry (e.g., healthcare, financial services)",
			},
			&cli.BoolFlag{
				Name:  "incident",
				Usage: "The client had a recent security incident",
			},
			&cli.BoolFlag{
				Name:  "multicloud",
				Usage: "The client runs workloads on more than one cloud",
			},
			&cli.StringFlag{
				Name: "data-risk",
				Usage: fmt.Sprintf("Data exposure risk (supported values: %v)",
					profile.GetDataRiskTypes()),
			},
			&cli.StringFlag{
				Name: "cloud-maturity",
				Usage: fmt.Sprintf("Cloud security maturity (supported values: %v)",
					profile.GetCloudMaturityTypes()),
			},
			&cli.StringFlag{
				Name: "security-acr",
				Usage: fmt.Sprintf("Security consumed revenue tier (supported values: %v)",
					profile.GetACRTierTypes()),
			},
			&cli.StringFlag{
				Name: "sentinel-acr",
				Usage: fmt.Sprintf("Sentinel consumed revenue tier (supported values: %v)",
					profile.GetACRTierTypes()),
			},
			schemaFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			schema, err := parseSchema(cmd)
			if err != nil {
				return err
			}

			p, err := buildProfileFromCmd(ctx, cmd)
			if err != nil {
				return fmt.Errorf("error parsing client profile: %w", err)
			}

			b := recommendation.NewBuilder(
				recommendation.WithVersion(version),
				recommendation.WithSchema(schema),
			)

			res, err := b.Build(ctx, p, schema)
			if err != nil {
				return fmt.Errorf("error building recommendations: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, res)
		},
	}
}

// buildProfileFromCmd constructs a profile from the --profile document, if
// any, and then applies the flags that were set explicitly.
func buildProfileFromCmd(ctx context.Context, cmd *cli.Command) (*profile.Profile, error) {
	p := profile.New()
	if path := cmd.String("profile"); path != "" {
		loaded, err := profile.LoadFromFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile from %q: %w", path, err)
		}
		p = loaded
	}

	strs := []struct {
		flag string
		opt  func(string) profile.Option
	}{
		{"name", profile.WithName},
		{"identity", profile.WithIdentityMaturity},
		{"industry", profile.WithIndustry},
		{"data-risk", profile.WithDataRisk},
		{"cloud-maturity", profile.WithCloudMaturity},
		{"security-acr", profile.WithSecurityACR},
		{"sentinel-acr", profile.WithSentinelACR},
	}
	for _, s := range strs {
		if cmd.IsSet(s.flag) {
			s.opt(cmd.String(s.flag))(p)
		}
	}

	bools := []struct {
		flag string
		opt  func(bool) profile.Option
	}{
		{"defender", profile.WithDefenderActive},
		{"sentinel", profile.WithSentinelActive},
		{"incident", profile.WithRecentIncident},
		{"multicloud", profile.WithMulticloud},
	}
	for _, b := range bools {
		if cmd.IsSet(b.flag) {
			b.opt(cmd.Bool(b.flag))(p)
		}
	}

	if cmd.IsSet("e5") {
		profile.WithE5Propensity(int(cmd.Int("e5")))(p)
	}

	return p, nil
}
