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

// Package cli implements the propensity command-line interface.
//
// # Commands
//
// recommend - Recommend offers for a client profile:
//
//	propensity recommend --e5 75 --identity weak --data-risk high --multicloud --cloud-maturity low
//
// Builds a profile from flags, or loads one with --profile from a file or
// http(s) URL, evaluates it against the selected rule set and writes the
// Recommendations document. Flags set explicitly override loaded values.
//
// catalog - Print the offer catalog:
//
//	propensity catalog --format json
//
// serve - Run the HTTP API:
//
//	propensity serve --port 8080 --schema acr
//
// mcp - Serve MCP tools over stdio:
//
//	propensity mcp
//
// # Global Flags
//
//	--log-level    Log verbosity: debug, info, warn, error (default: info)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default), JSON, or table, selected with --format. Output goes to
// stdout unless --output names a file.
//
// # Environment Variables
//
//	LOG_LEVEL          Set logging verbosity (debug, info, warn, error)
//	PROPENSITY_SCHEMA  Default rule set (standard, acr, industry)
//	PORT               Listen port for serve
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//	2  Context canceled or timeout
package cli
