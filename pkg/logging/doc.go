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

// Package logging configures the slog JSON logger shared by the propensity
// binaries.
//
// Records go to stderr so stdout stays free for command output and the MCP
// stdio stream. Every record carries "module" and "version" attributes, and
// debug level adds the source location.
//
// The CLI installs the logger in its root Before hook from --log-level, which
// falls back to LOG_LEVEL:
//
//	logging.SetDefaultStructuredLoggerWithLevel("propensity", version, cmd.String("log-level"))
//
// propensityd reads LOG_LEVEL directly:
//
//	logging.SetDefaultStructuredLogger("propensityd", version)
//
// Levels are debug, info, warn (or warning) and error; anything else means
// info. NewLogLogger adapts the default handler for libraries that take a
// *log.Logger, such as the MCP stdio server's error log.
package logging
