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

package serializer

import (
	"log/slog"
	"mime"
	"path"
	"strings"
)

// Format represents the serialization format.
type Format string

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format
	FormatTable Format = "table"
)

const (
	mimeJSON = "application/json"
	mimeYAML = "application/x-yaml"
)

// IsUnknown reports whether f is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	default:
		return true
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ContentType returns the MIME type used when f is written over HTTP.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return mimeYAML
	}
	return mimeJSON
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
	}
}

// FormatFromPath determines the format from a file path or URL extension.
// Unknown extensions default to JSON.
func FormatFromPath(p string) Format {
	// strip query strings from URLs
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".table", ".txt":
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "path", p)
		return FormatJSON
	}
}

// FormatFromContentType maps a request Content-Type to a readable format.
// Empty or unrecognized types default to JSON.
func FormatFromContentType(contentType string) Format {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatJSON
	}
	switch mt {
	case "application/x-yaml", "application/yaml", "text/yaml", "text/x-yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FormatFromAccept picks the response format from an Accept header.
// The first YAML or JSON media range wins; anything else yields JSON.
func FormatFromAccept(accept string) Format {
	for _, part := range strings.Split(accept, ",") {
		switch f := FormatFromContentType(strings.TrimSpace(part)); {
		case f == FormatYAML:
			return FormatYAML
		case strings.Contains(part, "json"):
			return FormatJSON
		}
	}
	return FormatJSON
}
