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

// Package serializer encodes and decodes propensity documents.
//
// Client profiles are read from JSON or YAML files, from http(s) URLs, or
// from request bodies. Recommendation results and the offer catalog are
// written as JSON, YAML, or a flattened table for terminal viewing.
//
// # Formats
//
//   - json: machine readable, used by the HTTP API by default
//   - yaml: human readable, suitable for version-controlled profiles
//   - table: FIELD/VALUE listing of the flattened document (write only)
//
// # Reading
//
//	p, err := serializer.FromFile[profile.Document]("client.yaml")
//
// The format is derived from the file extension. Remote files are fetched
// with HttpReader which applies the client timeouts from pkg/defaults.
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//	    return err
//	}
//
// # HTTP
//
// Respond picks JSON or YAML from the request Accept header and buffers the
// encoded body before writing headers so encoding errors never produce a
// partial response.
package serializer
