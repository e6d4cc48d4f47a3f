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

// Package recommendation turns a client profile into a Recommendations
// document.
//
// A Builder evaluates the profile with the rule set of the requested
// schema, then wraps the outcome with a resource header, the normalized
// profile, the IDs of the rules that fired, warnings for unrecognized
// values, and the offer catalog:
//
//	b := recommendation.NewBuilder(recommendation.WithVersion(version))
//	res, err := b.Build(ctx, p, rules.SchemaACR)
//
// The same Builder serves the HTTP API through HandleRecommendations and
// HandleCatalog, and renders results as markdown for MCP clients.
package recommendation
