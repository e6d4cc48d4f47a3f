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

// Package mcp exposes the recommendation engine as Model Context Protocol
// tools served over stdio.
//
// Two tools are registered:
//
//   - recommend_offers takes one optional argument per client profile field
//     plus schema, and returns the result rendered as markdown.
//   - list_offer_catalog returns the offer catalog grouped by solution area.
//
// Arguments go through the same parsing as HTTP query parameters, so
// aliases, defaults and validation behave identically across surfaces.
// Invalid arguments produce a tool error result rather than a protocol
// error.
package mcp
