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

// Package api wires the recommendation handlers into the HTTP server and
// provides the entry point of the propensityd binary.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /v1/recommendations - evaluate a profile given as query parameters
//   - POST /v1/recommendations - evaluate a profile given as a JSON or YAML body
//   - GET  /v1/catalog         - offer catalog
//
// System endpoints (no rate limiting):
//   - GET /health  - liveness
//   - GET /ready   - readiness
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters (GET /v1/recommendations)
//
//   - e5_propensity (e5): integer 0-100
//   - identity_maturity (identity): weak, none, poor, average, good, strong, unknown
//   - defender_active (defender), sentinel_active (sentinel): boolean
//   - industry: free text, case-insensitive
//   - recent_incident (incident), multicloud: boolean
//   - data_risk (data-risk): low, medium, high, very high
//   - cloud_maturity (cloud-maturity): low, medium, high
//   - security_acr (security-acr), sentinel_acr (sentinel-acr): small, medium, large, very large
//   - schema: standard, acr, industry
//
// Every parameter is optional. Only malformed numbers and booleans are
// rejected; unknown enum values are reported as warnings in the result.
//
// # Request Body (POST /v1/recommendations)
//
// A bare profile or a ClientProfile resource, as JSON or YAML:
//
//	kind: ClientProfile
//	apiVersion: propensity.dev/v1alpha1
//	metadata:
//	  name: contoso
//	spec:
//	  e5_propensity: 75
//	  identity_maturity: weak
//	  data_risk: high
//	  multicloud: true
//	  cloud_maturity: low
//
//	curl -X POST "http://localhost:8080/v1/recommendations?schema=acr" \
//	  -H "Content-Type: application/x-yaml" \
//	  --data-binary @profile.yaml
//
// # Configuration
//
//   - PORT, SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT, RATE_LIMIT_BURST: see pkg/server
//   - PROPENSITY_SCHEMA: default rule set (standard)
//   - LOG_LEVEL: debug, info, warn, error
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/propensity/pkg/api.version=1.0.0'"
package api
