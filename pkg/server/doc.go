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

// Package server provides the HTTP server used by the propensity API.
//
// The server routes requests with chi and wraps every registered handler
// in a fixed middleware chain:
//
//	metrics -> version -> request ID -> panic recovery -> rate limit -> logging
//
// System endpoints are always present and bypass rate limiting:
//
//	GET /health   liveness, always 200 while the process serves
//	GET /ready    readiness, 503 until Start is called and after shutdown
//	GET /metrics  Prometheus exposition
//
// A root handler listing the routes is registered on "/" unless the caller
// provides one.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("propensityd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/recommendations": builder.HandleRecommendations,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig reads the following environment variables:
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown budget (default 30)
//	RATE_LIMIT                sustained requests per second (default 100)
//	RATE_LIMIT_BURST          token bucket burst (default 200)
//
// # Errors
//
// Every error is written as an ErrorResponse carrying the request ID.
// WriteErrorFromErr maps the code of a pkg/errors StructuredError to the
// HTTP status and retryability of the response.
package server
