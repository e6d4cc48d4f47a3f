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

// Package profile defines the client security posture record evaluated by
// the rule engine.
//
// A Profile is total: every field has a default and New returns the
// all-default record. Enumerated fields are normalized (trimmed, case
// folded, "_" and "-" treated as spaces) but never rejected. Values outside
// the known set are kept and reported by Unrecognized so callers can warn;
// the evaluator treats them as "no match".
//
// Profiles can be built from:
//
//   - functional options (Build, WithE5Propensity, WithIdentityMaturity, ...)
//   - URL query values (ParseFromValues, ParseFromRequest)
//   - JSON or YAML request bodies (ParseFromBody)
//   - local files or http(s) URLs (LoadFromFile)
//
// Documents may be bare profiles or ClientProfile resources:
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
package profile
