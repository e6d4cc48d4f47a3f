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

package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "propensity_recommendation_build_duration_seconds",
			Help:    "Duration of profile evaluation in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"schema"},
	)

	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propensity_evaluations_total",
			Help: "Total number of profile evaluations by schema and outcome",
		},
		[]string{"schema", "outcome"},
	)

	ruleMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "propensity_rule_matches_total",
			Help: "Total number of times each rule emitted a record",
		},
		[]string{"schema", "rule"},
	)
)
