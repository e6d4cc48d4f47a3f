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

package rules

import (
	"context"
	"testing"

	"github.com/mchmarny/propensity/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every offer and area a rule can emit must exist in the catalog.
func TestTemplatesResolveAgainstCatalog(t *testing.T) {
	c, err := catalog.Load(context.Background())
	require.NoError(t, err)

	for _, set := range []*Set[Recommendation]{Standard(), ACR()} {
		for _, r := range set.Templates() {
			assert.True(t, c.HasArea(r.SolutionArea), "%s/%s: unknown area %q", set.Schema, r.RuleID, r.SolutionArea)
			for _, offer := range r.Offers() {
				area, ok := c.AreaOf(offer)
				if assert.True(t, ok, "%s/%s: offer %q not in catalog", set.Schema, r.RuleID, offer) {
					assert.Equal(t, r.SolutionArea, area, "%s/%s: offer %q listed under another area", set.Schema, r.RuleID, offer)
				}
			}
			assert.NotEmpty(t, r.Rationale, r.RuleID)
			assert.NotEmpty(t, r.Timeline, r.RuleID)
		}
	}

	for _, a := range Industry().Templates() {
		assert.True(t, c.Contains(a.Offer), "%s: offer %q not in catalog", a.RuleID, a.Offer)
		assert.NotEmpty(t, a.Rationale, a.RuleID)
		assert.NotEmpty(t, a.Timeline, a.RuleID)
	}
}
