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

package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{AreaIAM, AreaData, AreaSecOps, AreaCloud, AreaCrossSolution}, c.AreaNames())
	assert.Equal(t, []string{OfferIdentityDiagnostics, OfferIdentityModernization}, c.Offers(AreaIAM))
	assert.Equal(t, []string{OfferDataDiagnostics, OfferDataModernization}, c.Offers(AreaData))
	assert.Equal(t, []string{OfferREDSentinel, OfferREDDefender, OfferCopilotAccelerator, OfferUnifiedThreatProtection}, c.Offers(AreaSecOps))
	assert.Equal(t, []string{OfferCSPM, OfferCWPP}, c.Offers(AreaCloud))
	assert.Equal(t, []string{OfferPostureAssessment, OfferZeroTrustRoadmap, OfferSecurityFactory}, c.Offers(AreaCrossSolution))
	assert.Nil(t, c.Offers("Networking"))
}

func TestLoad_Shared(t *testing.T) {
	a, err := Load(context.Background())
	require.NoError(t, err)
	b := MustLoad()
	assert.Same(t, a, b)
}

func TestAreas_ReturnsCopy(t *testing.T) {
	c := MustLoad()
	areas := c.Areas()
	areas[0].Offers[0] = "changed"
	areas[0].Name = "changed"
	assert.Equal(t, OfferIdentityDiagnostics, c.Offers(AreaIAM)[0])
	assert.True(t, c.HasArea(AreaIAM))
}

func TestContainsAndAreaOf(t *testing.T) {
	c := MustLoad()

	assert.True(t, c.Contains(OfferUnifiedThreatProtection))
	assert.False(t, c.Contains("Unified Threat Protection"))

	area, ok := c.AreaOf(OfferZeroTrustRoadmap)
	assert.True(t, ok)
	assert.Equal(t, AreaCrossSolution, area)

	_, ok = c.AreaOf("Endpoint Hardening")
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "spec: ["},
		{"wrong kind", "kind: Recommendations\nspec:\n  areas:\n    - name: IAM\n"},
		{"no areas", "kind: OfferCatalog\nspec:\n  areas: []\n"},
		{"unnamed area", "spec:\n  areas:\n    - offers: [a]\n"},
		{"duplicate area", "spec:\n  areas:\n    - name: IAM\n    - name: IAM\n"},
		{"duplicate offer", "spec:\n  areas:\n    - name: A\n      offers: [x]\n    - name: B\n      offers: [x]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
