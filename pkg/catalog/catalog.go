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
	_ "embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mchmarny/propensity/pkg/header"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed data/catalog.yaml
	catalogData []byte

	catalogOnce   sync.Once
	cachedCatalog *Catalog
	catalogErr    error
)

// Area is a solution area and its offers in display order.
type Area struct {
	Name   string   `json:"name" yaml:"name"`
	Offers []string `json:"offers" yaml:"offers"`
}

// Catalog is the OfferCatalog document.
type Catalog struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec struct {
		Areas []Area `json:"areas" yaml:"areas"`
	} `json:"spec" yaml:"spec"`

	areaByOffer map[string]string
}

// Load returns the shared catalog, parsing the embedded data on first use.
func Load(_ context.Context) (*Catalog, error) {
	catalogOnce.Do(func() {
		catalogLoads.Inc()
		c, err := parse(catalogData)
		if err != nil {
			catalogErr = fmt.Errorf("failed to load offer catalog: %w", err)
			return
		}
		slog.Debug("offer catalog loaded", "areas", len(c.Spec.Areas))
		cachedCatalog = c
	})
	if cachedCatalog != nil {
		catalogHits.Inc()
	}
	return cachedCatalog, catalogErr
}

// MustLoad is Load for callers that treat a broken embedded catalog as a
// programming error.
func MustLoad() *Catalog {
	c, err := Load(context.Background())
	if err != nil {
		panic(err)
	}
	return c
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}
	if err := c.Header.Validate(header.KindOfferCatalog); err != nil {
		return nil, err
	}
	if len(c.Spec.Areas) == 0 {
		return nil, fmt.Errorf("catalog has no solution areas")
	}

	c.areaByOffer = make(map[string]string)
	seenArea := make(map[string]bool, len(c.Spec.Areas))
	for _, a := range c.Spec.Areas {
		if a.Name == "" {
			return nil, fmt.Errorf("catalog area without a name")
		}
		if seenArea[a.Name] {
			return nil, fmt.Errorf("duplicate catalog area %q", a.Name)
		}
		seenArea[a.Name] = true
		for _, o := range a.Offers {
			if prev, ok := c.areaByOffer[o]; ok {
				return nil, fmt.Errorf("offer %q listed in both %q and %q", o, prev, a.Name)
			}
			c.areaByOffer[o] = a.Name
		}
	}
	return &c, nil
}

// Areas returns a copy of the solution areas in display order.
func (c *Catalog) Areas() []Area {
	out := make([]Area, len(c.Spec.Areas))
	for i, a := range c.Spec.Areas {
		out[i] = Area{Name: a.Name, Offers: append([]string(nil), a.Offers...)}
	}
	return out
}

// AreaNames returns the solution area names in display order.
func (c *Catalog) AreaNames() []string {
	out := make([]string, len(c.Spec.Areas))
	for i, a := range c.Spec.Areas {
		out[i] = a.Name
	}
	return out
}

// Offers returns the offers of area in display order, or nil when the area
// does not exist.
func (c *Catalog) Offers(area string) []string {
	for _, a := range c.Spec.Areas {
		if a.Name == area {
			return append([]string(nil), a.Offers...)
		}
	}
	return nil
}

// Contains reports whether offer is listed in any area.
func (c *Catalog) Contains(offer string) bool {
	_, ok := c.areaByOffer[offer]
	return ok
}

// AreaOf returns the area listing offer.
func (c *Catalog) AreaOf(offer string) (string, bool) {
	a, ok := c.areaByOffer[offer]
	return a, ok
}

// HasArea reports whether area is a catalog solution area.
func (c *Catalog) HasArea(area string) bool {
	for _, a := range c.Spec.Areas {
		if a.Name == area {
			return true
		}
	}
	return false
}
