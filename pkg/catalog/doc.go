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

// Package catalog provides the static offer catalog.
//
// The catalog maps each solution area to an ordered list of offer names. It
// is embedded from data/catalog.yaml, parsed once on first use and read-only
// afterwards, so it is safe for concurrent callers.
//
//	c, err := catalog.Load(ctx)
//	for _, a := range c.Areas() {
//	    fmt.Println(a.Name, a.Offers)
//	}
//
// The constants in this package name every area and offer. Rule templates
// reference them so emitted offers always resolve against the catalog.
package catalog
