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

package mcp

import (
	"fmt"
	"net/url"
	"strconv"
)

// argValues converts tool arguments into query values so they go through
// the same parsing as HTTP requests. JSON numbers arrive as float64 and
// are formatted without exponent so integers stay integers.
func argValues(args map[string]any) (url.Values, error) {
	values := url.Values{}
	for k, raw := range args {
		switch v := raw.(type) {
		case nil:
			continue
		case string:
			values.Set(k, v)
		case bool:
			values.Set(k, strconv.FormatBool(v))
		case float64:
			values.Set(k, strconv.FormatFloat(v, 'f', -1, 64))
		case int:
			values.Set(k, strconv.Itoa(v))
		default:
			return nil, fmt.Errorf("argument %q has unsupported type %T", k, raw)
		}
	}
	return values, nil
}
