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
	"fmt"
	"strings"

	"github.com/mchmarny/propensity/pkg/catalog"
)

// emptyMessage is rendered when no rule matched.
const emptyMessage = "No recommendations matched this profile."

// Markdown renders the result as a markdown report: recommendations or
// actions first, then any warnings, then the offer catalog.
func (r *Result) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## Recommended offers (%s schema)\n\n", r.Schema)

	switch {
	case r.Empty():
		sb.WriteString(emptyMessage + "\n")
	case len(r.Actions) > 0:
		writeActions(&sb, r)
	default:
		writeRecommendations(&sb, r)
	}

	if len(r.Warnings) > 0 {
		sb.WriteString("\n**Unrecognized values** (these fields matched no rule): ")
		sb.WriteString(strings.Join(r.Warnings, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(CatalogMarkdown(r.Catalog))
	return sb.String()
}

func writeRecommendations(sb *strings.Builder, r *Result) {
	sb.WriteString("| Solution Area | Primary Offer | Follow-up Offer | Rationale | Timeline |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(sb, "| %s | %s | %s | %s | %s |\n",
			cell(rec.SolutionArea), cell(rec.PrimaryOffer), cell(rec.FollowUpOffer),
			cell(rec.Rationale), cell(rec.Timeline))
	}
}

func writeActions(sb *strings.Builder, r *Result) {
	for i, a := range r.Actions {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(sb, "### %d. %s\n\n", i+1, a.Offer)
		fmt.Fprintf(sb, "%s\n\n", a.Rationale)
		fmt.Fprintf(sb, "**Timeline:** %s\n", a.Timeline)
		if len(a.NextSteps) > 0 {
			sb.WriteString("\n**Next steps:**\n\n")
			for _, step := range a.NextSteps {
				fmt.Fprintf(sb, "- %s\n", step)
			}
		}
	}
}

// CatalogMarkdown renders the offer catalog as nested lists.
func CatalogMarkdown(areas []catalog.Area) string {
	var sb strings.Builder
	sb.WriteString("## Offer catalog\n\n")
	for _, a := range areas {
		fmt.Fprintf(&sb, "- **%s**\n", a.Name)
		for _, o := range a.Offers {
			fmt.Fprintf(&sb, "  - %s\n", o)
		}
	}
	return sb.String()
}

// cell escapes pipes so free text cannot break the table.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
