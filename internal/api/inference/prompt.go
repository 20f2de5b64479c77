package inference

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-tourism-filter/internal/types"
)

// BuildPrompt renders the destination tagging prompt. Only values from the
// vocabulary are offered so the answer can be validated value by value.
func BuildPrompt(city, country string, vocabulary types.Vocabulary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, `You are a travel data expert. Generate tourism tags for a city that will be used for filtering travel categories.

## CITY TO ANALYZE
City: %s
Country: %s

## STRICT TAG VOCABULARY (version %s)

You MUST use ONLY these exact tag values. Do not invent new values.
`, city, country, vocabulary.Version)

	for _, dim := range vocabulary.Dimensions {
		selection := "select ALL that apply"
		if dim.Single {
			selection = "select ONE"
		}
		fmt.Fprintf(&sb, "\n### %s (%s):\n%s\n", dim.Name, selection, strings.Join(dim.Values, ", "))
	}

	fmt.Fprintf(&sb, `
## INSTRUCTIONS

1. Use your knowledge about %s, %s.
2. Select tags from EACH dimension above. Only select tags that truly apply.
3. Consider physical geography, climate, what the city is famous for, seasonal events, infrastructure and special attractions.

## OUTPUT FORMAT

Return ONLY valid JSON, no other text:

{
  "city": "%s",
  "country": "%s",
  "region": "<geo_region value>",
  "tags": {
`, city, country, city, country)

	for i, dim := range vocabulary.Dimensions {
		sep := ","
		if i == len(vocabulary.Dimensions)-1 {
			sep = ""
		}
		fmt.Fprintf(&sb, "    %q: [\"<value>\"]%s\n", dim.Name, sep)
	}

	sb.WriteString(`  },
  "confidence": "<high|medium|low>",
  "notes": "<brief note if low confidence>"
}`)
	return sb.String()
}
