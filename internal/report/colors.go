package report

import "strings"

// categoryColors maps category keywords (and the emoji commonly used in
// collection labels) to display colors. First match wins.
var categoryColors = []struct {
	color    string
	keywords []string
}{
	{color: "#22c55e", keywords: []string{"groceries", "🛒"}},
	{color: "#f97316", keywords: []string{"shopping", "🛍️"}},
	{color: "#f59e0b", keywords: []string{"dining", "restaurant", "☕", "🍽️"}},
	{color: "#0ea5e9", keywords: []string{"transport", "🚗", "⛽"}},
	{color: "#f43f5e", keywords: []string{"entertainment", "🎬"}},
	{color: "#facc15", keywords: []string{"utilities", "💡"}},
	{color: "#14b8a6", keywords: []string{"health", "💊", "🏋️"}},
	{color: "#06b6d4", keywords: []string{"travel", "✈️"}},
	{color: "#84cc16", keywords: []string{"home", "🏠"}},
}

// neutralColor is used for categories with no keyword match.
const neutralColor = "#9ca3af"

// CategoryColor returns the display color for a category label.
func CategoryColor(category string) string {
	normalized := strings.ToLower(category)

	for _, entry := range categoryColors {
		for _, keyword := range entry.keywords {
			if strings.Contains(normalized, keyword) {
				return entry.color
			}
		}
	}

	return neutralColor
}
