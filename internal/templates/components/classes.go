// Package components holds the reusable dashboard building blocks.
// Each component is a pure function from props to a templ.Component.
package components

import "strings"

// CN merges class lists, dropping empty entries and exact duplicates.
func CN(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		for _, part := range strings.Fields(input) {
			if !seen[part] {
				classes = append(classes, part)
				seen[part] = true
			}
		}
	}
	return strings.Join(classes, " ")
}

// tone maps a color token to its accent classes.
func tone(color string) string {
	switch color {
	case "blue", "green", "purple", "pink", "orange", "gray":
		return "tone-" + color
	}
	return "tone-gray"
}
