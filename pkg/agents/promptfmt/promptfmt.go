// Package promptfmt renders prompt templates with user profile values.
package promptfmt

import "strings"

// Render substitutes {key} placeholders with profile values. Placeholders
// without a profile entry are replaced with an empty string so leftover
// braces never leak into a prompt.
func Render(template string, profile map[string]string) string {
	out := template
	for key, value := range profile {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}

	for {
		start := strings.Index(out, "{")
		if start == -1 {
			break
		}
		end := strings.Index(out[start:], "}")
		if end == -1 {
			break
		}
		out = out[:start] + out[start+end+1:]
	}
	return out
}
