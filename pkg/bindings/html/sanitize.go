package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// SanitizeMarkup strips everything but inline SVG icon markup from raw
// input. Non-markup input (a glyph name, plain text) comes back empty so
// callers can fall back to name-based rendering.
func SanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !strings.HasPrefix(trimmed, "<") {
		return ""
	}
	cleaned := strings.TrimSpace(markupSanitizer().Sanitize(trimmed))
	if !strings.HasPrefix(cleaned, "<") {
		return ""
	}
	return cleaned
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline",
			"polygon", "ellipse", "title", "desc", "defs", "use",
		)
		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin",
			"aria-hidden", "role", "focusable", "class",
		).OnElements("svg")
		policy.AllowAttrs("href", "xlink:href").OnElements("use")
		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
			).OnElements(el)
		}
		markupPolicy = policy
	})
	return markupPolicy
}
