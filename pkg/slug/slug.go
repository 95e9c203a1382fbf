// Package slug derives URL-safe identifiers from titles. Derivation happens
// in the admin client whenever a title changes; the server only checks that a
// slug is present and stores it as submitted.
package slug

import (
	"regexp"
	"strings"
)

var (
	reStrip    = regexp.MustCompile(`[^\w\s-]`)
	reCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Make converts a title to its slug: lower-case, strip characters that are
// not word/space/hyphen, collapse whitespace/underscore/hyphen runs to a
// single hyphen, trim leading and trailing hyphens.
//
//	Make("Industrial Automation!") == "industrial-automation"
//	Make("  Multi   Word--Title ") == "multi-word-title"
func Make(title string) string {
	s := strings.ToLower(title)
	s = reStrip.ReplaceAllString(s, "")
	s = reCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
