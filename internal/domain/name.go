package domain

import "strings"

// SquishName trims leading/trailing whitespace and collapses internal
// runs of whitespace into a single space. This is the form stored for
// newly created entities; casing is preserved.
func SquishName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// NormalizeName is the comparison key for entity resolution: squished
// and lower-cased. Never stored as an entity's display name.
func NormalizeName(name string) string {
	return strings.ToLower(SquishName(name))
}
