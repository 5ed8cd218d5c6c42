// Package forms holds the form-state logic shared by the admin screens:
// slug derivation, date/time combination, ordered list editing, and the
// array-indexed field contract used by the admin forms.
package forms

import "strings"

// Slugify derives a URL-safe slug from a human-entered title: lowercase,
// trim, drop characters outside [a-z0-9 _-], collapse runs of whitespace or
// underscores into single hyphens, and strip edge hyphens. Non-ASCII letters
// are dropped. Always returns a string; empty if the title has no
// alphanumeric content. Idempotent.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '_':
			b.WriteByte(' ')
		}
	}

	fields := strings.FieldsFunc(b.String(), func(r rune) bool { return r == ' ' })
	s = strings.Join(fields, "-")
	return strings.Trim(s, "-")
}
