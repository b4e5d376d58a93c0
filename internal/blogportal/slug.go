package blogportal

import (
	"strings"
)

// Slugify converts free text into a lowercase URL-safe slug: ASCII letters
// and digits are kept, every other run of characters collapses to a single
// hyphen, leading and trailing hyphens are trimmed.
//
// Slugify does not guarantee uniqueness; the unique constraint on the slug
// column does, and a collision surfaces as ErrDuplicateSlug.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}

		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}
