package database

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackSlug is used when a name has no ASCII letters or digits at all.
const fallbackSlug = "proyecto"

// Slugify lower-cases name, strips diacritics and joins the remaining
// [a-z0-9] runs with single hyphens: "Casa Ñandú  2024" -> "casa-nandu-2024".
func Slugify(name string) string {
	lowered := strings.ToLower(name)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, lowered)
	if err != nil {
		stripped = lowered
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}

// uniqueSlug returns the slug of name, suffixed -1, -2, ... until taken
// reports it free.
func uniqueSlug(name string, taken func(string) bool) string {
	base := Slugify(name)
	if base == "" {
		base = fallbackSlug
	}
	slug := base
	for n := 1; taken(slug); n++ {
		slug = base + "-" + strconv.Itoa(n)
	}
	return slug
}
