package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fjod/go_storefront/internal/domain"
)

// slugSpace is the whitespace set of browser regexps, which is wider than RE2's \s.
const slugSpace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	slugStrip  = regexp.MustCompile(`[^a-z0-9` + slugSpace + `-]`)
	slugSpaces = regexp.MustCompile(`[` + slugSpace + `]+`)
	slugDashes = regexp.MustCompile(`-+`)
)

// Slug derives the URL segment for a store name: "Brew & Bean" -> "brew-bean".
// Leading and trailing dashes are kept, so " & Friends" gives "-friends".
func Slug(name string) string {
	s := strings.ToLower(name)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}

// URL is the public path of a store page.
func URL(store domain.Store) string {
	return fmt.Sprintf("/stores/%s/%s", store.ID, Slug(store.Name))
}
