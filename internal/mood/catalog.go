package mood

import (
	"fmt"
	"strings"
)

// CatalogSize is the number of options offered by the picker.
const CatalogSize = 5

// Catalog is the fixed, ordered mood palette.
type Catalog []Option

// DefaultCatalog is the palette shown to the user. It is configuration, not
// user data, and is never persisted.
var DefaultCatalog = Catalog{
	{Emoji: "🧑‍💻", Description: "studious"},
	{Emoji: "🤔", Description: "pensive"},
	{Emoji: "😊", Description: "happy"},
	{Emoji: "🥳", Description: "celebratory"},
	{Emoji: "😤", Description: "frustrated"},
}

// Lookup finds an option by exact emoji or case-insensitive description.
func (c Catalog) Lookup(s string) (Option, bool) {
	s = strings.TrimSpace(s)
	for _, o := range c {
		if o.Emoji == s || strings.EqualFold(o.Description, s) {
			return o, true
		}
	}
	return Option{}, false
}

// Index returns the position of the option with the given emoji, or -1.
func (c Catalog) Index(emoji string) int {
	for i, o := range c {
		if o.Emoji == emoji {
			return i
		}
	}
	return -1
}

// ValidateCatalog checks that c holds exactly CatalogSize options with unique,
// non-empty emoji.
func ValidateCatalog(c Catalog) error {
	if len(c) != CatalogSize {
		return fmt.Errorf("catalog must hold %d moods, got %d", CatalogSize, len(c))
	}
	seen := make(map[string]bool, len(c))
	for i, o := range c {
		if strings.TrimSpace(o.Emoji) == "" {
			return fmt.Errorf("catalog entry %d has no emoji", i)
		}
		if seen[o.Emoji] {
			return fmt.Errorf("duplicate catalog emoji %q", o.Emoji)
		}
		seen[o.Emoji] = true
	}
	return nil
}
