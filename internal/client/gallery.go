package client

import (
	"strings"

	"github.com/darshan/catalog/internal/catalog"
)

// FilterByStyle returns the items whose style tag matches, case-insensitive.
// An empty filter returns the input unchanged — the gallery shows everything
// until a tag is picked.
func FilterByStyle(items []catalog.Item, style string) []catalog.Item {
	if style == "" {
		return items
	}
	filtered := make([]catalog.Item, 0, len(items))
	for _, it := range items {
		if strings.EqualFold(it.Style, style) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}
