package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darshan/catalog/internal/catalog"
)

func TestFilterByStyle(t *testing.T) {
	items := []catalog.Item{
		{ID: "1", Style: "traditional"},
		{ID: "2", Style: "modern"},
		{ID: "3", Style: "Traditional"},
		{ID: "4", Style: ""},
	}

	filtered := FilterByStyle(items, "traditional")
	assert.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "3", filtered[1].ID)

	// empty filter shows everything
	assert.Equal(t, items, FilterByStyle(items, ""))

	// no match is an empty slice, not nil
	assert.Empty(t, FilterByStyle(items, "abstract"))
}
