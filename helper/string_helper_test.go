package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "name", Underscore("Name"))
	assert.Equal(t, "section_id", Underscore("SectionID"))
	assert.Equal(t, "image_url", Underscore("ImageURL"))
	assert.Equal(t, "published_at", Underscore("PublishedAt"))
}
