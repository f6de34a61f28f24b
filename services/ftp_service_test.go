package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFolderForExtension(t *testing.T) {
	cases := []struct {
		ext    string
		folder string
	}{
		{".mp4", "videos/"},
		{".mkv", "videos/"},
		{".avi", "videos/"},
		{".jpg", "images/"},
		{".jpeg", "images/"},
		{".png", "images/"},
		{".gif", "images/"},
		{".PNG", "images/"},
		{".pdf", "documents/"},
		{".doc", "documents/"},
		{".docx", "documents/"},
		{".zip", "others/"},
		{"", "others/"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.folder, folderForExtension(tc.ext), "extension %q", tc.ext)
	}
}

func TestUniqueFilename(t *testing.T) {
	name := uniqueFilename("photo.png")
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.Greater(t, len(name), len(".png"))

	other := uniqueFilename("photo.png")
	assert.NotEqual(t, name, other)
}

func TestUniqueFilenameNoExtension(t *testing.T) {
	name := uniqueFilename("README")
	assert.NotContains(t, name, ".")
	assert.NotEmpty(t, name)
}
