package cloudinary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345/userprofile/abc123.jpg", "userprofile/abc123"},
		{"https://res.cloudinary.com/demo/image/upload/v1/posts/item.photo.png", "posts/item.photo"},
		{"https://res.cloudinary.com/demo/image/upload/groups/noext", "groups/noext"},
	}

	for _, tt := range tests {
		got, err := PublicIDFromURL(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, got)
	}
}

func TestPublicIDFromURL_Invalid(t *testing.T) {
	_, err := PublicIDFromURL("https://example.com/")
	assert.Error(t, err)

	_, err = PublicIDFromURL("://bad")
	assert.Error(t, err)
}
