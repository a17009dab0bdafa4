package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvatarPath(t *testing.T) {
	tests := []struct {
		name      string
		accountID uint
		nickName  string
		filename  string
		expected  string
	}{
		{
			name:      "simple png",
			accountID: 7,
			nickName:  "bob",
			filename:  "x.png",
			expected:  "avatars/7bob.png",
		},
		{
			name:      "multiple dots keep last extension",
			accountID: 12,
			nickName:  "alice",
			filename:  "archive.tar.gz",
			expected:  "avatars/12alice.gz",
		},
		{
			name:      "no dot uses whole filename as extension",
			accountID: 5,
			nickName:  "carol",
			filename:  "photo",
			expected:  "avatars/5carol.photo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AvatarPath(tt.accountID, tt.nickName, tt.filename))
		})
	}
}

func TestPostImagePath(t *testing.T) {
	tests := []struct {
		name     string
		postID   uint
		title    string
		filename string
		expected string
	}{
		{
			name:     "simple jpeg",
			postID:   3,
			title:    "hi",
			filename: "photo.jpeg",
			expected: "posts/3hi.jpeg",
		},
		{
			name:     "title with spaces is used verbatim",
			postID:   9,
			title:    "my trip",
			filename: "a.png",
			expected: "posts/9my trip.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PostImagePath(tt.postID, tt.title, tt.filename))
		})
	}
}

// Identical owner and label resolve to the same path: the caller overwrites
// the earlier upload.
func TestPathCollision(t *testing.T) {
	first := AvatarPath(7, "bob", "old.png")
	second := AvatarPath(7, "bob", "new.png")
	assert.Equal(t, first, second)
}
