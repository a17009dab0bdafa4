// Package storage resolves upload paths and persists media files.
package storage

import (
	"fmt"
	"strings"
)

// Storage categories for uploaded images.
const (
	CategoryAvatars = "avatars"
	CategoryPosts   = "posts"
)

// extension returns the substring after the last dot of filename. A filename
// without a dot yields the whole filename.
func extension(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[i+1:]
	}
	return filename
}

// resolve composes "{category}/{ownerID}{label}.{ext}". Identical owner ID
// and label produce the same path: a second upload silently overwrites the
// first.
func resolve(category string, ownerID uint, label, filename string) string {
	return fmt.Sprintf("%s/%d%s.%s", category, ownerID, label, extension(filename))
}

// AvatarPath returns the storage path for a profile avatar, derived from the
// owning account's ID and the profile nickname.
func AvatarPath(accountID uint, nickName, filename string) string {
	return resolve(CategoryAvatars, accountID, nickName, filename)
}

// PostImagePath returns the storage path for a post image, derived from the
// post's ID and title.
func PostImagePath(postID uint, title, filename string) string {
	return resolve(CategoryPosts, postID, title, filename)
}
