package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID generates an opaque 32-character hex identifier. The value contains
// no separators or URL-reserved characters, so it is safe to use both as a
// filesystem path segment and as a URL path segment.
func NewID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// ArtifactName builds a collision-resistant stored filename for an uploaded
// artifact by prefixing the original filename with a fresh ID.
// Example: 9f8a..._blue_pottery_mug.jpg
func ArtifactName(originalFilename string) string {
	return NewID() + "_" + originalFilename
}
