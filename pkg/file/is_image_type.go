package file

import "strings"

// IsImageType classifies by the declared content type, not the filename.
// Anything that is not image-typed is treated as video input.
func IsImageType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}
