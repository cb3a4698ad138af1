package file

import "strings"

const DefaultImageMime = "image/png"

// Fixed lookup table from requested output format to MIME type. The stdlib
// mime package consults the host's mime.types and is platform dependent, so
// the supported set is held closed here.
var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
	"tif":  "image/tiff",
	"avif": "image/avif",
	"ico":  "image/x-icon",
	"svg":  "image/svg+xml",
	"mp4":  "video/mp4",
	"avi":  "video/x-msvideo",
	"mov":  "video/quicktime",
	"mkv":  "video/x-matroska",
	"webm": "video/webm",
	"flv":  "video/x-flv",
	"wmv":  "video/x-ms-wmv",
}

// GetMimeType resolves a requested output format to its MIME type.
// Lookup is case-insensitive; unrecognized formats fall back to the
// default image MIME type.
func GetMimeType(format string) string {
	if mt, ok := mimeTypes[Normalize(format)]; ok {
		return mt
	}
	return DefaultImageMime
}

// Normalize lower-cases a requested format and strips a stray leading dot
// so lookups and derived names agree on one spelling.
func Normalize(format string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
}
