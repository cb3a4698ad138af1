package file

const (
	DefaultImageFormat = "png"
	DefaultVideoFormat = "mp4"

	// PlaceholderExt names workspace inputs whose original filename
	// carries no extension.
	PlaceholderExt = "dat"
)

// quality-tunable lossy image formats get an explicit -q:v argument
var qualityTunable = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"webp": true,
}

func IsQualityTunable(format string) bool {
	return qualityTunable[Normalize(format)]
}
