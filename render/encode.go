package render

import (
	"image"
	"image/gif"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats lists the image formats frames can be written in
var Formats = []string{"png", "bmp", "tiff", "gif"}

// IsFormat reports whether name is one of Formats
func IsFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// FormatFromPath picks the format matching the extension of path
func FormatFromPath(path string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "tif" {
		ext = "tiff"
	}
	return ext, IsFormat(ext)
}

// Encode writes img to w in the named format. GIF output keeps the colors
// of a paletted image; pass RasterizePaletted output for exact colors.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "gif":
		err = gif.Encode(w, img, nil)
	default:
		return errors.Errorf("[Encode] unknown image format %q", format)
	}
	return errors.Wrapf(err, "[Encode] failed to encode %s", format)
}

// Extension returns the file extension used for format
func Extension(format string) string {
	if format == "tiff" {
		return "tif"
	}
	return format
}
