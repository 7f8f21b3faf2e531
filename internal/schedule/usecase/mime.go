package usecase

import (
	"path/filepath"
	"strings"
)

const defaultImageMIME = "image/jpeg"

var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
}

func extension(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// isImage reports whether filename carries one of the accepted image extensions.
func isImage(filename string) bool {
	_, ok := imageMIMETypes[extension(filename)]
	return ok
}

// imageMIME maps the extension to a MIME type; unknown extensions are treated as JPEG.
func imageMIME(filename string) string {
	if m, ok := imageMIMETypes[extension(filename)]; ok {
		return m
	}
	return defaultImageMIME
}
