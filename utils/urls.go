package utils

import (
	"net/url"
	"strings"
)

var imageExtensions = []string{
	".jpg", ".png", ".gif", ".tif", ".bmp", ".dib",
	".jpeg", ".jpe", ".jfif", ".tiff", ".heic",
}

// URLPathEndsWith reports whether the URL path, with any trailing slash
// stripped, ends with suffix. Only the path is considered, never the query.
func URLPathEndsWith(u *url.URL, suffix string) bool {
	return strings.HasSuffix(strings.TrimRight(u.Path, "/"), suffix)
}

// URLPathEndsWithImageExtension reports whether the URL path names a file
// with a known raster image extension.
func URLPathEndsWithImageExtension(u *url.URL) bool {
	path := strings.TrimRight(u.Path, "/")
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// LastPathSegment returns the final non-empty path segment of the URL, or
// an empty string if the path has none.
func LastPathSegment(u *url.URL) string {
	segments := strings.Split(strings.TrimRight(u.Path, "/"), "/")
	return segments[len(segments)-1]
}
