package constants

import (
	"sort"
	"strings"
)

// AllowedExtensions holds the accepted image extensions for card uploads.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"heic": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a normalized extension is accepted.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[ext]
	return ok
}

// AllowedExtList returns the accepted extensions in stable order for
// error messages and validators.
func AllowedExtList() []string {
	out := make([]string, 0, len(AllowedExtensions))
	for ext := range AllowedExtensions {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
