// Package slugs turns reference titles into file names.
package slugs

import (
	"path/filepath"
	"strings"

	goslug "github.com/gosimple/slug"
)

// Ext is the extension of reference files.
const Ext = ".yml"

// NameSlug converts a title to a reference name usable as a file stem.
// Falls back to a lower-cased, dash-joined form when gosimple/slug strips
// everything.
func NameSlug(title string) string {
	title = strings.TrimSuffix(strings.TrimSpace(title), Ext)
	slugged := goslug.Make(title)
	if slugged == "" {
		slugged = strings.ToLower(strings.Join(strings.Fields(title), "-"))
	}
	return slugged
}

// ReferencePath slugifies each "/"-separated component of title and returns
// the relative file path of the reference, with extension. Empty components
// are dropped, so the result never escapes the reference directory.
func ReferencePath(title string) string {
	var parts []string
	for _, part := range strings.Split(filepath.ToSlash(title), "/") {
		if s := NameSlug(part); s != "" && s != "." && s != ".." {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return filepath.Join(parts...) + Ext
}
