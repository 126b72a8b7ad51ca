package storage

import (
	"path"
	"sort"
	"strings"
	"time"
)

// archivePath builds the day-folder path for an artifact, e.g.
// "2026/08/29/frame.png"
func archivePath(ts time.Time, name string) string {
	return path.Join(ts.UTC().Format("2006/01/02"), name)
}

// contentType maps an artifact name to its MIME type
func contentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".png":
		return "image/png"
	case ".html":
		return "text/html; charset=utf-8"
	case ".md":
		return "text/markdown; charset=utf-8"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// newestFirst sorts archive paths so the most recent day folders come
// first; within a day the order is alphabetical
func newestFirst(paths []string) {
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
}
