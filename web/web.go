// Package web holds the browser front-end served under /static.
package web

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed static
var embedded embed.FS

// Assets returns the front-end file system. A non-empty dir is served from
// disk instead of the embedded copy.
func Assets(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(embedded, "static")
}
