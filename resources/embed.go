package resources

import (
	"embed"
	"io/fs"
)

// FS exposes the static resource files.
//
//go:embed static
var FS embed.FS

// Static returns the static directory rooted at its contents, for serving
// under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
