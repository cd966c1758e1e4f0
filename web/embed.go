// Package web embeds the builder UI: the page templates and the static
// style and script assets they reference.
package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed static templates
var content embed.FS

// StaticFS returns the embedded stylesheet and builder script, rooted so
// they can be served directly under /static/.
func StaticFS() fs.FS {
	return sub("static")
}

// TemplatesFS returns the embedded page templates.
func TemplatesFS() fs.FS {
	return sub("templates")
}

func sub(dir string) fs.FS {
	fsys, err := fs.Sub(content, dir)
	if err != nil {
		// Only reachable if the embed directive and dir disagree.
		log.Fatalf("missing embedded directory %s: %v", dir, err)
	}
	return fsys
}
