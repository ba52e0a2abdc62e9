// Package static holds the site's embedded assets.
package static

import (
	"embed"
	"net/http"
)

// Prefix is the URL prefix the assets are served under.
const Prefix = "/static"

//go:embed site.css
var files embed.FS

func FS() http.FileSystem { return http.FS(files) }
