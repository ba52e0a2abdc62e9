package layout

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/yungbote/agrinet/internal/web/static"
)

// Metadata is document-level configuration applied by Document.
type Metadata struct {
	Title       string
	Description string
}

const stylesheet = static.Prefix + "/site.css"

// Document wraps body in a complete HTML5 document whose <title> comes from meta.
func Document(meta Metadata, body g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       meta.Title,
		Description: meta.Description,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("stylesheet"), Href(stylesheet)),
		},
		Body: []g.Node{
			Div(ID("top")),
			Main(body),
		},
	})
}
