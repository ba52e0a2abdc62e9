// Package pages composes components into whole pages.
package pages

import (
	"bytes"
	"io"

	g "maragu.dev/gomponents"

	"github.com/yungbote/agrinet/internal/web/components"
	"github.com/yungbote/agrinet/internal/web/layout"
)

type Metadata = layout.Metadata

var homeMetadata = Metadata{Title: "AgriNet"}

// HomeMetadata returns the home page's metadata. The value is fixed at start-up.
func HomeMetadata() Metadata { return homeMetadata }

// Fragment is an ordered run of components rendered back to back with no wrapping element.
type Fragment []components.Component

// Names lists the component names in render order.
func (f Fragment) Names() []string {
	out := make([]string, len(f))
	for i, c := range f {
		out[i] = c.Name()
	}
	return out
}

func (f Fragment) Node() g.Node {
	nodes := make([]g.Node, len(f))
	for i, c := range f {
		nodes[i] = c.Render()
	}
	return g.Group(nodes)
}

func (f Fragment) Render(w io.Writer) error {
	return f.Node().Render(w)
}

// Home is the landing page: ScrollUp, Hero, Features, Contact, in that order.
func Home() Fragment {
	return Fragment{
		components.ScrollUp{},
		components.Hero{},
		components.Features{},
		components.Contact{},
	}
}

// Notice is a short page reporting the outcome of a form submission.
func Notice(heading, message string, isError bool) Fragment {
	return Fragment{
		components.ScrollUp{},
		components.Notice{Heading: heading, Message: message, IsError: isError},
	}
}

// RenderDocument renders f as a full HTML document.
func RenderDocument(w io.Writer, meta Metadata, f Fragment) error {
	return layout.Document(meta, f.Node()).Render(w)
}

// HomeHTML renders the home page document to bytes.
func HomeHTML() ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderDocument(&buf, HomeMetadata(), Home()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
