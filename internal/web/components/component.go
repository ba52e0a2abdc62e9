// Package components holds the presentational units the site's pages are composed from.
// Every unit renders static markup and works without client-side scripting.
package components

import g "maragu.dev/gomponents"

// Component is a named unit of page markup.
type Component interface {
	Name() string
	Render() g.Node
}
