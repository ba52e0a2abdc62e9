package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ScrollUp is a fixed "back to top" link.
type ScrollUp struct{}

func (ScrollUp) Name() string { return "ScrollUp" }

func (ScrollUp) Render() g.Node {
	return A(
		Href("#top"),
		Class("scroll-up"),
		Aria("label", "Scroll to top"),
		g.Text("↑"),
	)
}
