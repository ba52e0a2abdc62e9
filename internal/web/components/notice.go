package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Notice is a one-off message section, used to report form results.
type Notice struct {
	Heading string
	Message string
	IsError bool
}

func (Notice) Name() string { return "Notice" }

func (n Notice) Render() g.Node {
	return Section(
		ID("notice"),
		Class("notice"),
		g.If(n.IsError, g.Attr("role", "alert")),
		H2(g.Text(n.Heading)),
		P(g.Text(n.Message)),
		A(Href("/"), Class("button button--ghost"), g.Text("Back to home")),
	)
}
