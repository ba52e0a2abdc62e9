package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Hero struct{}

func (Hero) Name() string { return "Hero" }

func (Hero) Render() g.Node {
	return Section(
		ID("home"),
		Class("hero"),
		Div(
			Class("hero__content"),
			H1(g.Text("Detect corn leaf diseases from a single photo")),
			P(
				Class("hero__lead"),
				g.Text("AgriNet identifies common corn leaf diseases and tells you what to look for and how to treat them, so you can act before the damage spreads."),
			),
			Div(
				Class("hero__actions"),
				A(Href("#features"), Class("button button--primary"), g.Text("What we detect")),
				A(Href("#contact"), Class("button button--ghost"), g.Text("Get in touch")),
			),
		),
	)
}
