package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/yungbote/agrinet/internal/diagnosis"
)

// Features lists the conditions the detector can tell apart, in model output order.
type Features struct{}

func (Features) Name() string { return "Features" }

func (Features) Render() g.Node {
	return Section(
		ID("features"),
		Class("features"),
		H2(g.Text("What AgriNet detects")),
		P(Class("features__lead"), g.Text("Upload a photo of a corn leaf and get a diagnosis with symptoms and treatment advice.")),
		Ul(
			Class("features__grid"),
			g.Map(diagnosis.Conditions(), func(c diagnosis.Condition) g.Node {
				return Li(
					Class("feature"),
					g.Attr("data-class", c.Class),
					H3(g.Text(c.Label)),
					P(g.Text(c.Symptoms)),
				)
			}),
		),
	)
}
