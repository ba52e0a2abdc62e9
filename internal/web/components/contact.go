package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactAction is where the contact form posts to.
const ContactAction = "/contact"

type Contact struct{}

func (Contact) Name() string { return "Contact" }

func (Contact) Render() g.Node {
	return Section(
		ID("contact"),
		Class("contact"),
		H2(g.Text("Need help with your crop?")),
		P(g.Text("Send us a message and our agronomy team will reply within 24 hours.")),
		Form(
			Action(ContactAction),
			Method("post"),
			Class("contact__form"),
			field("name", "Your name", Input(Type("text"), ID("name"), Name("name"), Required(), g.Attr("maxlength", "120"), Placeholder("Enter your name"))),
			field("email", "Your email", Input(Type("email"), ID("email"), Name("email"), Required(), Placeholder("Enter your email"))),
			field("message", "Your message", Textarea(ID("message"), Name("message"), Required(), g.Attr("rows", "5"), g.Attr("maxlength", "5000"), Placeholder("Enter your message"))),
			Button(Type("submit"), Class("button button--primary"), g.Text("Submit ticket")),
		),
	)
}

func field(id, label string, control g.Node) g.Node {
	return Div(
		Class("contact__field"),
		Label(For(id), g.Text(label)),
		control,
	)
}
