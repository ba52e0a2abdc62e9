package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/agrinet/internal/diagnosis"
)

func renderString(t *testing.T, c Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render().Render(&b))
	return b.String()
}

func TestNames(t *testing.T) {
	for want, c := range map[string]Component{
		"ScrollUp": ScrollUp{},
		"Hero":     Hero{},
		"Features": Features{},
		"Contact":  Contact{},
		"Notice":   Notice{},
	} {
		assert.Equal(t, want, c.Name())
	}
}

func TestFeaturesListsCatalogInOrder(t *testing.T) {
	out := renderString(t, Features{})
	assert.Equal(t, diagnosis.NumClasses(), strings.Count(out, `class="feature"`))

	last := -1
	for _, name := range diagnosis.ClassNames() {
		i := strings.Index(out, `data-class="`+name+`"`)
		require.GreaterOrEqual(t, i, 0, name)
		assert.Greater(t, i, last, name)
		last = i
	}
	assert.Contains(t, out, "Northern Leaf Blight")
}

func TestContactForm(t *testing.T) {
	out := renderString(t, Contact{})
	assert.Contains(t, out, `action="/contact"`)
	assert.Contains(t, out, `method="post"`)
	for _, name := range []string{"name", "email", "message"} {
		assert.Contains(t, out, `name="`+name+`"`)
	}
}

func TestNoticeEscapesText(t *testing.T) {
	out := renderString(t, Notice{Heading: "<b>hi</b>", Message: "a & b"})
	assert.Contains(t, out, "&lt;b&gt;hi&lt;/b&gt;")
	assert.Contains(t, out, "a &amp; b")
}
