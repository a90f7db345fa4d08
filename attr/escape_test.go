package attr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/grafio/attr"
)

func TestEscapeString_Entities(t *testing.T) {
	cases := []struct{ in, want string }{
		{``, ``},
		{`plain text`, `plain text`},
		{`a&<b"c>`, `a&amp;&lt;b&quot;c&gt;`},
		{`it's`, `it&apos;s`},
		{`&&`, `&amp;&amp;`},
		{`<tag attr="v">`, `&lt;tag attr=&quot;v&quot;&gt;`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, attr.EscapeString(c.in), c.in)
	}
}

func TestEscapeString_ControlBytes(t *testing.T) {
	assert.Equal(t, "a&#x1;b", attr.EscapeString("a\x01b"))
	assert.Equal(t, "&#x1f;", attr.EscapeString("\x1f"))
	// tab, newline, carriage return stay literal
	assert.Equal(t, "a\tb\nc\rd", attr.EscapeString("a\tb\nc\rd"))
}

func TestEscapeString_PassThroughKeepsIdentity(t *testing.T) {
	in := "héllo ünïcode ✓"
	assert.Equal(t, in, attr.EscapeString(in))
}
