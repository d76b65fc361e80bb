package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	cases := []struct {
		name   string
		markup string
		want   string
	}{
		{"plain text", "hello world", "hello world"},
		{"tags removed", "<p>Our <strong>family law</strong> team</p>", "Our family law team"},
		{"whitespace collapsed", "<p>line one</p>\n\n  <p>line two</p>", "line one line two"},
		{"script skipped", `<p>safe</p><script>alert("x")</script>`, "safe"},
		{"style skipped", "<style>p{color:red}</style><p>text</p>", "text"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripHTML(tc.markup))
		})
	}
}
