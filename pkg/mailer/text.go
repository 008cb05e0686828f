package mailer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy     *bluemonday.Policy
	stripPolicyOnce sync.Once
)

// blockBreaks keeps block boundaries visible once tags are stripped.
var blockBreaks = strings.NewReplacer(
	"</p>", "</p>\n",
	"</div>", "</div>\n",
	"</li>", "</li>\n",
	"</tr>", "</tr>\n",
	"</h1>", "</h1>\n",
	"</h2>", "</h2>\n",
	"</h3>", "</h3>\n",
	"</h4>", "</h4>\n",
	"</h5>", "</h5>\n",
	"</h6>", "</h6>\n",
	"<br>", "<br>\n",
	"<br/>", "<br/>\n",
	"<br />", "<br />\n",
)

// PlainText derives a plain text alternative from HTML content.
// All tags are removed, entities decoded and blank lines dropped.
func PlainText(content string) string {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})

	stripped := html.UnescapeString(stripPolicy.Sanitize(blockBreaks.Replace(content)))

	lines := strings.Split(stripped, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
