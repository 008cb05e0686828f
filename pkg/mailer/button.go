package mailer

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultButtonClass is the CSS class given to rendered buttons.
const DefaultButtonClass = "btn"

// buttonMarker opens the inline button syntax: [!button|Label](URL).
var buttonMarker = []byte("[!button|")

// KindButton is the AST node kind of a button link.
var KindButton = ast.NewNodeKind("Button")

// ButtonNode is a call-to-action link in an email body.
type ButtonNode struct {
	ast.BaseInline
	URL   []byte
	Label []byte
}

func (n *ButtonNode) Kind() ast.NodeKind {
	return KindButton
}

func (n *ButtonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"URL":   string(n.URL),
		"Label": string(n.Label),
	}, nil)
}

type buttonParser struct{}

func (buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (buttonParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	line, _ := block.PeekLine()
	rest, ok := bytes.CutPrefix(line, buttonMarker)
	if !ok {
		return nil
	}

	label, rest, ok := bytes.Cut(rest, []byte("]("))
	if !ok || len(label) == 0 || bytes.IndexByte(label, ']') >= 0 {
		return nil
	}

	url, _, ok := bytes.Cut(rest, []byte(")"))
	if !ok {
		return nil
	}

	block.Advance(len(buttonMarker) + len(label) + 2 + len(url) + 1)

	return &ButtonNode{URL: url, Label: label}
}

type buttonRenderer struct {
	class []byte
}

func (r buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindButton, r.render)
}

func (r buttonRenderer) render(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ButtonNode)
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.URL, true)))
	_, _ = w.WriteString(`" class="`)
	_, _ = w.Write(util.EscapeHTML(r.class))
	_, _ = w.WriteString(`">`)
	_, _ = w.Write(util.EscapeHTML(n.Label))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

type buttonExtension struct {
	class string
}

// NewButtonExtension returns a goldmark extension that renders
// [!button|Label](URL) as an anchor with the given CSS class.
// An empty class uses DefaultButtonClass.
func NewButtonExtension(class string) goldmark.Extender {
	if class == "" {
		class = DefaultButtonClass
	}
	return buttonExtension{class: class}
}

func (e buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(buttonParser{}, 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(buttonRenderer{class: []byte(e.class)}, 50),
	))
}
