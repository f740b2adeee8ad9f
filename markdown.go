package mailform

import (
	"bytes"
	"errors"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// newMarkdown builds the goldmark pipeline used for literal markdown
// bodies, with the call-to-action button extension enabled.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(newButtonExtension()),
	)
}

// renderMarkdown converts a markdown body to HTML.
func renderMarkdown(md goldmark.Markdown, body string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return buf.String(), nil
}

// buttonNode represents a call-to-action button in the AST.
type buttonNode struct {
	ast.BaseInline
	url   []byte
	label []byte
}

func (n *buttonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

var kindButton = ast.NewNodeKind("Button")

func (n *buttonNode) Kind() ast.NodeKind {
	return kindButton
}

// buttonPrefix is the syntax prefix that triggers button parsing.
const buttonPrefix = "[!button|"

// buttonParser parses button syntax: [!button|Label](URL).
type buttonParser struct{}

func (s *buttonParser) Trigger() []byte {
	return []byte{'['}
}

func (s *buttonParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if len(line) < len(buttonPrefix) || string(line[:len(buttonPrefix)]) != buttonPrefix {
		return nil
	}

	labelEnd := bytes.IndexByte(line[len(buttonPrefix):], ']')
	if labelEnd == -1 {
		return nil
	}
	labelEnd += len(buttonPrefix)
	label := line[len(buttonPrefix):labelEnd]

	if labelEnd+1 >= len(line) || line[labelEnd+1] != '(' {
		return nil
	}
	urlStart := labelEnd + 2
	urlEnd := bytes.IndexByte(line[urlStart:], ')')
	if urlEnd == -1 {
		return nil
	}
	urlEnd += urlStart

	block.Advance(urlEnd + 1)

	return &buttonNode{
		url:   line[urlStart:urlEnd],
		label: label,
	}
}

// buttonStyle is inlined on the anchor because email clients strip
// stylesheets and class attributes.
const buttonStyle = "display:inline-block;padding:10px 20px;background-color:#2563eb;" +
	"color:#ffffff;text-decoration:none;border-radius:4px"

// buttonRenderer renders buttonNode to an inline-styled anchor.
type buttonRenderer struct {
	html.Config
}

func (r *buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindButton, r.renderButton)
}

func (r *buttonRenderer) renderButton(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*buttonNode)

	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(n.url))
	_, _ = w.WriteString(`" style="` + buttonStyle + `">`)
	_, _ = w.Write(util.EscapeHTML(n.label))
	_, _ = w.WriteString(`</a>`)

	return ast.WalkContinue, nil
}

// buttonExtension wires the button parser and renderer into goldmark.
type buttonExtension struct{}

func (e *buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(&buttonParser{}, 50),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&buttonRenderer{Config: html.NewConfig()}, 50),
	))
}

func newButtonExtension() goldmark.Extender {
	return &buttonExtension{}
}
