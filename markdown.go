package main

import (
	"html/template"
	"os"

	"github.com/russross/blackfriday/v2"
)

var htmlFlags blackfriday.HTMLFlags
var extensions blackfriday.Extensions

func init() {
	htmlFlags |= blackfriday.UseXHTML
	htmlFlags |= blackfriday.Smartypants
	htmlFlags |= blackfriday.SmartypantsFractions
	htmlFlags |= blackfriday.SmartypantsLatexDashes

	extensions |= blackfriday.NoIntraEmphasis
	extensions |= blackfriday.Tables
	extensions |= blackfriday.FencedCode
	extensions |= blackfriday.Autolink
	extensions |= blackfriday.Strikethrough
}

type renderer interface {
	render(in []byte) string
}

func newMarkdownRenderer() renderer {
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{Flags: htmlFlags})
	return &blackfridayHtmlRenderer{r, extensions}
}

type blackfridayHtmlRenderer struct {
	r          blackfriday.Renderer
	extensions blackfriday.Extensions
}

func (b *blackfridayHtmlRenderer) render(in []byte) string {
	return string(blackfriday.Run(in, blackfriday.WithRenderer(b.r), blackfriday.WithExtensions(b.extensions)))
}

// readIntro renders the Markdown intro shown above the thumbnails. The
// intro is written by the site owner, so its HTML is trusted.
func readIntro(path string, r renderer) (template.HTML, error) {
	if path == "" {
		return "", nil
	}
	md, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return template.HTML(r.render(md)), nil
}
