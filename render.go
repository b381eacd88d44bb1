package main

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

type templateParam struct {
	SiteTitle       string
	SiteDescription string
	SiteURL         string
	Copyright       string
}

// Called from templates.
func (t templateParam) FeedURL(name string) string {
	return t.SiteURL + name
}

type pageTemplateParam struct {
	templateParam
	pagePlan
}

type indexTemplateParam struct {
	templateParam
	Intro   template.HTML
	Entries entries
	Atom    bool
}

type feedItemTemplateParam struct {
	ImageURL    string
	PageURL     string
	Description string
}

type templateEngine struct {
	fsys          fs.FS
	templateCache map[string]*template.Template
}

func newTemplateEngine() templateEngine {
	fsys, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return templateEngine{
		fsys:          fsys,
		templateCache: make(map[string]*template.Template),
	}
}

func (te *templateEngine) renderPage(tp templateParam, p pagePlan, w io.Writer) error {
	t := te.getPageTemplate("page.html")
	return t.Execute(w, pageTemplateParam{templateParam: tp, pagePlan: p})
}

func (te *templateEngine) renderIndex(tp templateParam, intro template.HTML, es entries, atom bool, w io.Writer) error {
	p := indexTemplateParam{
		templateParam: tp,
		Intro:         intro,
		Entries:       es.withImages(),
		Atom:          atom,
	}
	t := te.getPageTemplate("index.html")
	return t.Execute(w, p)
}

// renderFeedItem renders the HTML that goes into a feed item's
// description: the image and a link back to its page.
func (te *templateEngine) renderFeedItem(siteURL string, e *entry) (string, error) {
	p := feedItemTemplateParam{
		ImageURL:    siteURL + e.ImagePath(),
		PageURL:     siteURL + e.PageName(),
		Description: e.Description,
	}
	var b bytes.Buffer
	if err := te.getTemplate("feeditem.html").Execute(&b, p); err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(b.Bytes())), nil
}

// getPageTemplate returns filename parsed together with the global layout.
func (te *templateEngine) getPageTemplate(filename string) *template.Template {
	return te.cached(filename, func() *template.Template {
		return template.Must(template.ParseFS(te.fsys, "global.html", filename))
	})
}

func (te *templateEngine) getTemplate(filename string) *template.Template {
	return te.cached("standalone/"+filename, func() *template.Template {
		return template.Must(template.ParseFS(te.fsys, filename))
	})
}

func (te *templateEngine) cached(key string, parse func() *template.Template) *template.Template {
	t, ok := te.templateCache[key]
	if !ok {
		t = parse()
		te.templateCache[key] = t
	}
	return t
}
