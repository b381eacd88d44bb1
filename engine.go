// photo11 is a static photo blog generator: one picture a day, a page for
// each picture, an index of thumbnails and an RSS feed.
//
// The pictures are described by images/data.json in the public directory,
// an array of entries like
//
//	{"date": "March 5, 2024", "description": "Rain",
//	 "image": {"filename": "rain.jpg"}, "thumbnail": {"filename": "rain-t.jpg"}}
//
// Days without an image are allowed and simply get no page. Thumbnails are
// not generated; they have to exist already.
//
// Pages that exist already are left alone unless the update flag is
// "True". The index and the feed are only rewritten when at least one page
// was written. See example/build.sh.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
)

const (
	indexFileName = "index.html"
	rssFileName   = "rss.xml"
	atomFileName  = "atom.xml"
)

type outputFile struct {
	name string
	data []byte
}

type Site struct {
	entries entries
	ring    ring
	conf    *SiteConf
	engine  templateEngine
	force   bool
}

func ReadSite(conf *SiteConf, force bool) (*Site, error) {
	es, err := readEntriesFromFile(dataFilePath(conf.PublicDir))
	if err != nil {
		return nil, err
	}

	return &Site{
		entries: es,
		ring:    newRing(es),
		conf:    conf,
		engine:  newTemplateEngine(),
		force:   force,
	}, nil
}

func (s *Site) templateParam() templateParam {
	return templateParam{
		SiteTitle:       s.conf.SiteTitle,
		SiteDescription: s.conf.SiteDescription,
		SiteURL:         s.conf.BaseUrl,
		Copyright:       s.conf.Copyright,
	}
}

func (s *Site) feedChannel() feedChannel {
	return feedChannel{
		Title:       s.conf.SiteTitle,
		SiteURL:     s.conf.BaseUrl,
		Description: s.conf.FeedDescription,
		Copyright:   s.conf.Copyright,
	}
}

// RenderPages writes the detail pages that are missing from existing, or
// all of them when the site was read with force. Each page is written as
// soon as it is rendered. Returns the names of the pages written.
func (s *Site) RenderPages(existing pageSet) ([]string, error) {
	tp := s.templateParam()
	written := make([]string, 0)

	for _, p := range planPages(s.ring, existing, s.force) {
		var b bytes.Buffer
		if err := s.engine.renderPage(tp, p, &b); err != nil {
			return written, fmt.Errorf("rendering %v: %w", p.PageName, err)
		}
		if err := s.writeFile(p.PageName, b.Bytes()); err != nil {
			return written, err
		}
		slog.Debug("Wrote page", "page", p.PageName, "prev", p.PrevPage, "next", p.NextPage)
		written = append(written, p.PageName)
	}

	return written, nil
}

func (s *Site) RenderIndex() ([]byte, error) {
	intro, err := readIntro(s.conf.IntroFile, newMarkdownRenderer())
	if err != nil {
		return nil, fmt.Errorf("reading intro: %w", err)
	}

	var b bytes.Buffer
	if err := s.engine.renderIndex(s.templateParam(), intro, s.entries, s.conf.Atom, &b); err != nil {
		return nil, fmt.Errorf("rendering %v: %w", indexFileName, err)
	}
	return b.Bytes(), nil
}

func (s *Site) RenderRSS() ([]byte, error) {
	return s.engine.renderRSS(s.feedChannel(), s.entries)
}

func (s *Site) RenderAtom() ([]byte, error) {
	return s.engine.renderAtom(s.feedChannel(), s.conf.Author, s.conf.AuthorUri, s.entries)
}

// RenderAll writes the changed detail pages and, if there were any, the
// index and the feeds. The index and feeds are rendered either way, so a
// bad date fails every run, not just the ones that change something.
// Returns the names of the detail pages written.
func (s *Site) RenderAll() ([]string, error) {
	existing, err := listPages(s.conf.PublicDir)
	if err != nil {
		return nil, err
	}

	written, err := s.RenderPages(existing)
	if err != nil {
		return written, err
	}

	outputs := make([]outputFile, 0, 3)
	add := func(name string, render func() ([]byte, error)) error {
		data, err := render()
		if err != nil {
			return err
		}
		outputs = append(outputs, outputFile{name, data})
		return nil
	}

	if err := add(indexFileName, s.RenderIndex); err != nil {
		return written, err
	}
	if err := add(rssFileName, s.RenderRSS); err != nil {
		return written, err
	}
	if s.conf.Atom {
		if err := add(atomFileName, s.RenderAtom); err != nil {
			return written, err
		}
	}

	if len(written) == 0 {
		slog.Info("No pages changed, leaving index and feeds alone")
		return written, nil
	}

	for _, o := range outputs {
		if err := s.writeFile(o.name, o.data); err != nil {
			return written, err
		}
	}
	slog.Info("Wrote site", "pages", len(written), "files", len(outputs))

	return written, nil
}

func (s *Site) writeFile(name string, data []byte) error {
	path := filepath.Join(s.conf.PublicDir, name)
	if err := os.WriteFile(path, data, os.FileMode(0664)); err != nil {
		return fmt.Errorf("writing %v: %w", path, err)
	}
	return nil
}

func (s *Site) CopyStaticFiles() error {
	srcDir := s.conf.StaticFilesDir
	if srcDir == "" {
		return nil
	}
	dest := filepath.Join(s.conf.PublicDir, filepath.Base(srcDir))
	slog.Info("Recursively copying static files", "from", srcDir, "to", dest)
	return copy.Copy(srcDir, dest)
}
