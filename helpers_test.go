package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const testSiteURL = "https://example.com/"

func imageEntry(date, description, filename, thumbnail string) *entry {
	e := &entry{Date: date, Description: description, Image: &imageRef{Filename: filename}}
	if thumbnail != "" {
		e.Thumbnail = &imageRef{Filename: thumbnail}
	}
	return e
}

func placeholder(date string) *entry {
	return &entry{Date: date, Description: "nothing today"}
}

func abcEntries() entries {
	return entries{
		imageEntry("January 1, 2024", "First", "a.jpg", "a-thumb.jpg"),
		imageEntry("January 2, 2024", "Second", "b.jpg", "b-thumb.jpg"),
		imageEntry("January 3, 2024", "Third", "c.jpg", "c-thumb.jpg"),
	}
}

// newPublicDir creates a public directory whose images/data.json holds es.
func newPublicDir(t *testing.T, es entries) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, imagesDirName), 0o775))
	writeEntries(t, dir, es)
	return dir
}

func writeEntries(t *testing.T, publicDir string, es entries) {
	t.Helper()
	raw, err := json.MarshalIndent(es, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dataFilePath(publicDir), raw, 0o664))
}

func testConf(publicDir string) *SiteConf {
	conf, _ := readConf("")
	conf.Copyright = "Copyright © 2024 Test"
	conf.setLocation(testSiteURL, publicDir)
	return conf
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func parseHTML(t *testing.T, doc string) *html.Node {
	t.Helper()
	n, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return n
}

// findAll returns the elements called tag below n, in document order.
func findAll(n *html.Node, tag string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func withClass(ns []*html.Node, class string) *html.Node {
	for _, n := range ns {
		if attr(n, "class") == class {
			return n
		}
	}
	return nil
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
