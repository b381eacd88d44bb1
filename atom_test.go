package main

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type atomDoc struct {
	Entries []struct {
		Title string `xml:"title"`
	} `xml:"entry"`
}

func TestRenderAtom(t *testing.T) {
	engine := newTemplateEngine()
	es := append(abcEntries(), placeholder("January 4, 2024"))

	raw, err := engine.renderAtom(testFeedChannel(), "Test Author", testSiteURL, es)
	require.NoError(t, err)

	var doc atomDoc
	require.NoError(t, xml.Unmarshal(raw, &doc))
	require.Len(t, doc.Entries, 3)
	for i, date := range []string{"January 1, 2024", "January 2, 2024", "January 3, 2024"} {
		assert.Equal(t, date, doc.Entries[i].Title)
	}

	out := string(raw)
	assert.Contains(t, out, "https://example.com/a.html")
	assert.Contains(t, out, "https://example.com/c.html")
	assert.Contains(t, out, "Test Author")
}

func TestRenderAtomWithoutImages(t *testing.T) {
	engine := newTemplateEngine()

	for _, es := range []entries{{}, {placeholder("January 1, 2024"), placeholder("")}} {
		raw, err := engine.renderAtom(testFeedChannel(), "Test Author", testSiteURL, es)
		require.NoError(t, err)

		var doc atomDoc
		require.NoError(t, xml.Unmarshal(raw, &doc))
		assert.Empty(t, doc.Entries)
	}
}

func TestRenderAtomInvalidDate(t *testing.T) {
	engine := newTemplateEngine()
	es := entries{imageEntry("yesterday", "Rain", "rain.jpg", "")}

	_, err := engine.renderAtom(testFeedChannel(), "Test Author", testSiteURL, es)
	assert.Error(t, err)
}
