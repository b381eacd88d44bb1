package main

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Copyright   string    `xml:"copyright,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// feedChannel is the site-wide part of a feed.
type feedChannel struct {
	Title       string
	SiteURL     string
	Description string
	Copyright   string
}

// renderRSS renders an RSS 2.0 feed with one item per entry that has an
// image, in source order. An item's description is an HTML fragment
// which the XML encoder escapes into a single text node.
func (te *templateEngine) renderRSS(ch feedChannel, es entries) ([]byte, error) {
	withImages := es.withImages()
	items := make([]rssItem, 0, len(withImages))
	for _, e := range withImages {
		pubDate, err := e.PubDate()
		if err != nil {
			return nil, fmt.Errorf("feed item %v: %w", e.PageName(), err)
		}
		description, err := te.renderFeedItem(ch.SiteURL, e)
		if err != nil {
			return nil, err
		}

		pageURL := ch.SiteURL + e.PageName()
		items = append(items, rssItem{
			Title:       e.Date,
			Link:        pageURL,
			Description: description,
			PubDate:     formatPubDate(pubDate),
			GUID:        pageURL,
		})
	}

	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       ch.Title,
			Link:        ch.SiteURL,
			Description: ch.Description,
			Copyright:   ch.Copyright,
			Items:       items,
		},
	}

	var b bytes.Buffer
	b.WriteString(xml.Header)
	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return nil, err
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
