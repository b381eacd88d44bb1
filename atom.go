package main

import (
	"fmt"
	"log/slog"
	"time"

	atom "github.com/thomas11/atomgenerator"
)

// renderAtom renders the same items as the RSS feed as an Atom feed, dated
// by its newest entry rather than the time of the build. A feed without
// entries is dated now, since Atom requires an updated date.
func (te *templateEngine) renderAtom(ch feedChannel, author, authorUri string, es entries) ([]byte, error) {
	withImages := es.withImages()

	atomEntries := make([]*atom.Entry, 0, len(withImages))
	var updated time.Time
	for _, e := range withImages {
		pubDate, err := e.PubDate()
		if err != nil {
			return nil, fmt.Errorf("atom entry %v: %w", e.PageName(), err)
		}
		if pubDate.After(updated) {
			updated = pubDate
		}
		content, err := te.renderFeedItem(ch.SiteURL, e)
		if err != nil {
			return nil, err
		}

		atomEntries = append(atomEntries, &atom.Entry{
			Title:       e.Date,
			Description: e.Description,
			Link:        ch.SiteURL + e.PageName(),
			PubDate:     pubDate,
			Content:     content,
		})
	}

	if updated.IsZero() {
		updated = time.Now().UTC()
	}

	feed := atom.Feed{
		Title:   ch.Title,
		Link:    ch.SiteURL,
		PubDate: updated,
	}
	feed.AddAuthor(atom.Author{
		Name: author,
		Uri:  authorUri,
	})
	for _, e := range atomEntries {
		feed.AddEntry(e)
	}

	errs := feed.Validate()
	if len(errs) > 0 {
		slog.Error("Atom feed is not valid")
		for _, e := range errs {
			slog.Error(e.Error())
		}
		return nil, errs[0]
	}

	return feed.GenXml()
}
