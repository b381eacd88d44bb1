package main

import (
	"fmt"
	"path"
	"strings"
	"time"
)

const (
	imagesDirName = "images"
	dataFileName  = "data.json"

	// Dates in data.json look like "March 5, 2024".
	entryDateFormat = "January 2, 2006"
)

type imageRef struct {
	Filename string `json:"filename"`
}

// An entry is one day of the photo blog. Days without an image are
// placeholders and get no page.
type entry struct {
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Image       *imageRef `json:"image,omitempty"`
	Thumbnail   *imageRef `json:"thumbnail,omitempty"`
}

func (e *entry) HasImage() bool {
	return e.Image != nil
}

// PageName is the file name of the entry's detail page: the image file
// name without its extension, plus ".html".
func (e *entry) PageName() string {
	base := path.Base(e.Image.Filename)
	return strings.TrimSuffix(base, path.Ext(base)) + ".html"
}

func (e *entry) ImagePath() string {
	return path.Join(imagesDirName, e.Image.Filename)
}

// Called from templates. Falls back to the full-size image when no
// thumbnail was generated.
func (e *entry) ThumbnailPath() string {
	if e.Thumbnail == nil || e.Thumbnail.Filename == "" {
		return e.ImagePath()
	}
	return path.Join(imagesDirName, e.Thumbnail.Filename)
}

// Called from templates.
func (e *entry) Title() string {
	return e.Date + " - " + e.Description
}

func (e *entry) PubDate() (time.Time, error) {
	return parseEntryDate(e.Date)
}

func (e *entry) String() string {
	if !e.HasImage() {
		return fmt.Sprintf("%s (no image)", e.Date)
	}
	return fmt.Sprintf("%s: %s [%s]", e.Date, e.Description, e.Image.Filename)
}

type entries []*entry

// withImages returns the entries that get a page, in source order.
func (es entries) withImages() entries {
	withImages := make(entries, 0, len(es))
	for _, e := range es {
		if e.HasImage() {
			withImages = append(withImages, e)
		}
	}
	return withImages
}

// parseEntryDate parses a data.json date. time.Parse only knows English
// month names, so the result doesn't depend on the machine's locale. The
// date must match exactly; surrounding whitespace is an error.
func parseEntryDate(date string) (time.Time, error) {
	t, err := time.Parse(entryDateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.UTC(), nil
}

func formatPubDate(t time.Time) string {
	return t.UTC().Format(time.RFC1123Z)
}
