package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

func dataFilePath(publicDir string) string {
	return filepath.Join(publicDir, imagesDirName, dataFileName)
}

func readEntriesFromFile(path string) (entries, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var es entries
	if err := json.Unmarshal(raw, &es); err != nil {
		return nil, fmt.Errorf("parsing %v: %w", path, err)
	}

	// Page names are unique and never shadow the index. The feeds can't
	// clash since every page name ends in .html.
	pageOwners := map[string]int{indexFileName: -1}

	for i, e := range es {
		if e == nil {
			return nil, fmt.Errorf("entry %d in %v is null", i, path)
		}
		if !e.HasImage() {
			continue
		}
		if e.Image.Filename == "" {
			return nil, fmt.Errorf("entry %d (%v) in %v: image has no filename", i, e.Date, path)
		}
		if e.Date == "" {
			return nil, fmt.Errorf("entry %d (%v) in %v: missing date", i, e.Image.Filename, path)
		}

		name := e.PageName()
		if owner, taken := pageOwners[name]; taken {
			if owner < 0 {
				return nil, fmt.Errorf("entry %d (%v) in %v: page name %v is reserved", i, e.Image.Filename, path, name)
			}
			return nil, fmt.Errorf("entries %d and %d in %v both have page name %v", owner, i, path, name)
		}
		pageOwners[name] = i
	}

	return es, nil
}

// pageSet holds the file names found in the public directory when the
// run started.
type pageSet map[string]bool

func listPages(dir string) (pageSet, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	pages := make(pageSet, len(dirEntries))
	for _, d := range dirEntries {
		if !d.IsDir() {
			pages[d.Name()] = true
		}
	}
	return pages, nil
}

// needsWrite reports whether the page called name has to be (re)written.
func (ps pageSet) needsWrite(name string, force bool) bool {
	return force || !ps[name]
}
