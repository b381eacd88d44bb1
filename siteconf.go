package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type SiteConf struct {
	SiteTitle       string `yaml:"siteTitle"`
	SiteDescription string `yaml:"siteDescription"`
	FeedDescription string `yaml:"feedDescription"`
	Copyright       string `yaml:"copyright"`

	Author    string `yaml:"author"`
	AuthorUri string `yaml:"authorUri"`

	// Optional. Markdown shown above the thumbnails on the index page.
	IntroFile string `yaml:"introFile"`
	// Optional. Copied recursively into the public directory after each build.
	StaticFilesDir string `yaml:"staticFilesDir"`
	// Also write atom.xml next to rss.xml.
	Atom bool `yaml:"atom"`

	// Set from the command line.
	BaseUrl   string `yaml:"-" json:"-"`
	PublicDir string `yaml:"-" json:"-"`
}

// readConf reads the site configuration from fileName, a JSON or YAML file
// depending on its extension. An empty fileName yields the defaults.
func readConf(fileName string) (*SiteConf, error) {
	conf := SiteConf{}

	if fileName != "" {
		rawConf, err := os.ReadFile(fileName)
		if err != nil {
			return nil, err
		}

		switch strings.ToLower(filepath.Ext(fileName)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(rawConf, &conf)
		default:
			err = json.Unmarshal(rawConf, &conf)
		}
		if err != nil {
			return nil, fmt.Errorf("reading site configuration %v: %w", fileName, err)
		}

		// Normalize relative paths because the executable can be called from anywhere
		baseDir := filepath.Dir(fileName)
		conf.IntroFile = normalizePath(conf.IntroFile, baseDir)
		conf.StaticFilesDir = normalizePath(conf.StaticFilesDir, baseDir)
	}

	conf.setDefaults()
	return &conf, nil
}

func (c *SiteConf) setDefaults() {
	if c.SiteTitle == "" {
		c.SiteTitle = "One a Day"
	}
	if c.SiteDescription == "" {
		c.SiteDescription = "Photoblogging like it's 1996! One picture a day, for a year (at least)."
	}
	if c.FeedDescription == "" {
		c.FeedDescription = "One picture a day, need I say more?"
	}
	if c.Author == "" {
		c.Author = c.SiteTitle
	}
}

// setLocation sets where the site lives and where it is published. The
// site URL always ends in a slash since page URLs are appended to it.
func (c *SiteConf) setLocation(siteUrl, publicDir string) {
	if siteUrl != "" && !strings.HasSuffix(siteUrl, "/") {
		siteUrl += "/"
	}
	c.BaseUrl = siteUrl
	c.PublicDir = publicDir
	if c.AuthorUri == "" {
		c.AuthorUri = siteUrl
	}
}

func normalizePath(path, baseDir string) string {
	if path != "" && !filepath.IsAbs(path) {
		absPath := filepath.Join(baseDir, path)
		slog.Debug("Normalizing path", "path", path, "normalized", absPath)
		return absPath
	}
	return path
}
