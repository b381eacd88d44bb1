package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/radovskyb/watcher"
)

var cli struct {
	SiteURL     string `arg:"" name:"site-url" help:"URL the site is published at, e.g. https://example.com/."`
	PublicDir   string `arg:"" name:"public-dir" help:"Directory holding images/data.json. Pages are written here."`
	UpdateFiles string `arg:"" name:"update-files" optional:"" default:"False" help:"\"True\" rewrites every page, even the ones that exist."`

	Conf    string `short:"c" help:"Path to the site configuration file (JSON or YAML)."`
	Watch   bool   `short:"w" help:"Keep running and rebuild the site on changes to the images directory."`
	Verbose bool   `short:"v" help:"Enable verbose logging."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("photo11"),
		kong.Description("Builds a static photo blog from images/data.json."),
		kong.UsageOnError(),
	)

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	conf, err := readConf(cli.Conf)
	ctx.FatalIfErrorf(err)
	conf.setLocation(cli.SiteURL, cli.PublicDir)

	force := cli.UpdateFiles == "True"

	ctx.FatalIfErrorf(renderSite(conf, force))

	if cli.Watch {
		ctx.FatalIfErrorf(rerenderOnChange(conf, force))
	}
}

func renderSite(conf *SiteConf, force bool) error {
	site, err := ReadSite(conf, force)
	if err != nil {
		return err
	}

	slog.Info("Writing site", "dir", conf.PublicDir, "entries", len(site.entries), "pages", site.ring.Len())
	if _, err = site.RenderAll(); err != nil {
		return err
	}
	return site.CopyStaticFiles()
}

// rerenderOnChange rebuilds the site whenever something in the images
// directory changes. Rebuilds run one at a time on the event loop; a failed
// rebuild is logged and the watch goes on.
func rerenderOnChange(conf *SiteConf, force bool) error {
	imagesDir := filepath.Join(conf.PublicDir, imagesDirName)
	slog.Info("Watching for changes", "dir", imagesDir)

	w := watcher.New()
	w.SetMaxEvents(1)
	w.FilterOps(watcher.Create, watcher.Write, watcher.Remove, watcher.Rename, watcher.Move)

	go rebuildOnEvents(w, func() error { return renderSite(conf, force) })

	if err := w.Add(imagesDir); err != nil {
		return err
	}

	return w.Start(time.Millisecond * 200)
}

// rebuildOnEvents calls rebuild for each event of w until w is closed.
func rebuildOnEvents(w *watcher.Watcher, rebuild func() error) {
	for {
		select {
		case event := <-w.Event:
			slog.Debug("Change detected", "op", event.Op.String(), "path", event.Path)
			if err := rebuild(); err != nil {
				slog.Error("Rebuild failed", "error", err)
			}
		case err := <-w.Error:
			slog.Error("Watcher error", "error", err)
		case <-w.Closed:
			return
		}
	}
}
