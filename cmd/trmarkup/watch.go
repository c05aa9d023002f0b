package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// catalogWatcher reports writes to the local catalog file or to message
// files in the catalog directory.
type catalogWatcher struct {
	watchingDirs, watchingFiles map[string]struct{}
	watchAllIn                  map[string]struct{}

	watcher *fsnotify.Watcher
}

func newCatalogWatcher() (*catalogWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	return &catalogWatcher{
		watchingDirs:  make(map[string]struct{}),
		watchingFiles: make(map[string]struct{}),
		watchAllIn:    make(map[string]struct{}),
		watcher:       watcher,
	}, nil
}

func (w *catalogWatcher) Close() error { return w.watcher.Close() }

// WatchFile watches a single file through its directory, so that editors
// replacing the file are noticed too.
func (w *catalogWatcher) WatchFile(path string) error {
	fullPath, _ := filepath.Abs(path)
	w.watchingFiles[fullPath] = struct{}{}
	return w.addDir(filepath.Dir(fullPath))
}

// WatchDir watches every message file in dir.
func (w *catalogWatcher) WatchDir(dir string) error {
	fullPath, _ := filepath.Abs(dir)
	w.watchAllIn[fullPath] = struct{}{}
	return w.addDir(fullPath)
}

func (w *catalogWatcher) addDir(dir string) error {
	if _, ok := w.watchingDirs[dir]; ok {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return err
	}
	w.watchingDirs[dir] = struct{}{}
	return nil
}

func (w *catalogWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	fname, _ := filepath.Abs(event.Name)
	if _, ok := w.watchingFiles[fname]; ok {
		return true
	}
	if _, ok := w.watchAllIn[filepath.Dir(fname)]; !ok {
		return false
	}
	ext := strings.ToLower(filepath.Ext(fname))
	return ext == ".toml" || ext == ".json"
}

// loop calls changed for every relevant event until ctx is done.
func (w *catalogWatcher) loop(ctx context.Context, changed func(name string)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				changed(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch: %s", err.Error())
		}
	}
}

// watchCatalog re-renders the preview whenever the catalog changes.
func watchCatalog(ctx context.Context, p *preview, out io.Writer) error {
	src := p.opts.catalog
	if src == "" || strings.Contains(src, "://") {
		return fmt.Errorf("--watch needs a local catalog path")
	}
	w, err := newCatalogWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	path := normalizePath(src)
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		err = w.WatchDir(path)
	} else {
		err = w.WatchFile(path)
	}
	if err != nil {
		return err
	}
	return w.loop(ctx, func(name string) {
		log.Infof("%q modified, re-rendering", filepath.Base(name))
		if err := p.load(ctx); err != nil {
			log.Errorf("reload: %s", err.Error())
			return
		}
		if err := p.run(out); err != nil {
			log.Errorf("render: %s", err.Error())
		}
	})
}
