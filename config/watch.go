package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/CADMonkey21/pivx-rpc-go/logging"
)

// Watch reloads the file at path whenever it is written or replaced and
// hands the new configuration to onChange. A file that fails to parse is
// logged and skipped. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onChange func(Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := Load(path)
			if err != nil {
				logging.Errorf("CONFIG: Reload of %s failed: %v", path, err)
				continue
			}
			logging.Infof("CONFIG: Reloaded %s", path)
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warnf("CONFIG: Watcher error: %v", err)
		}
	}
}
