package reconcile

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/fsnotify/fsnotify"

	"github.com/apx-soporte/warranty-tracker/constants"
)

// WatchConfig controls workbook change watching.
type WatchConfig struct {
	Path     string        // workbook to watch
	Debounce time.Duration // coalesce rapid save bursts (office suites write in several steps)
}

// WatchWorkbook watches the directory holding the configured workbook and
// emits the workbook path whenever it is written, created or renamed into
// place. The parent directory is watched rather than the file itself because
// spreadsheet editors replace the file on save, which would drop a direct
// watch.
func WatchWorkbook(ctx context.Context, cfg WatchConfig, logger *slog.Logger) (<-chan string, <-chan error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		return nil, nil, errors.New("no workbook path to watch")
	}
	if !constants.IsSpreadsheet(path) {
		return nil, nil, errors.New("watch target is not a spreadsheet")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 2 * time.Second
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("failed to create fsnotify watcher", "error", err)
		return nil, nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		logger.Error("failed to watch workbook directory", "dir", filepath.Dir(path), "error", err)
		_ = w.Close()
		return nil, nil, err
	}

	evCh := make(chan string, 1)
	errCh := make(chan error, 1)
	target := filepath.Clean(path)

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() { _ = w.Close() }()

		var timer *time.Timer
		emit := func() {
			select {
			case evCh <- target:
			default:
			}
		}

		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case e := <-w.Events:
				if filepath.Clean(e.Name) != target {
					continue
				}
				if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(cfg.Debounce, emit)
			case err := <-w.Errors:
				logger.Error("workbook watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	logger.Info("watching workbook for changes", "path", target, "debounce", cfg.Debounce)
	return evCh, errCh, nil
}
