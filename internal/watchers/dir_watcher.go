package watchers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"log-analyzer/internal/shared/loggers"

	"github.com/benbjohnson/clock"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// TriggerFunc is called from the watch loop once the directory has settled.
type TriggerFunc func(ctx context.Context)

type Options struct {
	// Prefix limits the watched files to names starting with it. Empty matches every file.
	Prefix   string
	Debounce time.Duration
	Clock    clock.Clock
}

type DirWatcher interface {
	// Run blocks until ctx is done, calling the trigger after files are created or written.
	Run(ctx context.Context) error
	Close() error
}

type dirWatcher struct {
	dir     string
	opts    Options
	trigger TriggerFunc
	watcher *fsnotify.Watcher

	closeOnce sync.Once
	closeErr  error
}

// NewDirWatcher starts watching dir right away, so files created after it returns are never missed.
func NewDirWatcher(dir string, opts Options, trigger TriggerFunc) (DirWatcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &dirWatcher{dir: dir, opts: opts, trigger: trigger, watcher: watcher}, nil
}

func (w *dirWatcher) Run(ctx context.Context) error {
	defer w.Close()

	logger := loggers.Ctx(ctx)
	logger.Info().Str("dir", w.dir).Dur("debounce", w.opts.Debounce).Msg("watching log directory")

	fire := make(chan struct{}, 1)
	debounce := newDebouncer(w.opts.Clock, w.opts.Debounce, func() {
		select {
		case fire <- struct{}{}:
		default:
		}
	})
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("stopped watching log directory")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			metricEventsTotal.WithLabelValues(opName(event.Op)).Inc()
			logger.Debug().Str(loggers.FieldLogFile, event.Name).Str("op", event.Op.String()).Msg("log directory changed")
			debounce.Touch()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")

		case <-fire:
			metricTriggersTotal.WithLabelValues().Inc()
			w.trigger(ctx)
		}
	}
}

func (w *dirWatcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.watcher.Close()
	})
	return w.closeErr
}

func (w *dirWatcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), w.opts.Prefix)
}

func opName(op fsnotify.Op) string {
	if op.Has(fsnotify.Create) {
		return "create"
	}
	return "write"
}
