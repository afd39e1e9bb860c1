package blissary

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/bliss/pkg/core"
)

// watchWorker watches the dataset file's directory and forwards debounced
// modify events. Watching the directory rather than the file itself keeps
// the watch alive across editors that replace the file on save.
type watchWorker struct {
	*worker.BaseWorker
	source  *FileSource
	events  chan<- core.Event
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc

	debounce time.Duration
	timer    *time.Timer
}

func newWatchWorker(source *FileSource, events chan<- core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("dataset-watcher"),
		source:     source,
		events:     events,
		debounce:   50 * time.Millisecond,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.source.Path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.source.Path, err)
	}

	w.watcher = watcher
	w.source.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			w.source.Logger.Error("watcher panic",
				"error", fmt.Errorf("watcher panic: %v", recovered),
				"stack", string(debug.Stack()),
			)
		}
	}()
	defer w.source.setWatcherActive(false)
	defer w.watcher.Close()
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.source.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// handleEvent filters for the dataset file and debounces bursts of writes
// into a single modify event.
func (w *watchWorker) handleEvent(ctx context.Context, event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.source.Path) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	w.source.Logger.Debug("dataset event", "name", event.Name, "op", event.Op.String())

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		defer func() {
			// The events channel may close during shutdown.
			_ = recover()
		}()
		select {
		case w.events <- core.Event{
			Type:      core.EventModify,
			Source:    w.source.Path,
			Timestamp: time.Now().Unix(),
		}:
		case <-ctx.Done():
		}
	})
}
