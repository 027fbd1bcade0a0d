package userstore

import (
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/gopatterns/internal/logging"
)

// Watcher reloads a store from its user file when the file changes on disk.
type Watcher struct {
	store   *Store
	path    string
	watcher *fsnotify.Watcher
	logger  *logging.Logger

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// NewWatcher creates a watcher that reloads store from path on change.
// Call Start to begin watching and Close to stop.
func NewWatcher(store *Store, path string, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.Nop
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		store:   store,
		path:    path,
		watcher: fsw,
		logger:  logger.WithComponent("userstore"),
		closeCh: make(chan struct{}),
	}, nil
}

// Start begins watching the user file.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.path); err != nil {
		return err
	}

	w.wg.Add(1)
	go w.loop()
	return nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.closeCh)
	})
	w.wg.Wait()
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				if err := w.store.LoadFile(w.path); err != nil {
					w.logger.Warn("reload failed: %v", err)
					continue
				}
				w.logger.Info("reloaded %d users from %s", w.store.Len(), w.path)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error: %v", err)
		}
	}
}
