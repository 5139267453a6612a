// internal/assets/loader.go
package assets

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var (
	ErrClosed = errors.New("loader closed")
	ErrBusy   = errors.New("load already started")
)

// Result is the one-shot outcome of Load.
type Result struct {
	Asset *Asset
	Err   error
}

// Loader runs a single asset load off the update thread and hands the
// result back through Poll. After Close a late result is released and
// never delivered.
type Loader struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu      sync.Mutex // guards closed and the handoff
	closed  bool
	started bool
	results chan Result
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewLoader uses DefaultFetcher when f is nil and slog.Default when logger is nil.
func NewLoader(f Fetcher, logger *slog.Logger) *Loader {
	if f == nil {
		f = DefaultFetcher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		fetcher: f,
		logger:  logger,
		results: make(chan Result, 1),
	}
}

// Load starts fetching and decoding uri. Only one load per Loader; there
// is no retry.
func (l *Loader) Load(ctx context.Context, uri string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	if l.started {
		return ErrBusy
	}
	l.started = true

	ctx, l.cancel = context.WithCancel(ctx)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.logger.Debug("asset load started", "uri", uri)
		asset, err := Open(ctx, l.fetcher, uri)
		l.deliver(Result{Asset: asset, Err: err})
	}()
	return nil
}

func (l *Loader) deliver(r Result) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		l.logger.Debug("dropping asset load result after close")
		r.Asset.Release()
		return
	}
	l.results <- r
}

// Poll returns the load result once it is ready. It never blocks.
func (l *Loader) Poll() (Result, bool) {
	select {
	case r := <-l.results:
		return r, true
	default:
		return Result{}, false
	}
}

// Close cancels a pending load. A result that was ready but not polled is
// released. Close does not wait for the load goroutine; use Wait for that.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.cancel != nil {
		l.cancel()
	}
	select {
	case r := <-l.results:
		r.Asset.Release()
	default:
	}
}

// Wait blocks until the load goroutine, if any, has finished.
func (l *Loader) Wait() {
	l.wg.Wait()
}
