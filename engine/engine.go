package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/logpack/codec"
	"github.com/arloliu/logpack/internal/options"
	"github.com/arloliu/logpack/staging"
)

// Engine is the background compression-and-persistence engine. One
// goroutine runs the scan→compress→persist loop; producers interact with
// it only through their staging buffers and the control surface (Sync,
// Close, Notify), all safe from any goroutine.
type Engine struct {
	cfg  config
	log  logrus.FieldLogger
	scan *scanner
	wr   *writer

	// mu guards the control flags and the queueEmptied generation. The
	// engine takes it only between passes, never while compressing or
	// writing.
	mu            sync.Mutex
	syncRequested bool
	shouldExit    bool
	queueEmptied  chan struct{}

	workAdded chan struct{}
	done      chan struct{}

	closeOnce sync.Once
	closeErr  error

	stats counters
}

// New creates the engine, opens (creating if absent) the destination file
// in write-append mode, and starts the background goroutine.
//
// Parameters:
//   - path: destination file
//   - buffers: staging registry the engine sweeps; must outlive the engine
//   - codecs: format id → codec registry, read-only once the engine runs
//   - opts: engine options
//
// Returns:
//   - *Engine: running engine
//   - error: option validation or file open failure
func New(path string, buffers *staging.Registry, codecs *codec.Registry, opts ...Option) (*Engine, error) {
	if buffers == nil {
		return nil, errors.New("engine: nil staging registry")
	}
	if codecs == nil {
		return nil, errors.New("engine: nil codec registry")
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	dst, err := openOutput(path, cfg.directIO)
	if err != nil {
		return nil, fmt.Errorf("engine: open %s: %w", path, err)
	}

	return start(dst, buffers, codecs, cfg)
}

// start wires an engine around an already-open target and launches the
// background goroutine. Tests use it to substitute in-memory targets.
func start(dst writeTarget, buffers *staging.Registry, codecs *codec.Registry, cfg config) (*Engine, error) {
	e := &Engine{
		cfg:          cfg,
		log:          cfg.logger,
		queueEmptied: make(chan struct{}),
		workAdded:    make(chan struct{}, 1),
		done:         make(chan struct{}),
	}

	wr, err := newWriter(dst, newOutBuffer(cfg.bufferSize), cfg, &e.stats)
	if err != nil {
		_ = dst.Close()

		return nil, err
	}
	e.wr = wr
	e.scan = newScanner(buffers, codecs, cfg.engine, &e.stats)

	e.log.WithFields(logrus.Fields{
		"bufferSize":       cfg.bufferSize,
		"directIO":         cfg.directIO,
		"blockCompression": cfg.blockComp.String(),
	}).Debug("persistence engine started")

	go e.run(newOutBuffer(cfg.bufferSize))

	return e, nil
}

// run is the engine goroutine: one pass per iteration until told to exit.
// A pass sweeps the staging registry into the fill buffer; a non-empty
// fill is submitted and the rotation hands back the resolved sibling. An
// empty pass runs the sync protocol, then signals quiescence and idles.
func (e *Engine) run(fill *outBuffer) {
	defer close(e.done)

	for {
		e.mu.Lock()
		exiting := e.shouldExit
		e.mu.Unlock()
		if exiting {
			// Finish without starting another pass. The exit flag
			// outranks a pending sync; Sync callers are released by the
			// done channel.
			return
		}

		start := time.Now()
		e.scan.fill(fill)
		e.stats.scanNanos.Add(uint64(time.Since(start))) //nolint:gosec

		if fill.length() > 0 {
			fill = e.wr.submit(fill)

			continue
		}

		// Quiescent pass. Resolve any in-flight write first, so a caller
		// released by the signal below observes its data persisted.
		e.wr.wait()

		e.mu.Lock()
		if e.syncRequested {
			// One extra pass before reporting quiescence: records staged
			// up to the moment Sync was called may have been missed by a
			// sweep that was already past their buffer.
			e.syncRequested = false
			e.mu.Unlock()

			continue
		}
		close(e.queueEmptied)
		e.queueEmptied = make(chan struct{})
		e.mu.Unlock()

		e.idle()
	}
}

// idle blocks until a producer nudge or the poll interval, whichever
// comes first. The bound keeps the engine responsive to producers that
// stage records without calling Notify.
func (e *Engine) idle() {
	select {
	case <-e.workAdded:
	case <-time.After(e.cfg.pollInterval):
	}
}

// Notify nudges the engine out of its idle wait. Producers may call it
// after staging records to cut persistence latency below the poll
// interval; it never blocks.
func (e *Engine) Notify() {
	select {
	case e.workAdded <- struct{}{}:
	default:
	}
}

// Sync blocks until the engine has drained everything staged before the
// call and the corresponding writes have resolved. Records staged
// concurrently with the call may or may not be included; that race is
// deliberate, bounded by one extra sweep.
//
// Sync returns promptly when the engine is already quiescent, and is safe
// concurrently with Close: engine shutdown releases all Sync callers.
func (e *Engine) Sync() {
	e.mu.Lock()
	e.syncRequested = true
	waiter := e.queueEmptied
	e.mu.Unlock()

	e.Notify()

	select {
	case <-waiter:
	case <-e.done:
	}
}

// Close stops the engine: it finishes the current pass without starting
// another, drains the outstanding write, flushes to stable storage when
// configured, closes the destination, and logs the final statistics
// report. Records still staged when Close is called are not drained —
// call Sync first when they must be.
//
// Close is idempotent; every call returns the first call's error.
func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		e.mu.Lock()
		e.shouldExit = true
		e.mu.Unlock()
		e.Notify()
		<-e.done

		e.closeErr = e.wr.close(e.cfg.syncOnClose)
		e.log.Info(e.Stats().Report())
	})

	return e.closeErr
}

// Stats returns a live snapshot of the engine counters. The snapshot is
// only meaningfully complete after Close returns.
func (e *Engine) Stats() Stats {
	return e.stats.snapshot()
}
