// Package tracing provides an optional layout.MeasureObserver backed by
// charmbracelet/log, so cmd/flexdemo can show measurement ordering under
// --verbose without the layout package importing a logging library
// itself.
package tracing

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gridspan/flexlayout/layout"
)

// Tracer implements layout.MeasureObserver, logging one line per
// MeasureFunc invocation (including cache hits) plus run-scoped
// start/done markers. It is safe for concurrent use; flexlayout.Calculate
// itself is single-threaded per call, but a demo may run several
// scenarios against one Tracer from goroutines.
type Tracer struct {
	mu     sync.Mutex
	logger *log.Logger
	runID  string
	start  time.Time
}

// New creates a Tracer writing to w at level. A fresh correlation ID is
// minted for this run so interleaved scenario logs can be told apart.
func New(w io.Writer, level log.Level) *Tracer {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
	})
	return &Tracer{
		logger: logger,
		runID:  uuid.NewString(),
		start:  time.Now(),
	}
}

// OnMeasure implements layout.MeasureObserver.
func (t *Tracer) OnMeasure(itemIndex int, minW, maxW, minH, maxH float32, cacheHit bool, out layout.MeasureOutput) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.logger.Debug("measure",
		"run", t.runID,
		"item", itemIndex,
		"minW", minW, "maxW", maxW, "minH", minH, "maxH", maxH,
		"cacheHit", cacheHit,
		"w", out.Width, "h", out.Height,
	)
}

// Begin logs the start of a named layout pass (e.g. a scenario file name).
func (t *Tracer) Begin(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.start = time.Now()
	t.logger.Info("layout start", "run", t.runID, "scenario", name)
}

// End logs completion of the pass started by Begin, with elapsed time.
func (t *Tracer) End(name string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	elapsed := time.Since(t.start).Round(time.Microsecond)
	if err != nil {
		t.logger.Error("layout failed", "run", t.runID, "scenario", name, "elapsed", elapsed, "err", err)
		return
	}
	t.logger.Info("layout done", "run", t.runID, "scenario", name, "elapsed", elapsed)
}

// RunID returns the correlation ID this Tracer stamps on every line.
func (t *Tracer) RunID() string {
	return t.runID
}
