package appdata

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/photobill/internal/metrics"
	"github.com/mmynk/photobill/internal/models"
)

const writeTimeout = 10 * time.Second

type saveJob struct {
	seq      uint64
	snapshot models.Snapshot
}

// writer serializes snapshot saves on one goroutine.
// The mailbox holds at most one snapshot; a newer submit replaces an
// unwritten older one, so writes land in mutation order and never block
// the submitter.
type writer struct {
	target  Persister
	logger  *slog.Logger
	mailbox chan saveJob
	done    chan struct{}

	mu        sync.Mutex
	submitted uint64
	completed uint64
	progress  chan struct{}
}

func newWriter(target Persister, logger *slog.Logger) *writer {
	w := &writer{
		target:   target,
		logger:   logger,
		mailbox:  make(chan saveJob, 1),
		done:     make(chan struct{}),
		progress: make(chan struct{}),
	}
	go w.run()
	return w
}

// submit queues snapshot for writing. Callers must serialize submits
// and must not submit after stop.
func (w *writer) submit(snapshot models.Snapshot) {
	w.mu.Lock()
	w.submitted++
	job := saveJob{seq: w.submitted, snapshot: snapshot}
	w.mu.Unlock()

	for {
		select {
		case w.mailbox <- job:
			return
		default:
		}
		select {
		case <-w.mailbox:
			metrics.PersistSuperseded.Inc()
		default:
		}
	}
}

func (w *writer) run() {
	defer close(w.done)
	for job := range w.mailbox {
		w.write(job)
	}
}

func (w *writer) write(job saveJob) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	start := time.Now()
	err := w.target.Save(ctx, job.snapshot)
	metrics.PersistDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PersistWrites.WithLabelValues("error").Inc()
	} else {
		metrics.PersistWrites.WithLabelValues("ok").Inc()
		w.logger.Debug("Snapshot persisted", "seq", job.seq, "duration_ms", time.Since(start).Milliseconds())
	}

	w.mu.Lock()
	w.completed = job.seq
	close(w.progress)
	w.progress = make(chan struct{})
	w.mu.Unlock()
}

// flush waits until everything submitted so far has been written or dropped
// in favor of a newer snapshot that has been written.
func (w *writer) flush(ctx context.Context) error {
	for {
		w.mu.Lock()
		if w.completed >= w.submitted {
			w.mu.Unlock()
			return nil
		}
		ch := w.progress
		w.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// stop closes the mailbox and waits for the goroutine to drain it.
func (w *writer) stop(ctx context.Context) error {
	close(w.mailbox)
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
