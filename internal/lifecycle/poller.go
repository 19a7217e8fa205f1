package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"stepify-cli/internal/model"
)

const (
	DefaultInterval    = 3 * time.Second
	DefaultSettleDelay = 2 * time.Second
)

// ErrStopped reports that the poll loop was torn down externally. It is a
// lifecycle signal, not a user-visible failure.
var ErrStopped = errors.New("polling stopped")

// JobFailedError carries the server-reported failure for a job verbatim, so
// the surfaced message is exactly what the backend said.
type JobFailedError struct {
	Message string
}

func (e *JobFailedError) Error() string {
	return e.Message
}

// StatusFunc and ResultFunc are the two Gateway calls the poller needs,
// injected so the loop can be driven against fakes.
type (
	StatusFunc func(ctx context.Context, jobID string) (*model.Job, error)
	ResultFunc func(ctx context.Context, videoID string) (*model.ProcessedVideo, error)
)

// Poller drives one submitted job from Polling to a terminal state. Each
// status request is tagged with a generation number taken before it starts;
// teardown bumps the generation, so a response that lands after Stop (or
// after a newer observation) is discarded instead of mutating anything.
type Poller struct {
	status StatusFunc
	result ResultFunc

	Interval    time.Duration
	SettleDelay time.Duration

	// OnUpdate observes every accepted status snapshot.
	OnUpdate func(model.Job)

	generation atomic.Uint64
	stopOnce   sync.Once
	stopc      chan struct{}
}

func NewPoller(status StatusFunc, result ResultFunc) *Poller {
	return &Poller{
		status:      status,
		result:      result,
		Interval:    DefaultInterval,
		SettleDelay: DefaultSettleDelay,
		stopc:       make(chan struct{}),
	}
}

// Stop tears the loop down from outside, whatever state it is in. It is
// safe to call more than once and after Run has returned.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.generation.Add(1)
		close(p.stopc)
	})
}

// Run polls the job until a terminal state and, on completion, fetches the
// result after a short settle delay (final backend writes may still be
// landing when the status flips). Any Gateway failure on a tick aborts the
// loop and surfaces; a multi-minute job silently eating a backend outage
// would be worse than a visible failure the user can retry with `watch`.
func (p *Poller) Run(ctx context.Context, jobID, videoID string) (*model.ProcessedVideo, error) {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastStatus := model.JobStatus("")
	for {
		issued := p.generation.Load()
		job, err := p.status(ctx, jobID)
		if p.generation.Load() != issued {
			return nil, ErrStopped
		}
		if err != nil {
			return nil, fmt.Errorf("job status: %w", err)
		}
		if job == nil {
			// request was suppressed by a teardown race
			return nil, ErrStopped
		}
		if !model.IsKnownStatus(job.Status) {
			// an unrecognized vocabulary would otherwise poll forever:
			// every tick looks stale and no terminal state is ever reached
			return nil, fmt.Errorf("job %s reported unknown status %q", jobID, job.Status)
		}

		if model.CanTransition(lastStatus, job.Status) {
			lastStatus = job.Status
			if p.OnUpdate != nil {
				p.OnUpdate(*job)
			}

			switch job.Status {
			case model.StatusCompleted:
				return p.fetchResult(ctx, *job, videoID)
			case model.StatusFailed:
				return nil, &JobFailedError{Message: job.FailureMessage()}
			}
		}
		// a non-transitionable snapshot is stale; keep the last accepted state

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.stopc:
			return nil, ErrStopped
		case <-ticker.C:
		}
	}
}

func (p *Poller) fetchResult(ctx context.Context, job model.Job, fallbackVideoID string) (*model.ProcessedVideo, error) {
	delay := p.SettleDelay
	if delay < 0 {
		delay = 0
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.stopc:
			return nil, ErrStopped
		case <-timer.C:
		}
	}

	videoID := job.VideoID
	if videoID == "" {
		videoID = fallbackVideoID
	}
	result, err := p.result(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("fetch result: %w", err)
	}
	if result == nil {
		return nil, ErrStopped
	}
	return result, nil
}
