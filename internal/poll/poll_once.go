package poll

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"waitlist-engine/internal/boinord"
	"waitlist-engine/internal/domain"
	"waitlist-engine/internal/events"

	"go.uber.org/zap"
)

var ErrAlreadyRunning = errors.New("poll already running")

type Fetcher interface {
	FetchApartments(ctx context.Context, creds boinord.Credentials) (*domain.Apartments, error)
}

type Status struct {
	LastRunAt     string `json:"last_run_at"`
	LastOkAt      string `json:"last_ok_at"`
	LastError     string `json:"last_error"`
	LastErrorKind string `json:"last_error_kind"`
	Apartments    int    `json:"apartments"`
	LastChanges   int    `json:"changes"`
	Running       bool   `json:"running"`
}

type Result struct {
	Apartments *domain.Apartments
	Changes    []Change
}

// Poller fetches the configured account's positions and reports what moved
// since its previous successful fetch. The previous fetch lives in memory only.
type Poller struct {
	Fetcher     Fetcher
	Credentials func() (boinord.Credentials, error)
	Hub         *events.Hub
	Log         *zap.Logger

	running atomic.Bool
	status  atomic.Value // Status

	mu   sync.Mutex
	last *domain.Apartments
}

func (p *Poller) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

func (p *Poller) Status() Status {
	if st, ok := p.status.Load().(Status); ok {
		return st
	}
	return Status{}
}

func (p *Poller) Busy() bool { return p.running.Load() }

func (p *Poller) updateStatus(fn func(*Status)) {
	st := p.Status()
	fn(&st)
	p.status.Store(st)
}

func (p *Poller) PollOnce(ctx context.Context) (Result, error) {
	if !p.running.CompareAndSwap(false, true) {
		return Result{}, ErrAlreadyRunning
	}
	defer p.running.Store(false)

	log := p.logger()
	start := time.Now()
	p.updateStatus(func(st *Status) {
		st.Running = true
		st.LastRunAt = start.Format(time.RFC3339)
	})

	apts, kind, err := p.fetch(ctx)
	if err != nil {
		p.updateStatus(func(st *Status) {
			st.Running = false
			st.LastError = err.Error()
			st.LastErrorKind = kind
		})
		p.Hub.Publish(events.MakeEvent("", events.TypePollFailed, 1, map[string]any{
			"kind":  kind,
			"error": err.Error(),
		}))
		log.Warn("poll failed", zap.String("kind", kind), zap.Error(err))
		return Result{}, err
	}

	p.mu.Lock()
	changes := Diff(p.last, apts)
	p.last = apts
	p.mu.Unlock()

	for _, c := range changes {
		p.Hub.Publish(events.MakeEvent("", events.TypePositionChanged, 1, c))
	}
	p.Hub.Publish(events.MakeEvent("", events.TypePollOK, 1, map[string]any{
		"apartments": apts.Len(),
		"changes":    len(changes),
	}))

	now := time.Now().Format(time.RFC3339)
	p.updateStatus(func(st *Status) {
		st.Running = false
		st.LastOkAt = now
		st.LastError = ""
		st.LastErrorKind = ""
		st.Apartments = apts.Len()
		st.LastChanges = len(changes)
	})
	log.Info("poll ok",
		zap.Int("apartments", apts.Len()),
		zap.Int("changes", len(changes)),
		zap.Duration("took", time.Since(start)),
	)

	return Result{Apartments: apts, Changes: changes}, nil
}

// fetch also reports a short failure kind for status and events.
func (p *Poller) fetch(ctx context.Context) (*domain.Apartments, string, error) {
	creds, err := p.Credentials()
	if err != nil {
		return nil, "credentials", fmt.Errorf("resolve credentials: %w", err)
	}
	apts, err := p.Fetcher.FetchApartments(ctx, creds)
	if err != nil {
		if k, ok := boinord.KindOf(err); ok {
			return nil, k.String(), err
		}
		return nil, "unknown", err
	}
	return apts, "", nil
}
