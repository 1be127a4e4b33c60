// Package jobs runs the periodic background work: refreshing the cached blog
// feed and probing the booking backend.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/avstrong/stayhotel/internal/logger"
)

const jobTimeout = 30 * time.Second

type blogRefresher interface {
	Refresh(ctx context.Context) error
}

type ConnectivityChecker interface {
	IsConnected(ctx context.Context) bool
}

type Config struct {
	L             *logger.Logger
	BlogSchedule  string
	ProbeSchedule string
	Blog          blogRefresher
	Backend       func() ConnectivityChecker
	BaseContext   context.Context //nolint:containedctx
}

type Scheduler struct {
	l       *logger.Logger
	c       *cron.Cron
	ctx     context.Context //nolint:containedctx
	blog    blogRefresher
	backend func() ConnectivityChecker

	mu        sync.Mutex
	connected *bool
}

func New(conf Config) (*Scheduler, error) {
	ctx := conf.BaseContext
	if ctx == nil {
		ctx = context.Background()
	}

	s := &Scheduler{
		l:       conf.L,
		c:       cron.New(),
		ctx:     ctx,
		blog:    conf.Blog,
		backend: conf.Backend,
	}

	if conf.Blog != nil && conf.BlogSchedule != "" {
		if _, err := s.c.AddFunc(conf.BlogSchedule, s.RefreshBlog); err != nil {
			return nil, fmt.Errorf("schedule blog refresh %q: %w", conf.BlogSchedule, err)
		}
	}

	if conf.Backend != nil && conf.ProbeSchedule != "" {
		if _, err := s.c.AddFunc(conf.ProbeSchedule, s.ProbeBackend); err != nil {
			return nil, fmt.Errorf("schedule backend probe %q: %w", conf.ProbeSchedule, err)
		}
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.c.Start()
}

// Stop halts the scheduler and waits for running jobs up to ctx's deadline.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.c.Stop().Done():
	case <-ctx.Done():
		s.l.LogWarnf("Background jobs did not finish before shutdown: %v", ctx.Err())
	}
}

func (s *Scheduler) RefreshBlog() {
	ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
	defer cancel()

	if err := s.blog.Refresh(ctx); err != nil {
		s.l.LogErrorf("Blog refresh failed: %v", err.Error())
	}
}

// ProbeBackend logs only when connectivity changes.
func (s *Scheduler) ProbeBackend() {
	ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
	defer cancel()

	up := s.backend().IsConnected(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected != nil && *s.connected == up {
		return
	}

	if up {
		s.l.LogInfo("Booking backend is reachable")
	} else {
		s.l.LogErrorf("Booking backend is unreachable")
	}

	s.connected = &up
}

// Connected returns the last probe result; ok is false before the first probe.
func (s *Scheduler) Connected() (connected, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected == nil {
		return false, false
	}

	return *s.connected, true
}
