package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hotel_search/internal/adapters/observability"
	"hotel_search/internal/domain"
)

var ErrViewNotFound = fmt.Errorf("view: %w", domain.ErrNotFound)

type mounted struct {
	v        *View
	lastUsed time.Time
}

// ViewService mounts and unmounts views by id. Views are independent of
// each other; each runs its own load.
type ViewService struct {
	ctx      context.Context
	orch     *Orchestrator
	defaults domain.FilterCriteria

	mu    sync.RWMutex
	views map[string]*mounted
}

// NewViewService returns a service whose loads run under ctx.
func NewViewService(ctx context.Context, api domain.HotelsAPI, defaults domain.FilterCriteria) *ViewService {
	return &ViewService{
		ctx:      ctx,
		orch:     NewOrchestrator(api),
		defaults: defaults,
		views:    make(map[string]*mounted),
	}
}

func (s *ViewService) Open() *View {
	v := Mount(s.ctx, uuid.NewString(), s.orch, s.defaults)

	s.mu.Lock()
	s.views[v.ID] = &mounted{v: v, lastUsed: time.Now()}
	s.mu.Unlock()

	observability.MountedViews.Inc()
	log.Debug().Str("view", v.ID).Msg("view mounted")
	return v
}

// Get returns the view and marks it as used.
func (s *ViewService) Get(id string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.views[id]
	if !ok {
		return nil, ErrViewNotFound
	}
	m.lastUsed = time.Now()
	return m.v, nil
}

func (s *ViewService) Close(id string) error {
	s.mu.Lock()
	m, ok := s.views[id]
	delete(s.views, id)
	s.mu.Unlock()
	if !ok {
		return ErrViewNotFound
	}
	m.v.Unmount()
	observability.MountedViews.Dec()
	log.Debug().Str("view", id).Msg("view unmounted")
	return nil
}

// CloseAll unmounts every view.
func (s *ViewService) CloseAll() {
	s.mu.Lock()
	views := s.views
	s.views = make(map[string]*mounted)
	s.mu.Unlock()
	for _, m := range views {
		m.v.Unmount()
		observability.MountedViews.Dec()
	}
}

// ExpireIdle unmounts every view not used since cutoff and returns how
// many were removed.
func (s *ViewService) ExpireIdle(cutoff time.Time) int {
	s.mu.Lock()
	var idle []*View
	for id, m := range s.views {
		if m.lastUsed.Before(cutoff) {
			idle = append(idle, m.v)
			delete(s.views, id)
		}
	}
	s.mu.Unlock()

	for _, v := range idle {
		v.Unmount()
		observability.MountedViews.Dec()
		log.Debug().Str("view", v.ID).Msg("idle view expired")
	}
	return len(idle)
}

// RunJanitor expires views idle for longer than ttl until ctx is done.
// A zero ttl disables expiry.
func (s *ViewService) RunJanitor(ctx context.Context, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	tick := time.NewTicker(ttl / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tick.C:
			if n := s.ExpireIdle(now.Add(-ttl)); n > 0 {
				log.Info().Int("expired", n).Msg("idle views expired")
			}
		}
	}
}
