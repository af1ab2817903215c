package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"hotel_search/internal/adapters/observability"
	"hotel_search/internal/domain"
)

// Activation is the handle an orchestrator publishes through. Once
// Deactivate returns, no further action reaches the underlying dispatcher.
type Activation struct {
	mu     sync.Mutex
	active bool
	to     Dispatcher
}

func Activate(to Dispatcher) *Activation {
	return &Activation{active: true, to: to}
}

// Publish forwards a to the dispatcher and reports whether it did.
func (a *Activation) Publish(act Action) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.active {
		return false
	}
	a.to.Dispatch(act)
	return true
}

func (a *Activation) Deactivate() {
	a.mu.Lock()
	a.active = false
	a.mu.Unlock()
}

func (a *Activation) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

type Orchestrator struct {
	api domain.HotelsAPI
}

func NewOrchestrator(api domain.HotelsAPI) *Orchestrator {
	return &Orchestrator{api: api}
}

// Run performs one end-to-end load: the hotels list first, then the rooms
// of every hotel concurrently. LoadingDone is always the last action
// published, on every path.
func (o *Orchestrator) Run(ctx context.Context, act *Activation) {
	err := o.load(ctx, act)
	observability.ObservePipeline(err)
	act.Publish(LoadingDone{})
}

func (o *Orchestrator) load(ctx context.Context, act *Activation) error {
	hotels, err := o.api.GetHotels(ctx)
	if err != nil {
		log.Error().Err(err).Msg("hotels fetch failed")
		act.Publish(SetError{Message: LoadHotelsFailed})
		return err
	}
	// publish now so hotel cards can render before rooms arrive
	act.Publish(SetHotelsData{Hotels: hotels})

	rooms := make([][]domain.Room, len(hotels))
	tasks := make([]func() error, len(hotels))
	for i, h := range hotels {
		i, id := i, h.ID
		tasks[i] = func() error {
			rs, err := o.api.GetRooms(ctx, id)
			observability.ObserveRoomFetch(err)
			if err != nil {
				// a failed hotel keeps an empty room list
				log.Error().Err(err).
					Str("hotel_id", id).
					Str("url", o.api.RoomsURL(id)).
					Str("err_type", observability.LabelErr(err)).
					Msg("rooms fetch failed")
				return err
			}
			rooms[i] = rs
			return nil
		}
	}
	errs := settleAll(tasks)

	index := make(domain.HotelRoomsIndex, len(hotels))
	failed := 0
	for i, h := range hotels {
		if errs[i] != nil {
			failed++
			// a failure never replaces a list fetched for the same id
			if _, ok := index[h.ID]; !ok {
				index[h.ID] = []domain.Room{}
			}
			continue
		}
		if rooms[i] == nil {
			rooms[i] = []domain.Room{}
		}
		index[h.ID] = rooms[i]
	}
	act.Publish(SetHotelRoomsData{Rooms: index})

	log.Info().
		Int("hotels", len(hotels)).
		Int("rooms_failed", failed).
		Msg("hotel data loaded")
	return nil
}
