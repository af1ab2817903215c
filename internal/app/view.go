package app

import (
	"context"

	"hotel_search/internal/domain"
)

// View owns the state of one mounted search screen: its store, the
// activation its load publishes through, and the memoized visible set.
type View struct {
	ID string

	store    *Store
	act      *Activation
	selector Selector
	done     chan struct{}
}

// ViewModel is what a renderer receives.
type ViewModel struct {
	Loading bool                    `json:"loading"`
	Error   *string                 `json:"error"`
	Filter  domain.FilterCriteria   `json:"filter"`
	Hotels  []domain.HotelWithRooms `json:"hotels"`
}

// FilterEdits holds the inputs a user changed. Nil fields are untouched.
type FilterEdits struct {
	Rating   *domain.IntInput
	Adults   *domain.IntInput
	Children *domain.IntInput
}

// Mount creates a view and starts its single data load in the background.
// ctx bounds the in-flight requests; it is not tied to the view's lifetime.
func Mount(ctx context.Context, id string, o *Orchestrator, filter domain.FilterCriteria) *View {
	store := NewStore(InitialState(filter))
	v := &View{
		ID:    id,
		store: store,
		act:   Activate(store),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(v.done)
		o.Run(ctx, v.act)
	}()
	return v
}

// Unmount deactivates the view. A load still in flight keeps running but
// its results are discarded, and filter edits are ignored from now on.
func (v *View) Unmount() { v.act.Deactivate() }

func (v *View) Mounted() bool { return v.act.Active() }

// Done is closed once the load has finished.
func (v *View) Done() <-chan struct{} { return v.done }

func (v *View) Wait(ctx context.Context) error {
	select {
	case <-v.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ApplyFilter dispatches the edits in rating, adults, children order.
func (v *View) ApplyFilter(e FilterEdits) {
	if e.Rating != nil {
		v.act.Publish(SetFilterRating{Value: *e.Rating})
	}
	if e.Adults != nil {
		v.act.Publish(SetFilterAdults{Value: *e.Adults})
	}
	if e.Children != nil {
		v.act.Publish(SetFilterChildren{Value: *e.Children})
	}
}

func (v *View) State() State { return v.store.Snapshot() }

func (v *View) Render() ViewModel {
	s := v.store.Snapshot()
	return ViewModel{
		Loading: s.Loading,
		Error:   s.Error,
		Filter:  s.Filter,
		Hotels:  v.selector.Select(s),
	}
}
