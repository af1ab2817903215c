package app_test

import (
	"context"
	"sync"

	"hotel_search/internal/app"
	"hotel_search/internal/domain"
)

// ---- fakes ----

type fakeAPI struct {
	hotels    []domain.Hotel
	hotelsErr error
	rooms     map[string][]domain.Room
	roomsErr  map[string]error

	// when set, the matching call blocks until the channel is closed
	hotelsGate chan struct{}
	roomsGate  chan struct{}

	mu          sync.Mutex
	roomsCalled []string
}

func (f *fakeAPI) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	if f.hotelsGate != nil {
		<-f.hotelsGate
	}
	if f.hotelsErr != nil {
		return nil, f.hotelsErr
	}
	return f.hotels, nil
}

func (f *fakeAPI) GetRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	f.mu.Lock()
	f.roomsCalled = append(f.roomsCalled, hotelID)
	f.mu.Unlock()
	if f.roomsGate != nil {
		<-f.roomsGate
	}
	if err := f.roomsErr[hotelID]; err != nil {
		return nil, err
	}
	return f.rooms[hotelID], nil
}

func (f *fakeAPI) RoomsURL(hotelID string) string { return "fake://rooms/" + hotelID }

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.roomsCalled)
}

// recorder remembers every dispatched action.
type recorder struct {
	mu      sync.Mutex
	actions []app.Action
}

func (r *recorder) Dispatch(a app.Action) {
	r.mu.Lock()
	r.actions = append(r.actions, a)
	r.mu.Unlock()
}

func (r *recorder) all() []app.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]app.Action(nil), r.actions...)
}

// ---- fixtures ----

func hotel(id, stars string) domain.Hotel {
	return domain.Hotel{ID: id, Name: "Hotel " + id, StarRating: domain.StarRating(stars)}
}

func room(id string, adults, children, overall int) domain.Room {
	return domain.Room{
		ID:        id,
		Name:      "Room " + id,
		Occupancy: domain.Occupancy{MaxAdults: adults, MaxChildren: children, MaxOverall: overall},
	}
}

func filter(rating, adults, children int) domain.FilterCriteria {
	return domain.FilterCriteria{Rating: domain.Int(rating), Adults: domain.Int(adults), Children: domain.Int(children)}
}

// loaded builds a state the way a finished load leaves it.
func loaded(hotels []domain.Hotel, rooms domain.HotelRoomsIndex, f domain.FilterCriteria) app.State {
	s := app.InitialState(f)
	s = app.Reduce(s, app.SetHotelsData{Hotels: hotels})
	s = app.Reduce(s, app.SetHotelRoomsData{Rooms: rooms})
	return app.Reduce(s, app.LoadingDone{})
}

func ptr[T any](v T) *T { return &v }
