package app

import "hotel_search/internal/domain"

// LoadHotelsFailed is the only pipeline error a consumer ever sees.
const LoadHotelsFailed = "Failed to load hotels data"

type State struct {
	Loading    bool
	Error      *string
	Hotels     []domain.Hotel
	HotelRooms domain.HotelRoomsIndex
	Filter     domain.FilterCriteria

	// Bumped each time the matching collection is replaced. Collections are
	// never mutated in place, so a revision identifies its contents.
	HotelsRev uint64
	RoomsRev  uint64
}

func InitialState(filter domain.FilterCriteria) State {
	return State{
		Loading:    true,
		Hotels:     []domain.Hotel{},
		HotelRooms: domain.HotelRoomsIndex{},
		Filter:     filter,
	}
}

// Action is a state transition request. The set of actions is closed.
type Action interface{ action() }

type SetHotelsData struct{ Hotels []domain.Hotel }

type SetHotelRoomsData struct{ Rooms domain.HotelRoomsIndex }

type SetError struct{ Message string }

type LoadingDone struct{}

type SetFilterRating struct{ Value domain.IntInput }

type SetFilterAdults struct{ Value domain.IntInput }

type SetFilterChildren struct{ Value domain.IntInput }

func (SetHotelsData) action()     {}
func (SetHotelRoomsData) action() {}
func (SetError) action()          {}
func (LoadingDone) action()       {}
func (SetFilterRating) action()   {}
func (SetFilterAdults) action()   {}
func (SetFilterChildren) action() {}

// Reduce returns the state after applying a. Only the targeted field
// changes; everything else is carried over. Unknown actions are ignored.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case LoadingDone:
		s.Loading = false
	case SetError:
		msg := a.Message
		s.Error = &msg
	case SetHotelsData:
		s.Hotels = a.Hotels
		s.HotelsRev++
	case SetHotelRoomsData:
		s.HotelRooms = a.Rooms
		s.RoomsRev++
	case SetFilterRating:
		s.Filter.Rating = a.Value
	case SetFilterAdults:
		s.Filter.Adults = a.Value
	case SetFilterChildren:
		s.Filter.Children = a.Value
	}
	return s
}
