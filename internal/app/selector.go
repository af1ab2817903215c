package app

import (
	"sync"

	"hotel_search/internal/adapters/observability"
	"hotel_search/internal/domain"
)

// SelectVisible derives the hotels a user should see: hotels at or above
// the rating floor, each carrying only the rooms that fit the requested
// party, and only if at least one such room exists. Nothing is visible
// while loading, after a load error, or while a filter input is invalid.
func SelectVisible(s State) []domain.HotelWithRooms {
	out := []domain.HotelWithRooms{}
	if s.Loading || s.Error != nil || !s.Filter.Valid() {
		return out
	}
	rating, adults, children := s.Filter.Rating.N, s.Filter.Adults.N, s.Filter.Children.N

	for _, h := range s.Hotels {
		if stars, ok := h.Stars(); !ok || stars < rating {
			continue
		}
		var rooms []domain.Room
		for _, r := range s.HotelRooms[h.ID] {
			if r.Occupancy.Fits(adults, children) {
				rooms = append(rooms, r)
			}
		}
		if len(rooms) == 0 {
			continue
		}
		out = append(out, domain.HotelWithRooms{Hotel: h, Rooms: rooms})
	}
	return out
}

type selectorKey struct {
	loading   bool
	hasErr    bool
	err       string
	hotelsRev uint64
	roomsRev  uint64
	filter    domain.FilterCriteria
}

func keyOf(s State) selectorKey {
	k := selectorKey{
		loading:   s.Loading,
		hotelsRev: s.HotelsRev,
		roomsRev:  s.RoomsRev,
		filter:    s.Filter,
	}
	if s.Error != nil {
		k.hasErr, k.err = true, *s.Error
	}
	return k
}

// Selector memoizes SelectVisible for one store. While the inputs are
// unchanged it returns the very same slice.
type Selector struct {
	mu    sync.Mutex
	valid bool
	key   selectorKey
	last  []domain.HotelWithRooms
}

func (m *Selector) Select(s State) []domain.HotelWithRooms {
	k := keyOf(s)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.valid && m.key == k {
		observability.ObserveSelector(true)
		return m.last
	}
	observability.ObserveSelector(false)
	m.last = SelectVisible(s)
	m.key, m.valid = k, true
	return m.last
}
