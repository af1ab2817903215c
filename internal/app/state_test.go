package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hotel_search/internal/domain"
)

type unknownAction struct{}

func (unknownAction) action() {}

func TestInitialState(t *testing.T) {
	s := InitialState(domain.DefaultFilter())
	require.True(t, s.Loading)
	require.Nil(t, s.Error)
	require.Empty(t, s.Hotels)
	require.Empty(t, s.HotelRooms)
	require.Equal(t, domain.DefaultFilter(), s.Filter)
}

func TestReduce_ReplacesOnlyTargetedField(t *testing.T) {
	base := InitialState(domain.DefaultFilter())
	hotels := []domain.Hotel{{ID: "a", StarRating: "3"}}
	rooms := domain.HotelRoomsIndex{"a": {{ID: "r1"}}}

	s := Reduce(base, SetHotelsData{Hotels: hotels})
	require.Equal(t, hotels, s.Hotels)
	require.Equal(t, uint64(1), s.HotelsRev)
	require.True(t, s.Loading)
	require.Empty(t, s.HotelRooms)
	require.Zero(t, s.RoomsRev)

	s = Reduce(s, SetHotelRoomsData{Rooms: rooms})
	require.Equal(t, rooms, s.HotelRooms)
	require.Equal(t, uint64(1), s.RoomsRev)
	require.Equal(t, hotels, s.Hotels)

	s = Reduce(s, SetFilterRating{Value: domain.Int(5)})
	require.Equal(t, domain.Int(5), s.Filter.Rating)
	require.Equal(t, domain.Int(2), s.Filter.Adults)

	s = Reduce(s, SetFilterAdults{Value: domain.IntInput{}})
	require.False(t, s.Filter.Adults.Valid)
	require.Equal(t, domain.Int(0), s.Filter.Children)

	s = Reduce(s, SetFilterChildren{Value: domain.Int(3)})
	require.Equal(t, domain.Int(3), s.Filter.Children)
	require.Equal(t, domain.Int(5), s.Filter.Rating)

	s = Reduce(s, SetError{Message: "boom"})
	require.NotNil(t, s.Error)
	require.Equal(t, "boom", *s.Error)
	require.True(t, s.Loading)

	s = Reduce(s, LoadingDone{})
	require.False(t, s.Loading)
	require.Equal(t, "boom", *s.Error)

	// base was passed by value and must be untouched
	require.True(t, base.Loading)
	require.Nil(t, base.Error)
	require.Empty(t, base.Hotels)
}

func TestReduce_UnknownActionLeavesStateUnchanged(t *testing.T) {
	s := Reduce(InitialState(domain.DefaultFilter()), SetHotelsData{Hotels: []domain.Hotel{{ID: "a"}}})
	got := Reduce(s, unknownAction{})
	require.Equal(t, s, got)
}

func TestStore_DispatchInOrder(t *testing.T) {
	st := NewStore(InitialState(domain.DefaultFilter()))
	for i := 1; i <= 10; i++ {
		st.Dispatch(SetFilterAdults{Value: domain.Int(i)})
	}
	require.Equal(t, domain.Int(10), st.Snapshot().Filter.Adults)
}
