package app_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"hotel_search/internal/app"
	"hotel_search/internal/domain"
)

func TestSelectVisible_Scenario(t *testing.T) {
	r1 := room("r1", 2, 0, 2)
	hotels := []domain.Hotel{hotel("a", "3")}
	rooms := domain.HotelRoomsIndex{"a": {r1}}

	got := app.SelectVisible(loaded(hotels, rooms, filter(3, 2, 0)))
	want := []domain.HotelWithRooms{{Hotel: hotels[0], Rooms: []domain.Room{r1}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("visible set mismatch (-want +got):\n%s", diff)
	}

	// same data, five star floor
	require.Empty(t, app.SelectVisible(loaded(hotels, rooms, filter(5, 2, 0))))
}

func TestSelectVisible_Predicate(t *testing.T) {
	hotels := []domain.Hotel{
		hotel("one", "1"),
		hotel("three", "3"),
		hotel("four", "4"),
		hotel("five", "5"),
		hotel("bad", ""),
	}
	rooms := domain.HotelRoomsIndex{
		"one":   {room("o1", 4, 4, 0)},
		"three": {room("t1", 2, 0, 2), room("t2", 2, 2, 3), room("t3", 3, 1, 0)},
		"four":  {room("f1", 1, 0, 1)},
		"five":  {room("v1", 2, 1, 0), room("v2", 2, 1, 2)},
		"bad":   {room("b1", 9, 9, 0)},
	}

	got := app.SelectVisible(loaded(hotels, rooms, filter(3, 2, 1)))
	for _, h := range got {
		stars, ok := h.Stars()
		require.True(t, ok)
		require.GreaterOrEqual(t, stars, 3)
		require.NotEmpty(t, h.Rooms)
		for _, r := range h.Rooms {
			require.True(t, r.Occupancy.Fits(2, 1), "room %s", r.ID)
		}
	}

	ids := func(hs []domain.HotelWithRooms) []string {
		var out []string
		for _, h := range hs {
			for _, r := range h.Rooms {
				out = append(out, h.ID+"/"+r.ID)
			}
		}
		return out
	}
	// order follows the fetched sequences
	require.Equal(t, []string{"three/t2", "three/t3", "five/v1"}, ids(got))
}

func TestSelectVisible_EmptyWhileLoadingOrFailed(t *testing.T) {
	hotels := []domain.Hotel{hotel("a", "5")}
	rooms := domain.HotelRoomsIndex{"a": {room("r1", 2, 0, 0)}}

	s := app.InitialState(filter(1, 1, 0))
	s = app.Reduce(s, app.SetHotelsData{Hotels: hotels})
	s = app.Reduce(s, app.SetHotelRoomsData{Rooms: rooms})
	require.Empty(t, app.SelectVisible(s), "still loading")

	failed := app.Reduce(app.Reduce(app.InitialState(filter(1, 1, 0)), app.SetError{Message: app.LoadHotelsFailed}), app.LoadingDone{})
	require.Empty(t, app.SelectVisible(failed))
	require.NotNil(t, app.SelectVisible(failed), "empty, not nil, so it renders as []")
}

func TestSelectVisible_InvalidInputYieldsNothing(t *testing.T) {
	hotels := []domain.Hotel{hotel("a", "5")}
	rooms := domain.HotelRoomsIndex{"a": {room("r1", 2, 0, 0)}}
	s := loaded(hotels, rooms, filter(1, 1, 0))
	require.Len(t, app.SelectVisible(s), 1)

	for _, a := range []app.Action{
		app.SetFilterRating{Value: domain.ParseIntInput("")},
		app.SetFilterAdults{Value: domain.ParseIntInput("")},
		app.SetFilterChildren{Value: domain.ParseIntInput("x")},
	} {
		require.Empty(t, app.SelectVisible(app.Reduce(s, a)), "%T", a)
	}
}

func TestSelectVisible_MissingRoomsEntry(t *testing.T) {
	s := loaded([]domain.Hotel{hotel("a", "5")}, domain.HotelRoomsIndex{}, filter(1, 1, 0))
	require.Empty(t, app.SelectVisible(s))
}

func TestSelector_Memoizes(t *testing.T) {
	hotels := []domain.Hotel{hotel("a", "4"), hotel("b", "5")}
	rooms := domain.HotelRoomsIndex{
		"a": {room("r1", 2, 0, 0)},
		"b": {room("r2", 2, 2, 0)},
	}
	s := loaded(hotels, rooms, filter(3, 2, 0))

	var sel app.Selector
	first := sel.Select(s)
	second := sel.Select(s)
	require.Len(t, first, 2)
	require.Same(t, &first[0], &second[0], "unchanged inputs must return the cached slice")
	require.Equal(t, app.SelectVisible(s), first)

	// a filter change recomputes
	s2 := app.Reduce(s, app.SetFilterChildren{Value: domain.Int(1)})
	third := sel.Select(s2)
	require.Len(t, third, 1)
	require.Equal(t, "b", third[0].ID)

	// replacing rooms with equal content still recomputes: identity is the revision
	s3 := app.Reduce(s2, app.SetHotelRoomsData{Rooms: rooms})
	fourth := sel.Select(s3)
	require.Equal(t, third, fourth)
	require.NotSame(t, &third[0], &fourth[0])
}
