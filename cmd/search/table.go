package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"hotel_search/internal/domain"
)

// parseFilter turns flag values into filter criteria the same way the HTTP
// boundary does. Out of range numbers are clamped; anything else is an error.
func parseFilter(rating, adults, children string) (domain.FilterCriteria, error) {
	var f domain.FilterCriteria
	for _, fld := range []struct {
		name     string
		raw      string
		min, max int
		dst      *domain.IntInput
	}{
		{"rating", rating, domain.MinRating, domain.MaxRating, &f.Rating},
		{"adults", adults, domain.MinAdults, domain.MaxAdults, &f.Adults},
		{"children", children, domain.MinChildren, domain.MaxChildren, &f.Children},
	} {
		in := domain.ParseIntInput(fld.raw)
		if !in.Valid {
			return f, fmt.Errorf("--%s: %q is not a number", fld.name, fld.raw)
		}
		*fld.dst = in.Clamp(fld.min, fld.max)
	}
	return f, nil
}

// renderTable prints one row per visible room.
func renderTable(w io.Writer, hotels []domain.HotelWithRooms) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Hotel", "Stars", "Room", "Max adults", "Max children", "Max overall"})

	for _, h := range hotels {
		for _, r := range h.Rooms {
			overall := "-"
			if r.Occupancy.MaxOverall > 0 {
				overall = fmt.Sprint(r.Occupancy.MaxOverall)
			}
			t.AppendRow(table.Row{h.Name, string(h.StarRating), r.Name,
				r.Occupancy.MaxAdults, r.Occupancy.MaxChildren, overall})
		}
		t.AppendSeparator()
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d hotels", len(hotels))})

	t.SetStyle(table.StyleRounded)
	t.Render()
}
