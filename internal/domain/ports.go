package domain

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// HotelsAPI is the upstream source of hotels and room rates.
type HotelsAPI interface {
	GetHotels(ctx context.Context) ([]Hotel, error)
	GetRooms(ctx context.Context, hotelID string) ([]Room, error)
	RoomsURL(hotelID string) string
}
