// internal/adapters/guestline/client.go
package guestline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hotel_search/internal/adapters/observability"
	"hotel_search/internal/domain"
)

const service = "guestline"

type Client struct {
	hotelsURL string
	roomsBase string
	hc        *http.Client
}

// New builds a client for the hotels list endpoint and the per-hotel rooms
// endpoint. A zero timeout means requests are never cut short.
func New(hotelsURL, roomsBase string, timeout time.Duration) (*Client, error) {
	if hotelsURL == "" {
		return nil, fmt.Errorf("hotels URL is required")
	}
	if roomsBase == "" {
		return nil, fmt.Errorf("rooms base URL is required")
	}
	return &Client{
		hotelsURL: hotelsURL,
		roomsBase: strings.TrimRight(roomsBase, "/"),
		hc:        &http.Client{Timeout: timeout},
	}, nil
}

// ---- Public API ----

func (c *Client) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	var out []domain.Hotel
	if err := c.get(ctx, "hotels", c.hotelsURL, hotelsSchema, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RoomsURL(hotelID string) string {
	return c.roomsBase + "/" + url.PathEscape(hotelID)
}

func (c *Client) GetRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	var out struct {
		Rooms []domain.Room `json:"rooms"`
	}
	if err := c.get(ctx, "rooms", c.RoomsURL(hotelID), roomsSchema, &out); err != nil {
		return nil, err
	}
	return out.Rooms, nil
}

// ---- Internals ----

var (
	ErrNotFound       = fmt.Errorf("guestline: %w", domain.ErrNotFound)
	ErrUnauthorized   = errors.New("guestline: unauthorized")
	ErrForbidden      = errors.New("guestline: forbidden")
	ErrInvalidPayload = errors.New("guestline: invalid payload")
)

// get performs a single GET, validates the body against schema and decodes
// it into out. There is no retry: every failure is returned to the caller.
func (c *Client) get(ctx context.Context, endpoint, u string, schema payloadSchema, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hotel-search/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(service, endpoint, 0, time.Since(start))
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if err := schema.check(body); err != nil {
			return err
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return nil

	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound

	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized

	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden

	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
