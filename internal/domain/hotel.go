package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

type Hotel struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Address1   string     `json:"address1"`
	Address2   string     `json:"address2"`
	Postcode   string     `json:"postcode"`
	StarRating StarRating `json:"starRating"`
	Images     []Image    `json:"images"`
}

// StarRating is transmitted as a string ("1".."5"); bare JSON numbers are
// accepted too and kept in their textual form.
type StarRating string

func (r *StarRating) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = StarRating(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = StarRating(n.String())
	return nil
}

type Image struct {
	URL string `json:"url"`
}

// Stars parses StarRating the lenient way: leading whitespace is skipped,
// one optional sign is honored and the leading run of digits is used
// ("4", " 4", "+4", "4.5" all give 4).
func (h Hotel) Stars() (int, bool) {
	s := strings.TrimSpace(string(h.StarRating))
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		digits++
		if digits > 9 {
			return 0, false
		}
	}
	if neg {
		n = -n
	}
	return n, digits > 0
}

// ImageURLs returns the image URLs in API order.
func (h Hotel) ImageURLs() []string {
	out := make([]string, 0, len(h.Images))
	for _, im := range h.Images {
		out = append(out, im.URL)
	}
	return out
}

type Room struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	LongDescription string    `json:"longDescription"`
	Occupancy       Occupancy `json:"occupancy"`
}

type Occupancy struct {
	MaxAdults   int `json:"maxAdults"`
	MaxChildren int `json:"maxChildren"`
	MaxOverall  int `json:"maxOverall,omitempty"` // 0 = no overall cap
}

// Fits reports whether a party of adults and children can stay in a room
// with this occupancy.
func (o Occupancy) Fits(adults, children int) bool {
	if o.MaxAdults < adults || o.MaxChildren < children {
		return false
	}
	return o.MaxOverall == 0 || o.MaxOverall >= adults+children
}

// HotelRoomsIndex maps a hotel id to its rooms in API order.
type HotelRoomsIndex map[string][]Room

// HotelWithRooms is one entry of the visible set.
type HotelWithRooms struct {
	Hotel
	Rooms []Room `json:"rooms"`
}
