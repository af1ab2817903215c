package domain

import (
	"strconv"
	"strings"
)

// IntInput is a numeric filter value as typed by a user. It may be
// temporarily invalid, e.g. while a number field is cleared.
type IntInput struct {
	N     int
	Valid bool
}

func Int(n int) IntInput { return IntInput{N: n, Valid: true} }

func ParseIntInput(s string) IntInput {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return IntInput{}
	}
	return Int(n)
}

// Clamp bounds a valid input to [min, max]. Invalid inputs are returned as is.
func (in IntInput) Clamp(min, max int) IntInput {
	if !in.Valid {
		return in
	}
	if in.N < min {
		return Int(min)
	}
	if in.N > max {
		return Int(max)
	}
	return in
}

func (in IntInput) MarshalJSON() ([]byte, error) {
	if !in.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(in.N)), nil
}

type FilterCriteria struct {
	Rating   IntInput `json:"rating"`   // 1..5, inclusive floor
	Adults   IntInput `json:"adults"`   // >= 1
	Children IntInput `json:"children"` // >= 0
}

// Input bounds used by the filter controls.
const (
	MinRating   = 1
	MaxRating   = 5
	MinAdults   = 1
	MaxAdults   = 10
	MinChildren = 0
	MaxChildren = 10
)

func DefaultFilter() FilterCriteria {
	return FilterCriteria{Rating: Int(3), Adults: Int(2), Children: Int(0)}
}

func (f FilterCriteria) Valid() bool {
	return f.Rating.Valid && f.Adults.Valid && f.Children.Valid
}
