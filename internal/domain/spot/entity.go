package spot

import (
	"errors"
)

var (
	ErrSpotNotFound = errors.New("spot not found")
	ErrSpotFull     = errors.New("spot is full")
)

// Spot is a bookable performance slot within a show. Owned by the booking backend; read-only here.
type Spot struct {
	ID              int64
	ShowID          int64
	ShowDate        string
	ShowLabel       string
	Time            string
	DurationMinutes int
	Price           string
	SpotType        string
	MaxSlots        int
	IsFull          bool
	SpotsRemaining  int
}

type Show struct {
	ID    int64
	Date  string
	Label string
	Spots []Spot
}

// GroupKey is the heading a spot is listed under: the show label, or the date when the show has no label.
func (s Spot) GroupKey() string {
	if s.ShowLabel != "" {
		return s.ShowLabel
	}
	return s.ShowDate
}

// SelectableSpot pairs a spot with the transient "chosen by the current visitor" flag.
type SelectableSpot struct {
	Spot
	Selected bool
}
