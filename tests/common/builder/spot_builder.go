//go:build unit || e2e

package builder

import (
	"miccheck-web/internal/domain/spot"
	"miccheck-web/internal/infra/bookingapi"
)

type SpotBuilder struct {
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

func NewSpotBuilder() *SpotBuilder {
	return &SpotBuilder{
		ID:              1,
		ShowID:          10,
		ShowDate:        "2026-02-14",
		ShowLabel:       "Valentine's Open Mic",
		Time:            "19:30:00",
		DurationMinutes: 5,
		Price:           "150.00",
		SpotType:        "Standup",
		MaxSlots:        1,
		IsFull:          false,
		SpotsRemaining:  1,
	}
}

func (b *SpotBuilder) With(mutate func(*SpotBuilder)) *SpotBuilder {
	mutate(b)
	return b
}

func (b *SpotBuilder) WithID(id int64) *SpotBuilder {
	b.ID = id
	return b
}

func (b *SpotBuilder) WithPrice(price string) *SpotBuilder {
	b.Price = price
	return b
}

func (b *SpotBuilder) Full() *SpotBuilder {
	b.IsFull = true
	b.SpotsRemaining = 0
	return b
}

// Build methods
func (b *SpotBuilder) BuildDomain() spot.Spot {
	return spot.Spot{
		ID:              b.ID,
		ShowID:          b.ShowID,
		ShowDate:        b.ShowDate,
		ShowLabel:       b.ShowLabel,
		Time:            b.Time,
		DurationMinutes: b.DurationMinutes,
		Price:           b.Price,
		SpotType:        b.SpotType,
		MaxSlots:        b.MaxSlots,
		IsFull:          b.IsFull,
		SpotsRemaining:  b.SpotsRemaining,
	}
}

func (b *SpotBuilder) BuildSelectable(selected bool) spot.SelectableSpot {
	return spot.SelectableSpot{Spot: b.BuildDomain(), Selected: selected}
}

func (b *SpotBuilder) BuildDTO() bookingapi.SpotDTO {
	return bookingapi.SpotDTO{
		ID:              b.ID,
		ShowID:          b.ShowID,
		ShowDate:        b.ShowDate,
		ShowLabel:       b.ShowLabel,
		Time:            b.Time,
		DurationMinutes: b.DurationMinutes,
		Price:           b.Price,
		SpotType:        b.SpotType,
		MaxSlots:        b.MaxSlots,
		IsFull:          b.IsFull,
		SpotsRemaining:  b.SpotsRemaining,
	}
}

// Spots builds n consecutive spots priced at price, ids starting at 1.
func Spots(n int, price string) []spot.Spot {
	spots := make([]spot.Spot, n)
	for i := range spots {
		spots[i] = NewSpotBuilder().WithID(int64(i + 1)).WithPrice(price).BuildDomain()
	}
	return spots
}
