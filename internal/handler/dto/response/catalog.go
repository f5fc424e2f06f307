package response

import (
	"miccheck-web/internal/domain/spot"
)

type SpotResponse struct {
	ID              int64  `json:"id"`
	ShowID          int64  `json:"showId"`
	ShowDate        string `json:"showDate"`
	ShowLabel       string `json:"showLabel,omitempty"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           string `json:"price"`
	SpotType        string `json:"spotType,omitempty"`
	MaxSlots        int    `json:"maxSlots"`
	IsFull          bool   `json:"isFull"`
	SpotsRemaining  int    `json:"spotsRemaining"`
}

type ShowResponse struct {
	ID    int64          `json:"id"`
	Date  string         `json:"date"`
	Label string         `json:"label,omitempty"`
	Spots []SpotResponse `json:"spots"`
}

func FromSpot(s spot.Spot) SpotResponse {
	return SpotResponse{
		ID:              s.ID,
		ShowID:          s.ShowID,
		ShowDate:        s.ShowDate,
		ShowLabel:       s.ShowLabel,
		Time:            s.Time,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		SpotType:        s.SpotType,
		MaxSlots:        s.MaxSlots,
		IsFull:          s.IsFull,
		SpotsRemaining:  s.SpotsRemaining,
	}
}

func FromSpots(spots []spot.Spot) []SpotResponse {
	out := make([]SpotResponse, len(spots))
	for i, s := range spots {
		out[i] = FromSpot(s)
	}
	return out
}

func FromShows(shows []spot.Show) []ShowResponse {
	out := make([]ShowResponse, len(shows))
	for i, sh := range shows {
		out[i] = ShowResponse{
			ID:    sh.ID,
			Date:  sh.Date,
			Label: sh.Label,
			Spots: FromSpots(sh.Spots),
		}
	}
	return out
}
