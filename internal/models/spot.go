package models

import "time"

type Spot struct {
	ID          int       `json:"id"`
	OwnerID     int       `json:"owner_id"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SpotDetails struct {
	Spot
	NumReviews    int     `json:"num_reviews"`
	AvgStarRating float64 `json:"avg_star_rating"`
	Owner         *User   `json:"owner"`
}

// SpotSummary is a spot as it appears in lists.
type SpotSummary struct {
	Spot
	AvgRating float64 `json:"avg_rating"`
}

// SpotFilter selects a page of spots. Nil bounds are not applied.
type SpotFilter struct {
	Page     int
	Size     int
	MinLat   *float64
	MaxLat   *float64
	MinLng   *float64
	MaxLng   *float64
	MinPrice *float64
	MaxPrice *float64
}

func (f SpotFilter) Offset() int {
	return (f.Page - 1) * f.Size
}
