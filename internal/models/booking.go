package models

import "time"

type Booking struct {
	ID        int       `json:"id"`
	SpotID    int       `json:"spot_id"`
	UserID    int       `json:"user_id"`
	StartDate Date      `json:"start_date"`
	EndDate   Date      `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *User     `json:"user,omitempty"`
}
