package models

import "time"

type Review struct {
	ID        int       `json:"id"`
	SpotID    int       `json:"spot_id"`
	UserID    int       `json:"user_id"`
	Review    string    `json:"review"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      *User     `json:"user,omitempty"`
}
