package models

// User is the public identity of a party, as exposed next to its bookings and reviews.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
