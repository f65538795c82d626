package reservation

import (
	"time"

	"spotBooker/internal/models"
)

// BookingView is a booking shaped for a particular viewer.
// Owner-only fields are nil for everybody else.
type BookingView struct {
	ID        *int         `json:"id,omitempty"`
	SpotID    int          `json:"spot_id"`
	UserID    *int         `json:"user_id,omitempty"`
	StartDate models.Date  `json:"start_date"`
	EndDate   models.Date  `json:"end_date"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`
	UpdatedAt *time.Time   `json:"updated_at,omitempty"`
	User      *models.User `json:"user,omitempty"`
}

var (
	publicFields = []string{"spot_id", "start_date", "end_date"}
	ownerFields  = []string{"id", "spot_id", "user_id", "start_date", "end_date", "created_at", "updated_at", "user"}
)

// VisibleFields lists the booking fields exposed to a viewer.
func VisibleFields(isOwner bool) []string {
	src := publicFields
	if isOwner {
		src = ownerFields
	}

	out := make([]string, len(src))
	copy(out, src)

	return out
}

func Project(bookings []models.Booking, isOwner bool) []BookingView {
	views := make([]BookingView, 0, len(bookings))

	for _, b := range bookings {
		v := BookingView{
			SpotID:    b.SpotID,
			StartDate: b.StartDate,
			EndDate:   b.EndDate,
		}

		if isOwner {
			b := b
			v.ID = &b.ID
			v.UserID = &b.UserID
			v.CreatedAt = &b.CreatedAt
			v.UpdatedAt = &b.UpdatedAt
			v.User = b.User
		}

		views = append(views, v)
	}

	return views
}
