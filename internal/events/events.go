package events

import (
	"encoding/json"
	"strconv"
	"time"

	"spotBooker/internal/models"
)

const EventBookingCreated = "BookingCreated"

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type BookingCreatedPayload struct {
	BookingID int         `json:"booking_id"`
	SpotID    int         `json:"spot_id"`
	UserID    int         `json:"user_id"`
	StartDate models.Date `json:"start_date"`
	EndDate   models.Date `json:"end_date"`
}

// PartitionKey keeps every event of one spot in order.
func PartitionKey(spotID int) []byte {
	return []byte(strconv.Itoa(spotID))
}
