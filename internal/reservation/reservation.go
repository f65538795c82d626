// Package reservation decides whether a proposed stay on a spot can be booked.
//
// The engine is a pure function of its inputs: it never reads or writes
// storage. Callers must run the read of existing bookings and the insert of
// an accepted one inside a single transaction.
package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"spotBooker/internal/models"
)

// Kind classifies a rejected booking.
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindForbiddenSelfBooking Kind = "forbidden_self_booking"
	KindInvalidDateRange     Kind = "invalid_date_range"
	KindDateConflict         Kind = "date_conflict"
)

const (
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
)

// ErrContract reports a caller defect, never a user-input condition.
var ErrContract = errors.New("reservation contract violation")

// Rejection is the failure variant of a Decision.
type Rejection struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (r *Rejection) Error() string {
	if len(r.Fields) == 0 {
		return fmt.Sprintf("%s: %s", r.Kind, r.Message)
	}

	fields := make([]string, 0, len(r.Fields))
	for _, f := range []string{FieldStartDate, FieldEndDate} {
		if msg, ok := r.Fields[f]; ok {
			fields = append(fields, f+": "+msg)
		}
	}

	return fmt.Sprintf("%s: %s (%s)", r.Kind, r.Message, strings.Join(fields, "; "))
}

// Decision is either accepted, carrying the booking to persist, or rejected.
type Decision struct {
	Booking   models.Booking
	Rejection *Rejection
}

func (d Decision) Accepted() bool {
	return d.Rejection == nil
}

type Engine struct {
	now func() time.Time
}

func New() *Engine {
	return &Engine{now: time.Now}
}

// NewWithClock returns an engine that takes "today" from now, read in UTC.
func NewWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Propose validates a stay of requesterID on spot from start to end against
// existing, the full set of bookings currently held for that spot.
// Checks run in order and the first failing one decides the rejection.
func (e *Engine) Propose(
	spot *models.Spot,
	requesterID int,
	start, end models.Date,
	existing []models.Booking,
) (Decision, error) {
	const op = "reservation.Propose"

	if spot == nil {
		return Decision{}, fmt.Errorf("%s: %w: nil spot", op, ErrContract)
	}
	if start.IsZero() || end.IsZero() {
		return Decision{}, fmt.Errorf("%s: %w: zero date", op, ErrContract)
	}

	if requesterID == spot.OwnerID {
		return reject(KindForbiddenSelfBooking, "you cannot book your own spot", nil), nil
	}

	if start.Before(models.DateOf(e.now().UTC())) {
		return reject(KindInvalidDateRange, "bad request", map[string]string{
			FieldStartDate: "start date cannot be in the past",
		}), nil
	}

	if !end.After(start) {
		return reject(KindInvalidDateRange, "bad request", map[string]string{
			FieldEndDate: "end date cannot be on or before start date",
		}), nil
	}

	fields := make(map[string]string)
	for _, b := range existing {
		if b.SpotID != spot.ID {
			continue
		}

		startHit, endHit := conflictingEnds(start, end, b.StartDate, b.EndDate)
		if startHit {
			fields[FieldStartDate] = "start date conflicts with an existing booking"
		}
		if endHit {
			fields[FieldEndDate] = "end date conflicts with an existing booking"
		}
	}

	if len(fields) > 0 {
		return reject(KindDateConflict, "spot is already booked for the specified dates", fields), nil
	}

	return Decision{
		Booking: models.Booking{
			SpotID:    spot.ID,
			UserID:    requesterID,
			StartDate: start,
			EndDate:   end,
		},
	}, nil
}

func reject(kind Kind, msg string, fields map[string]string) Decision {
	return Decision{Rejection: &Rejection{Kind: kind, Message: msg, Fields: fields}}
}
