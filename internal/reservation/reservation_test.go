package reservation

import (
	"errors"
	"testing"
	"time"

	"spotBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerID     = 1
	requesterID = 2
)

var today = time.Date(2025, time.June, 1, 15, 30, 0, 0, time.UTC)

func newEngine() *Engine {
	return NewWithClock(func() time.Time { return today })
}

func june(day int) models.Date {
	return models.NewDate(2025, time.June, day)
}

func booking(spotID, start, end int) models.Booking {
	return models.Booking{SpotID: spotID, UserID: 3, StartDate: june(start), EndDate: june(end)}
}

func TestPropose(t *testing.T) {
	t.Parallel()

	spot := &models.Spot{ID: 7, OwnerID: ownerID}

	testCases := []struct {
		name         string
		requesterID  int
		start, end   models.Date
		existing     []models.Booking
		expectedKind Kind
		fields       []string
	}{
		{
			name:        "Accepted without bookings",
			requesterID: requesterID,
			start:       june(10),
			end:         june(15),
		},
		{
			name:        "Accepted starting today",
			requesterID: requesterID,
			start:       june(1),
			end:         june(2),
		},
		{
			name:         "Owner cannot book own spot",
			requesterID:  ownerID,
			start:        june(10),
			end:          june(15),
			expectedKind: KindForbiddenSelfBooking,
		},
		{
			name:         "Owner check runs before date checks",
			requesterID:  ownerID,
			start:        models.NewDate(2025, time.May, 1),
			end:          models.NewDate(2025, time.April, 1),
			existing:     []models.Booking{booking(7, 1, 30)},
			expectedKind: KindForbiddenSelfBooking,
		},
		{
			name:         "Start yesterday",
			requesterID:  requesterID,
			start:        models.NewDate(2025, time.May, 31),
			end:          june(5),
			expectedKind: KindInvalidDateRange,
			fields:       []string{FieldStartDate},
		},
		{
			name:         "Start yesterday with conflicts",
			requesterID:  requesterID,
			start:        models.NewDate(2025, time.May, 31),
			end:          june(5),
			existing:     []models.Booking{booking(7, 1, 10)},
			expectedKind: KindInvalidDateRange,
			fields:       []string{FieldStartDate},
		},
		{
			name:         "End equals start",
			requesterID:  requesterID,
			start:        june(10),
			end:          june(10),
			expectedKind: KindInvalidDateRange,
			fields:       []string{FieldEndDate},
		},
		{
			name:         "End before start with conflicts",
			requesterID:  requesterID,
			start:        june(12),
			end:          june(10),
			existing:     []models.Booking{booking(7, 9, 13)},
			expectedKind: KindInvalidDateRange,
			fields:       []string{FieldEndDate},
		},
		{
			name:         "Shared boundary day conflicts",
			requesterID:  requesterID,
			start:        june(10),
			end:          june(15),
			existing:     []models.Booking{booking(7, 15, 20)},
			expectedKind: KindDateConflict,
			fields:       []string{FieldEndDate},
		},
		{
			name:        "Next day is free",
			requesterID: requesterID,
			start:       june(10),
			end:         june(15),
			existing:    []models.Booking{booking(7, 16, 20)},
		},
		{
			name:         "Start inside existing",
			requesterID:  requesterID,
			start:        june(12),
			end:          june(25),
			existing:     []models.Booking{booking(7, 10, 15)},
			expectedKind: KindDateConflict,
			fields:       []string{FieldStartDate},
		},
		{
			name:         "Proposal inside existing",
			requesterID:  requesterID,
			start:        june(11),
			end:          june(13),
			existing:     []models.Booking{booking(7, 10, 15)},
			expectedKind: KindDateConflict,
			fields:       []string{FieldStartDate, FieldEndDate},
		},
		{
			name:         "Proposal contains existing",
			requesterID:  requesterID,
			start:        june(5),
			end:          june(25),
			existing:     []models.Booking{booking(7, 10, 15)},
			expectedKind: KindDateConflict,
			fields:       []string{FieldStartDate, FieldEndDate},
		},
		{
			name:        "Fits the gap",
			requesterID: requesterID,
			start:       june(16),
			end:         june(19),
			existing:    []models.Booking{booking(7, 1, 5), booking(7, 10, 15), booking(7, 20, 25)},
		},
		{
			name:        "Bookings of other spots are ignored",
			requesterID: requesterID,
			start:       june(10),
			end:         june(15),
			existing:    []models.Booking{booking(8, 10, 15)},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			decision, err := newEngine().Propose(spot, tc.requesterID, tc.start, tc.end, tc.existing)
			require.NoError(t, err)

			if tc.expectedKind == "" {
				require.True(t, decision.Accepted(), "unexpected rejection: %v", decision.Rejection)
				assert.Equal(t, models.Booking{
					SpotID:    spot.ID,
					UserID:    tc.requesterID,
					StartDate: tc.start,
					EndDate:   tc.end,
				}, decision.Booking)
				return
			}

			require.False(t, decision.Accepted())
			assert.Equal(t, tc.expectedKind, decision.Rejection.Kind)
			assert.NotEmpty(t, decision.Rejection.Message)

			keys := make([]string, 0, len(decision.Rejection.Fields))
			for k := range decision.Rejection.Fields {
				keys = append(keys, k)
			}
			assert.ElementsMatch(t, tc.fields, keys)
		})
	}
}

func TestProposeDoesNotMutateExisting(t *testing.T) {
	t.Parallel()

	existing := []models.Booking{booking(7, 10, 15), booking(7, 20, 25)}
	snapshot := make([]models.Booking, len(existing))
	copy(snapshot, existing)

	_, err := newEngine().Propose(&models.Spot{ID: 7, OwnerID: ownerID}, requesterID, june(12), june(22), existing)
	require.NoError(t, err)

	assert.Equal(t, snapshot, existing)
}

func TestProposeIsIdempotent(t *testing.T) {
	t.Parallel()

	engine := newEngine()
	spot := &models.Spot{ID: 7, OwnerID: ownerID}
	existing := []models.Booking{booking(7, 10, 15)}

	for _, r := range [][2]int{{12, 14}, {16, 18}, {15, 17}} {
		first, err := engine.Propose(spot, requesterID, june(r[0]), june(r[1]), existing)
		require.NoError(t, err)
		second, err := engine.Propose(spot, requesterID, june(r[0]), june(r[1]), existing)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestProposeRejectsInvertedRangesRegardlessOfConflicts(t *testing.T) {
	t.Parallel()

	engine := newEngine()
	spot := &models.Spot{ID: 7, OwnerID: ownerID}
	existing := []models.Booking{booking(7, 1, 30)}

	for start := 2; start <= 20; start++ {
		for end := 2; end <= start; end++ {
			decision, err := engine.Propose(spot, requesterID, june(start), june(end), existing)
			require.NoError(t, err)
			require.False(t, decision.Accepted())
			assert.Equal(t, KindInvalidDateRange, decision.Rejection.Kind, "start=%d end=%d", start, end)
		}
	}
}

func TestProposeAcceptsAnyDisjointRange(t *testing.T) {
	t.Parallel()

	engine := newEngine()
	spot := &models.Spot{ID: 7, OwnerID: ownerID}

	for s := 2; s <= 28; s++ {
		for e := s + 1; e <= 29; e++ {
			for es := 2; es <= 28; es++ {
				for ee := es + 1; ee <= 29; ee++ {
					if Overlaps(june(s), june(e), june(es), june(ee)) {
						continue
					}

					decision, err := engine.Propose(spot, requesterID, june(s), june(e), []models.Booking{booking(7, es, ee)})
					require.NoError(t, err)
					require.True(t, decision.Accepted(), "[%d,%d] vs [%d,%d]", s, e, es, ee)
				}
			}
		}
	}
}

func TestProposeReadsTodayInUTC(t *testing.T) {
	t.Parallel()

	// 2025-06-02 13:30 at UTC+14 is still 2025-06-01 in UTC.
	kiritimati := time.FixedZone("UTC+14", 14*60*60)
	now := time.Date(2025, time.June, 2, 13, 30, 0, 0, kiritimati)
	e := NewWithClock(func() time.Time { return now })

	spot := &models.Spot{ID: 7, OwnerID: ownerID}

	d, err := e.Propose(spot, requesterID, june(1), june(3), nil)
	require.NoError(t, err)
	assert.True(t, d.Accepted())

	d, err = e.Propose(spot, requesterID, models.NewDate(2025, time.May, 31), june(3), nil)
	require.NoError(t, err)
	require.False(t, d.Accepted())
	assert.Equal(t, KindInvalidDateRange, d.Rejection.Kind)
}

func TestProposeContractViolations(t *testing.T) {
	t.Parallel()

	engine := newEngine()

	_, err := engine.Propose(nil, requesterID, june(10), june(12), nil)
	assert.True(t, errors.Is(err, ErrContract))

	_, err = engine.Propose(&models.Spot{ID: 1}, requesterID, models.Date{}, june(12), nil)
	assert.True(t, errors.Is(err, ErrContract))
}

func TestRejectionError(t *testing.T) {
	t.Parallel()

	r := &Rejection{
		Kind:    KindDateConflict,
		Message: "spot is already booked for the specified dates",
		Fields: map[string]string{
			FieldEndDate:   "end date conflicts with an existing booking",
			FieldStartDate: "start date conflicts with an existing booking",
		},
	}

	assert.Equal(t,
		"date_conflict: spot is already booked for the specified dates "+
			"(start_date: start date conflicts with an existing booking; end_date: end date conflicts with an existing booking)",
		r.Error())

	var target *Rejection
	assert.True(t, errors.As(error(r), &target))
}
