package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"spotBooker/internal/lib/logger/handlers/slogdiscard"
	"spotBooker/internal/models"
	"spotBooker/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	detailCalls int
	details     *models.SpotDetails
	detailsErr  error
	reviewErr   error
	writeErr    error
}

func (f *fakeStore) GetSpotDetails(_ context.Context, id int) (*models.SpotDetails, error) {
	f.detailCalls++
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}

	d := *f.details
	d.ID = id

	return &d, nil
}

func (f *fakeStore) CreateReview(_ context.Context, spotID, userID int, text string, stars int) (*models.Review, error) {
	if f.reviewErr != nil {
		return nil, f.reviewErr
	}

	return &models.Review{ID: 1, SpotID: spotID, UserID: userID, Review: text, Stars: stars}, nil
}

func (f *fakeStore) UpdateSpot(_ context.Context, userID int, spot models.Spot) (*models.Spot, error) {
	if f.writeErr != nil {
		return nil, f.writeErr
	}

	spot.OwnerID = userID

	return &spot, nil
}

func (f *fakeStore) DeleteSpot(context.Context, int, int) error {
	return f.writeErr
}

func setup(t *testing.T, store *fakeStore) (*Spots, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return New(slogdiscard.NewDiscardLogger(), rdb, store, time.Minute), mr
}

func testDetails() *models.SpotDetails {
	return &models.SpotDetails{
		Spot:          models.Spot{OwnerID: 1, Name: "App Academy", Price: 123},
		NumReviews:    2,
		AvgStarRating: 4.5,
		Owner:         &models.User{ID: 1, FirstName: "Demo", LastName: "Owner"},
	}
}

func TestGetSpotDetailsCaches(t *testing.T) {
	t.Parallel()

	store := &fakeStore{details: testDetails()}
	spots, mr := setup(t, store)

	first, err := spots.GetSpotDetails(context.Background(), 7)
	require.NoError(t, err)
	second, err := spots.GetSpotDetails(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, store.detailCalls)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, 4.5, second.AvgStarRating)
	require.NotNil(t, second.Owner)
	assert.Equal(t, "Owner", second.Owner.LastName)

	assert.True(t, mr.Exists(fmt.Sprintf(keySpotDetails, 7)))
	assert.Equal(t, time.Minute, mr.TTL(fmt.Sprintf(keySpotDetails, 7)))
}

func TestGetSpotDetailsNotFoundIsNotCached(t *testing.T) {
	t.Parallel()

	store := &fakeStore{detailsErr: storage.ErrSpotNotFound}
	spots, mr := setup(t, store)

	_, err := spots.GetSpotDetails(context.Background(), 99)
	assert.True(t, errors.Is(err, storage.ErrSpotNotFound))
	assert.False(t, mr.Exists(fmt.Sprintf(keySpotDetails, 99)))
}

func TestGetSpotDetailsSurvivesRedisOutage(t *testing.T) {
	t.Parallel()

	store := &fakeStore{details: testDetails()}
	spots, mr := setup(t, store)
	mr.Close()

	details, err := spots.GetSpotDetails(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, details.ID)
	assert.Equal(t, 1, store.detailCalls)
}

func TestCreateReviewInvalidates(t *testing.T) {
	t.Parallel()

	store := &fakeStore{details: testDetails()}
	spots, mr := setup(t, store)

	_, err := spots.GetSpotDetails(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, mr.Exists(fmt.Sprintf(keySpotDetails, 7)))

	review, err := spots.CreateReview(context.Background(), 7, 2, "Great stay", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, review.Stars)
	assert.False(t, mr.Exists(fmt.Sprintf(keySpotDetails, 7)))

	_, err = spots.GetSpotDetails(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, store.detailCalls)
}

func TestCreateReviewErrorKeepsCache(t *testing.T) {
	t.Parallel()

	store := &fakeStore{details: testDetails(), reviewErr: storage.ErrReviewExists}
	spots, mr := setup(t, store)

	_, err := spots.GetSpotDetails(context.Background(), 7)
	require.NoError(t, err)

	_, err = spots.CreateReview(context.Background(), 7, 2, "Again", 4)
	assert.True(t, errors.Is(err, storage.ErrReviewExists))
	assert.True(t, mr.Exists(fmt.Sprintf(keySpotDetails, 7)))
}

func TestSpotWritesInvalidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		writeErr error
		write    func(s *Spots) error
		dropped  bool
	}{
		{
			name: "Update",
			write: func(s *Spots) error {
				_, err := s.UpdateSpot(context.Background(), 1, models.Spot{ID: 7, Name: "Renamed"})
				return err
			},
			dropped: true,
		},
		{
			name: "Delete",
			write: func(s *Spots) error {
				return s.DeleteSpot(context.Background(), 7, 1)
			},
			dropped: true,
		},
		{
			name:     "Rejected update keeps entry",
			writeErr: storage.ErrNotSpotOwner,
			write: func(s *Spots) error {
				_, err := s.UpdateSpot(context.Background(), 2, models.Spot{ID: 7})
				return err
			},
		},
		{
			name:     "Rejected delete keeps entry",
			writeErr: storage.ErrNotSpotOwner,
			write: func(s *Spots) error {
				return s.DeleteSpot(context.Background(), 7, 2)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{details: testDetails(), writeErr: tc.writeErr}
			spots, mr := setup(t, store)

			_, err := spots.GetSpotDetails(context.Background(), 7)
			require.NoError(t, err)
			require.True(t, mr.Exists(fmt.Sprintf(keySpotDetails, 7)))

			err = tc.write(spots)
			if tc.writeErr != nil {
				assert.True(t, errors.Is(err, tc.writeErr))
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, !tc.dropped, mr.Exists(fmt.Sprintf(keySpotDetails, 7)))
		})
	}
}
