// Package cache keeps spot details in redis in front of the primary storage.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"spotBooker/internal/config"
	"spotBooker/internal/lib/logger/sl"
	"spotBooker/internal/models"

	"github.com/redis/go-redis/v9"
)

// spot_details:{spot_id} -> JSON encoded models.SpotDetails
const keySpotDetails = "spot_details:%d"

type SpotStore interface {
	GetSpotDetails(ctx context.Context, id int) (*models.SpotDetails, error)
	CreateReview(ctx context.Context, spotID, userID int, text string, stars int) (*models.Review, error)
	UpdateSpot(ctx context.Context, userID int, spot models.Spot) (*models.Spot, error)
	DeleteSpot(ctx context.Context, spotID, userID int) error
}

type Spots struct {
	log  *slog.Logger
	rdb  *redis.Client
	next SpotStore
	ttl  time.Duration
}

func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Address})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}

func New(log *slog.Logger, rdb *redis.Client, next SpotStore, ttl time.Duration) *Spots {
	return &Spots{
		log:  log.With(slog.String("component", "cache/spots")),
		rdb:  rdb,
		next: next,
		ttl:  ttl,
	}
}

// GetSpotDetails serves from redis when possible. Redis failures fall through
// to the primary store; they never fail the request.
func (s *Spots) GetSpotDetails(ctx context.Context, id int) (*models.SpotDetails, error) {
	key := fmt.Sprintf(keySpotDetails, id)

	raw, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var details models.SpotDetails
		if err = json.Unmarshal(raw, &details); err == nil {
			return &details, nil
		}
		s.log.Warn("dropping undecodable cache entry", slog.String("key", key), sl.Err(err))
	case !errors.Is(err, redis.Nil):
		s.log.Warn("cache read failed", slog.String("key", key), sl.Err(err))
	}

	details, err := s.next.GetSpotDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(details)
	if err != nil {
		return details, nil
	}

	if err = s.rdb.Set(ctx, key, encoded, s.ttl).Err(); err != nil {
		s.log.Warn("cache write failed", slog.String("key", key), sl.Err(err))
	}

	return details, nil
}

// CreateReview changes the rating of the spot, so its cached details are dropped.
func (s *Spots) CreateReview(ctx context.Context, spotID, userID int, text string, stars int) (*models.Review, error) {
	review, err := s.next.CreateReview(ctx, spotID, userID, text, stars)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, spotID)

	return review, nil
}

func (s *Spots) UpdateSpot(ctx context.Context, userID int, spot models.Spot) (*models.Spot, error) {
	updated, err := s.next.UpdateSpot(ctx, userID, spot)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, spot.ID)

	return updated, nil
}

func (s *Spots) DeleteSpot(ctx context.Context, spotID, userID int) error {
	if err := s.next.DeleteSpot(ctx, spotID, userID); err != nil {
		return err
	}

	s.invalidate(ctx, spotID)

	return nil
}

func (s *Spots) invalidate(ctx context.Context, spotID int) {
	key := fmt.Sprintf(keySpotDetails, spotID)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		s.log.Warn("cache invalidation failed", slog.String("key", key), sl.Err(err))
	}
}
