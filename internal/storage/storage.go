package storage

import "errors"

var (
	ErrSpotNotFound = errors.New("spot not found")
	ErrUserNotFound = errors.New("user not found")
	ErrNotSpotOwner = errors.New("spot belongs to another user")
	ErrReviewExists = errors.New("user already has a review for this spot")
)
