package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const jobSeekerRatingPrefix = "job_seeker_rating:"

// RatingStore caches the average rating per job seeker. Entries carry no
// TTL; recording a new rating invalidates the entry explicitly.
type RatingStore struct {
	client *redis.Client
}

// NewRatingStore creates a new RatingStore instance
func NewRatingStore(client *redis.Client) *RatingStore {
	return &RatingStore{client: client}
}

func jobSeekerRatingKey(jobSeekerID uint) string {
	return jobSeekerRatingPrefix + strconv.FormatUint(uint64(jobSeekerID), 10)
}

// Get returns the cached average rating, reporting a miss with ok=false.
func (s *RatingStore) Get(ctx context.Context, jobSeekerID uint) (float64, bool, error) {
	val, err := s.client.Get(ctx, jobSeekerRatingKey(jobSeekerID)).Float64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read rating cache: %w", err)
	}
	return val, true, nil
}

// Set stores the average rating without expiry.
func (s *RatingStore) Set(ctx context.Context, jobSeekerID uint, average float64) error {
	if err := s.client.Set(ctx, jobSeekerRatingKey(jobSeekerID), average, 0).Err(); err != nil {
		return fmt.Errorf("failed to cache rating average: %w", err)
	}
	return nil
}

// Invalidate drops the cached average for the job seeker.
func (s *RatingStore) Invalidate(ctx context.Context, jobSeekerID uint) error {
	if err := s.client.Del(ctx, jobSeekerRatingKey(jobSeekerID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate rating cache: %w", err)
	}
	return nil
}
