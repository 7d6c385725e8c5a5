package rating

import (
	"fmt"
	"time"
)

// Rating is a 1-5 score a user gives a job seeker. A rater can rate each
// job seeker at most once; the uniqueness is enforced by the store.
type Rating struct {
	id          uint
	raterID     uint
	jobSeekerID uint
	score       uint
	comment     string
	createdAt   time.Time
}

// NewRating creates a rating for a job seeker.
func NewRating(raterID, jobSeekerID uint, score uint, comment string) (*Rating, error) {
	if raterID == 0 {
		return nil, fmt.Errorf("rater ID is required")
	}
	if jobSeekerID == 0 {
		return nil, fmt.Errorf("job seeker ID is required")
	}
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	return &Rating{
		raterID:     raterID,
		jobSeekerID: jobSeekerID,
		score:       score,
		comment:     comment,
		createdAt:   time.Now(),
	}, nil
}

// ReconstructRating reconstructs a rating from persistence.
func ReconstructRating(id, raterID, jobSeekerID uint, score uint, comment string, createdAt time.Time) (*Rating, error) {
	if id == 0 {
		return nil, fmt.Errorf("rating ID cannot be zero")
	}
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	return &Rating{
		id:          id,
		raterID:     raterID,
		jobSeekerID: jobSeekerID,
		score:       score,
		comment:     comment,
		createdAt:   createdAt,
	}, nil
}

func (r *Rating) ID() uint             { return r.id }
func (r *Rating) RaterID() uint        { return r.raterID }
func (r *Rating) JobSeekerID() uint    { return r.jobSeekerID }
func (r *Rating) Score() uint          { return r.score }
func (r *Rating) Comment() string      { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }

// SetID assigns the database identity after the initial insert.
func (r *Rating) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rating ID already set")
	}
	if id == 0 {
		return fmt.Errorf("rating ID cannot be zero")
	}
	r.id = id
	return nil
}
