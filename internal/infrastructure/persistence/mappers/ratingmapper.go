package mappers

import (
	"github.com/rawad-inc/rawad/internal/domain/rating"
	"github.com/rawad-inc/rawad/internal/infrastructure/persistence/models"
)

// RatingMapper handles the conversion between Rating domain entities and
// persistence models.
type RatingMapper interface {
	ToModel(r *rating.Rating) *models.RatingModel
	ToDomain(model *models.RatingModel) (*rating.Rating, error)
}

type RatingMapperImpl struct{}

// NewRatingMapper creates a new RatingMapper.
func NewRatingMapper() RatingMapper {
	return &RatingMapperImpl{}
}

func (m *RatingMapperImpl) ToModel(r *rating.Rating) *models.RatingModel {
	return &models.RatingModel{
		ID:          r.ID(),
		RaterID:     r.RaterID(),
		JobSeekerID: r.JobSeekerID(),
		Score:       r.Score(),
		Comment:     r.Comment(),
		CreatedAt:   r.CreatedAt().UnixMilli(),
	}
}

func (m *RatingMapperImpl) ToDomain(model *models.RatingModel) (*rating.Rating, error) {
	return rating.ReconstructRating(
		model.ID,
		model.RaterID,
		model.JobSeekerID,
		model.Score,
		model.Comment,
		millisToTime(model.CreatedAt),
	)
}
