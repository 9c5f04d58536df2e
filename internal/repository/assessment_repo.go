package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kloppmigidemo-web/MVPAssessment3/internal/models"
)

// AssessmentRepository persists completed assessments. It is insert-only.
type AssessmentRepository interface {
	Create(ctx context.Context, submission *models.AssessmentSubmission) error
}

type assessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository constructs a repository backed by GORM.
func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, submission *models.AssessmentSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}
