package models

import (
	"time"

	"gorm.io/datatypes"
)

// AssessmentSubmission is the stored record of one completed assessment.
// Rows are only ever inserted.
type AssessmentSubmission struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	ReferenceID       string         `gorm:"size:64;uniqueIndex" json:"reference_id"`
	Name              string         `gorm:"type:text;not null" json:"name"`
	Email             string         `gorm:"type:text;not null;index" json:"email"`
	Phone             string         `gorm:"type:text" json:"phone"`
	ResultType        string         `gorm:"column:result_type;type:text;not null" json:"result_type"`
	LeadershipScore   int            `gorm:"column:leadership_score;not null" json:"leadership_score"`
	TeamBuildingScore int            `gorm:"column:team_building_score;not null" json:"team_building_score"`
	Answers           datatypes.JSON `gorm:"type:json" json:"answers,omitempty"`
	CreatedAt         time.Time      `gorm:"not null" json:"created_at"`
}

// TableName keeps the table name used by earlier deployments.
func (AssessmentSubmission) TableName() string {
	return "assessments"
}
