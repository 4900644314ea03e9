package course

import (
	"time"

	"serene/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseReview stores a student's rating and comment for a course. One review
// per (user, course); editing replaces the previous review in place.
type CourseReview struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_reviews_user_course"`
	CourseID  uuid.UUID `json:"course_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_user_course"`
	Rating    int       `json:"rating" gorm:"not null"` // 1-5
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Profile models.Profile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}

func (CourseReview) TableName() string {
	return "course_reviews"
}

func (r *CourseReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
