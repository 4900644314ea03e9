package course

import (
	"time"

	"serene/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment lifecycle states
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCancelled = "cancelled"
)

// Enrollment tracks a user's participation in a course. CompletedAt is set
// once, when the enrollment transitions to completed; the certificate issuer
// reads it but never writes back.
type Enrollment struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_enrollments_user_course"`
	CourseID    uuid.UUID  `json:"course_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_enrollments_user_course"`
	Status      string     `json:"status" gorm:"default:'active'"` // active, completed, cancelled
	EnrolledAt  time.Time  `json:"enrolled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Profile models.Profile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Course  Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.EnrolledAt.IsZero() {
		e.EnrolledAt = time.Now()
	}
	return nil
}
