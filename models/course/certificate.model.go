package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate is the durable proof of course completion. Rows are created
// exactly once per enrollment (enforced by the unique index on EnrollmentID)
// and are immutable afterwards; this service never updates or deletes them.
type Certificate struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	EnrollmentID      uuid.UUID `json:"enrollment_id" gorm:"type:uuid;not null;uniqueIndex"`
	UserID            uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	CourseID          uuid.UUID `json:"course_id" gorm:"type:uuid;not null;index"`
	CertificateNumber string    `json:"certificate_number" gorm:"not null;uniqueIndex"`
	FileURL           string    `json:"file_url" gorm:"not null"`
	IssuedAt          time.Time `json:"issued_at"`
	CreatedAt         time.Time `json:"created_at"`
}

func (Certificate) TableName() string {
	return "certificates"
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.IssuedAt.IsZero() {
		c.IssuedAt = time.Now()
	}
	return nil
}

// CertificateSequence backs the local certificate-number allocator: one row
// per year, advanced under a row lock so allocated values never repeat.
type CertificateSequence struct {
	Year      int       `json:"year" gorm:"primaryKey;autoIncrement:false"`
	LastValue int64     `json:"last_value" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CertificateSequence) TableName() string {
	return "certificate_sequences"
}
