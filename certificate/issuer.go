// Package certificate implements the certificate issuance workflow: given a
// completed enrollment it mints at most one certificate record, renders the
// printable document, stores it, and returns a stable reference. Repeated
// calls for the same enrollment always return the same record.
package certificate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	courseModels "serene/models/course"
	"serene/storage"

	"github.com/go-playground/locales/es"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier is told about first-time issuances so the student can be emailed.
// Notification is best-effort; failures never affect the issued certificate.
type Notifier interface {
	CertificateIssued(email, studentName, courseTitle, certificateNumber, fileURL string) error
}

// Issuer performs the issuance workflow. It holds no mutable state of its
// own; every invocation is an independent request/response unit.
type Issuer struct {
	db      *gorm.DB
	store   storage.ObjectStore
	numbers NumberAllocator
	notify  Notifier
}

func NewIssuer(db *gorm.DB, store storage.ObjectStore, numbers NumberAllocator, notify Notifier) *Issuer {
	return &Issuer{db: db, store: store, numbers: numbers, notify: notify}
}

// completion dates are printed in Spanish, e.g. "10 de marzo de 2024"
var esDates = es.New()

// Issue returns the certificate for the enrollment, creating it on first
// call. The certificate row insert is the commit point: its unique index on
// enrollment_id serializes concurrent calls, and the loser of that race
// reads back and returns the winner's record. The enrollment itself is never
// mutated. A document uploaded before a failed insert stays behind as an
// inert orphan; it is not reclaimed here.
func (iss *Issuer) Issue(ctx context.Context, enrollmentID uuid.UUID) (*courseModels.Certificate, error) {
	var enrollment courseModels.Enrollment
	err := iss.db.WithContext(ctx).
		Preload("Profile").
		Preload("Course").
		First(&enrollment, "id = ?", enrollmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load enrollment: %w", err)
	}

	if enrollment.Status != courseModels.EnrollmentCompleted {
		return nil, ErrCourseNotCompleted
	}

	if existing, err := iss.findExisting(ctx, enrollmentID); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	// Display fields come from the joined records only; the caller supplies
	// nothing but the enrollment id.
	studentName := enrollment.Profile.DisplayName()
	if studentName == "" {
		studentName = "Estudiante"
	}
	courseTitle := enrollment.Course.Title
	if courseTitle == "" {
		courseTitle = "Curso"
	}
	completedAt := time.Now()
	if enrollment.CompletedAt != nil {
		completedAt = *enrollment.CompletedAt
	}

	number, err := iss.numbers.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAllocator, err)
	}

	document, err := renderDocument(documentData{
		StudentName:       studentName,
		CourseTitle:       courseTitle,
		CompletionDate:    esDates.FmtDateLong(completedAt),
		CertificateNumber: number,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	key := fmt.Sprintf("%s/certificate-%s.html", enrollment.UserID, number)
	if err := iss.store.Put(ctx, key, document, "text/html"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	fileURL := iss.store.PublicURL(key)

	cert := &courseModels.Certificate{
		EnrollmentID:      enrollment.ID,
		UserID:            enrollment.UserID,
		CourseID:          enrollment.CourseID,
		CertificateNumber: number,
		FileURL:           fileURL,
	}
	if err := iss.db.WithContext(ctx).Create(cert).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent issuance; the winner's row is
			// the certificate. Our uploaded document stays orphaned.
			winner, ferr := iss.findExisting(ctx, enrollmentID)
			if ferr != nil {
				return nil, ferr
			}
			if winner != nil {
				return winner, nil
			}
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if iss.notify != nil && enrollment.Profile.Email != "" {
		email := enrollment.Profile.Email
		go func() {
			if err := iss.notify.CertificateIssued(email, studentName, courseTitle, number, fileURL); err != nil {
				log.Printf("certificate %s: notification email failed: %v", number, err)
			}
		}()
	}

	return cert, nil
}

func (iss *Issuer) findExisting(ctx context.Context, enrollmentID uuid.UUID) (*courseModels.Certificate, error) {
	var cert courseModels.Certificate
	err := iss.db.WithContext(ctx).First(&cert, "enrollment_id = ?", enrollmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load certificate record: %w", err)
	}
	return &cert, nil
}
