package certificate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"serene/models"
	courseModels "serene/models/course"
	"serene/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One connection keeps sqlite write transactions serialized under the
	// concurrency tests.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&courseModels.Course{},
		&courseModels.Enrollment{},
		&courseModels.Certificate{},
		&courseModels.CertificateSequence{},
	))
	return db
}

func seedEnrollment(t *testing.T, db *gorm.DB, fullName, email, courseTitle, status string, completedAt *time.Time) courseModels.Enrollment {
	t.Helper()

	profile := models.Profile{FullName: fullName, Email: email}
	require.NoError(t, db.Create(&profile).Error)

	course := courseModels.Course{Title: courseTitle, Description: "desc", Published: true}
	require.NoError(t, db.Create(&course).Error)

	enrollment := courseModels.Enrollment{
		UserID:      profile.ID,
		CourseID:    course.ID,
		Status:      status,
		CompletedAt: completedAt,
	}
	require.NoError(t, db.Create(&enrollment).Error)
	return enrollment
}

func timePtr(t time.Time) *time.Time { return &t }

func newTestIssuer(db *gorm.DB) (*Issuer, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewIssuer(db, store, NewSequenceAllocator(db), nil), store
}

func TestIssueHappyPath(t *testing.T) {
	db := setupTestDB(t)
	issuer, store := newTestIssuer(db)

	completed := time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)
	enrollment := seedEnrollment(t, db, "Ana Martínez", "ana@example.com", "Programación con Python",
		courseModels.EnrollmentCompleted, timePtr(completed))

	cert, err := issuer.Issue(context.Background(), enrollment.ID)
	require.NoError(t, err)
	require.NotNil(t, cert)

	assert.Equal(t, enrollment.ID, cert.EnrollmentID)
	assert.Equal(t, enrollment.UserID, cert.UserID)
	assert.Equal(t, enrollment.CourseID, cert.CourseID)
	assert.Regexp(t, regexp.MustCompile(`^CERT-\d{4}-\d{6}$`), cert.CertificateNumber)
	assert.False(t, cert.IssuedAt.IsZero())

	key := fmt.Sprintf("%s/certificate-%s.html", enrollment.UserID, cert.CertificateNumber)
	assert.Equal(t, store.PublicURL(key), cert.FileURL)

	body, ok := store.Get(key)
	require.True(t, ok, "document must be stored under the student-namespaced key")
	html := string(body)
	assert.Contains(t, html, "Ana Martínez")
	assert.Contains(t, html, "Programación con Python")
	assert.Contains(t, html, "10 de marzo de 2024")
	assert.Contains(t, html, cert.CertificateNumber)
}

func TestIssueIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	issuer, store := newTestIssuer(db)

	enrollment := seedEnrollment(t, db, "Ana Martínez", "ana@example.com", "Programación con Python",
		courseModels.EnrollmentCompleted, timePtr(time.Now()))

	first, err := issuer.Issue(context.Background(), enrollment.ID)
	require.NoError(t, err)

	second, err := issuer.Issue(context.Background(), enrollment.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)
	assert.Equal(t, first.FileURL, second.FileURL)

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, 1, store.Len())
}

func TestIssueEnrollmentNotFound(t *testing.T) {
	db := setupTestDB(t)
	issuer, store := newTestIssuer(db)

	_, err := issuer.Issue(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	assert.Equal(t, 0, store.Len())
}

func TestIssueRequiresCompletedEnrollment(t *testing.T) {
	db := setupTestDB(t)
	issuer, store := newTestIssuer(db)

	for _, status := range []string{courseModels.EnrollmentActive, courseModels.EnrollmentCancelled} {
		enrollment := seedEnrollment(t, db, "Ana", "ana+"+status+"@example.com", "Curso "+status, status, nil)

		_, err := issuer.Issue(context.Background(), enrollment.ID)
		assert.ErrorIs(t, err, ErrCourseNotCompleted, "status %s", status)
	}

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	assert.Equal(t, 0, store.Len())
}

func TestIssueNameFallsBackToEmail(t *testing.T) {
	db := setupTestDB(t)
	issuer, store := newTestIssuer(db)

	enrollment := seedEnrollment(t, db, "", "estudiante@example.com", "Curso de Prueba",
		courseModels.EnrollmentCompleted, timePtr(time.Now()))

	cert, err := issuer.Issue(context.Background(), enrollment.ID)
	require.NoError(t, err)

	key := fmt.Sprintf("%s/certificate-%s.html", enrollment.UserID, cert.CertificateNumber)
	body, ok := store.Get(key)
	require.True(t, ok)
	assert.Contains(t, string(body), "estudiante@example.com")
}

func TestIssueConcurrentCallsYieldOneCertificate(t *testing.T) {
	db := setupTestDB(t)
	issuer, _ := newTestIssuer(db)

	enrollment := seedEnrollment(t, db, "Ana Martínez", "ana@example.com", "Programación con Python",
		courseModels.EnrollmentCompleted, timePtr(time.Now()))

	const callers = 8
	results := make([]*courseModels.Certificate, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = issuer.Issue(context.Background(), enrollment.ID)
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, results[i])
		assert.Equal(t, results[0].CertificateNumber, results[i].CertificateNumber)
		assert.Equal(t, results[0].FileURL, results[i].FileURL)
	}

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

// fixedAllocator always returns the same number; used to force storage-key
// collisions in tests.
type fixedAllocator struct{ number string }

func (a fixedAllocator) Next(ctx context.Context) (string, error) { return a.number, nil }

type failingAllocator struct{}

func (failingAllocator) Next(ctx context.Context) (string, error) {
	return "", errors.New("allocator unavailable")
}

func TestIssueFailsWhenStorageKeyTaken(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	issuer := NewIssuer(db, store, fixedAllocator{number: "CERT-2024-000042"}, nil)

	enrollment := seedEnrollment(t, db, "Ana", "ana@example.com", "Curso",
		courseModels.EnrollmentCompleted, timePtr(time.Now()))

	key := fmt.Sprintf("%s/certificate-CERT-2024-000042.html", enrollment.UserID)
	require.NoError(t, store.Put(context.Background(), key, []byte("occupied"), "text/html"))

	_, err := issuer.Issue(context.Background(), enrollment.ID)
	assert.ErrorIs(t, err, ErrStorage)

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Count(&count).Error)
	assert.EqualValues(t, 0, count, "no record may be created after a storage failure")
}

func TestIssueLoadFailureIsNotReportedAsSave(t *testing.T) {
	db := setupTestDB(t)
	issuer, _ := newTestIssuer(db)

	require.NoError(t, db.Migrator().DropTable(&courseModels.Enrollment{}))

	_, err := issuer.Issue(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPersistence, "a read failure is not a record-save failure")
	assert.Contains(t, err.Error(), "failed to load enrollment")
}

func TestIssueAllocatorFailure(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()
	issuer := NewIssuer(db, store, failingAllocator{}, nil)

	enrollment := seedEnrollment(t, db, "Ana", "ana@example.com", "Curso",
		courseModels.EnrollmentCompleted, timePtr(time.Now()))

	_, err := issuer.Issue(context.Background(), enrollment.ID)
	assert.ErrorIs(t, err, ErrAllocator)

	assert.Equal(t, 0, store.Len())
	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

// racingAllocator inserts a competing certificate row during allocation, so
// the issuer's subsequent insert hits the unique index on enrollment_id.
type racingAllocator struct {
	db           *gorm.DB
	enrollmentID uuid.UUID
	userID       uuid.UUID
	courseID     uuid.UUID
	winnerNumber string
}

func (a *racingAllocator) Next(ctx context.Context) (string, error) {
	winner := courseModels.Certificate{
		EnrollmentID:      a.enrollmentID,
		UserID:            a.userID,
		CourseID:          a.courseID,
		CertificateNumber: a.winnerNumber,
		FileURL:           "https://storage.test/certificates/winner.html",
	}
	if err := a.db.Create(&winner).Error; err != nil {
		return "", err
	}
	return "CERT-2024-000777", nil
}

func TestIssueLoserOfRaceReturnsWinnersRecord(t *testing.T) {
	db := setupTestDB(t)
	store := storage.NewMemoryStore()

	enrollment := seedEnrollment(t, db, "Ana", "ana@example.com", "Curso",
		courseModels.EnrollmentCompleted, timePtr(time.Now()))

	allocator := &racingAllocator{
		db:           db,
		enrollmentID: enrollment.ID,
		userID:       enrollment.UserID,
		courseID:     enrollment.CourseID,
		winnerNumber: "CERT-2024-000111",
	}
	issuer := NewIssuer(db, store, allocator, nil)

	cert, err := issuer.Issue(context.Background(), enrollment.ID)
	require.NoError(t, err, "losing the race must not surface an error")
	assert.Equal(t, "CERT-2024-000111", cert.CertificateNumber)
	assert.Equal(t, "https://storage.test/certificates/winner.html", cert.FileURL)

	var count int64
	require.NoError(t, db.Model(&courseModels.Certificate{}).Where("enrollment_id = ?", enrollment.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// The loser's uploaded document stays behind as an inert orphan.
	assert.Equal(t, 1, store.Len())
}

func TestCertificateNumbersAreUniqueAcrossEnrollments(t *testing.T) {
	db := setupTestDB(t)
	issuer, _ := newTestIssuer(db)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		enrollment := seedEnrollment(t, db, fmt.Sprintf("Student %d", i), fmt.Sprintf("s%d@example.com", i),
			fmt.Sprintf("Curso %d", i), courseModels.EnrollmentCompleted, timePtr(time.Now()))

		cert, err := issuer.Issue(context.Background(), enrollment.ID)
		require.NoError(t, err)
		assert.False(t, seen[cert.CertificateNumber], "certificate number %s reused", cert.CertificateNumber)
		seen[cert.CertificateNumber] = true
	}
}
