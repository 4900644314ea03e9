package utils

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	courseModels "serene/models/course"
	"serene/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupSweepDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "sweep.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&courseModels.Certificate{}))
	return db
}

func seedCertificateRow(t *testing.T, db *gorm.DB, fileURL string) {
	t.Helper()
	cert := courseModels.Certificate{
		EnrollmentID:      uuid.New(),
		UserID:            uuid.New(),
		CourseID:          uuid.New(),
		CertificateNumber: "CERT-2024-" + uuid.NewString()[:6],
		FileURL:           fileURL,
		IssuedAt:          time.Now(),
	}
	require.NoError(t, db.Create(&cert).Error)
}

func TestSweepReportsOrphansWithoutDeleting(t *testing.T) {
	db := setupSweepDB(t)
	store := storage.NewMemoryStore()
	yesterday := time.Now().Add(-24 * time.Hour)

	store.SeedObject("u1/certificate-CERT-2024-000001.html", []byte("<html>"), yesterday)
	store.SeedObject("u2/certificate-CERT-2024-000002.html", []byte("<html>"), yesterday)
	seedCertificateRow(t, db, store.PublicURL("u2/certificate-CERT-2024-000002.html"))

	orphans, err := SweepOrphanedCertificates(context.Background(), db, store, false)
	require.NoError(t, err)
	assert.Equal(t, 1, orphans)
	assert.Equal(t, 2, store.Len(), "report-only sweep must not delete anything")
}

func TestSweepDeletesOrphansWhenEnabled(t *testing.T) {
	db := setupSweepDB(t)
	store := storage.NewMemoryStore()
	yesterday := time.Now().Add(-24 * time.Hour)

	store.SeedObject("u1/certificate-CERT-2024-000001.html", []byte("<html>"), yesterday)
	store.SeedObject("u2/certificate-CERT-2024-000002.html", []byte("<html>"), yesterday)
	seedCertificateRow(t, db, store.PublicURL("u2/certificate-CERT-2024-000002.html"))

	orphans, err := SweepOrphanedCertificates(context.Background(), db, store, true)
	require.NoError(t, err)
	assert.Equal(t, 1, orphans)

	_, ok := store.Get("u1/certificate-CERT-2024-000001.html")
	assert.False(t, ok, "orphan should be gone")
	_, ok = store.Get("u2/certificate-CERT-2024-000002.html")
	assert.True(t, ok, "object backed by a row must survive")
}

func TestSweepSkipsObjectsStoredToday(t *testing.T) {
	db := setupSweepDB(t)
	store := storage.NewMemoryStore()

	require.NoError(t, store.Put(context.Background(), "u1/certificate-CERT-2024-000003.html", []byte("<html>"), "text/html"))

	orphans, err := SweepOrphanedCertificates(context.Background(), db, store, true)
	require.NoError(t, err)
	assert.Equal(t, 0, orphans, "fresh objects may belong to an issuance in flight")
	assert.Equal(t, 1, store.Len())
}
