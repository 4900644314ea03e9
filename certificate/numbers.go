package certificate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	courseModels "serene/models/course"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"
)

// NumberAllocator hands out globally unique certificate numbers. Allocation
// must be atomic; a number, once returned, is never returned again.
type NumberAllocator interface {
	Next(ctx context.Context) (string, error)
}

// SequenceAllocator allocates numbers from a per-year counter row in the
// database, formatted as CERT-<year>-<6 digits>.
type SequenceAllocator struct {
	db *gorm.DB
}

func NewSequenceAllocator(db *gorm.DB) *SequenceAllocator {
	return &SequenceAllocator{db: db}
}

func (a *SequenceAllocator) Next(ctx context.Context) (string, error) {
	year := time.Now().Year()

	var value int64
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Seed the year's counter row if it is not there yet. A concurrent
		// seed is fine; the duplicate is simply ignored.
		seed := tx.Where(courseModels.CertificateSequence{Year: year}).
			FirstOrCreate(&courseModels.CertificateSequence{Year: year})
		if seed.Error != nil && !errors.Is(seed.Error, gorm.ErrDuplicatedKey) {
			return seed.Error
		}

		// The UPDATE takes a row lock held until commit, serializing
		// concurrent allocations on the same counter.
		res := tx.Model(&courseModels.CertificateSequence{}).
			Where("year = ?", year).
			UpdateColumn("last_value", gorm.Expr("last_value + 1"))
		if res.Error != nil {
			return res.Error
		}

		var seq courseModels.CertificateSequence
		if err := tx.First(&seq, "year = ?", year).Error; err != nil {
			return err
		}
		value = seq.LastValue
		return nil
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("CERT-%d-%06d", year, value), nil
}

// RemoteAllocator fetches numbers from an external allocator service. The
// service owns atomicity and uniqueness; this client only reports failures.
type RemoteAllocator struct {
	client *resty.Client
	url    string
}

func NewRemoteAllocator(url string) *RemoteAllocator {
	return &RemoteAllocator{client: resty.New(), url: url}
}

func (a *RemoteAllocator) Next(ctx context.Context) (string, error) {
	resp, err := a.client.R().SetContext(ctx).Post(a.url)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("allocator returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var body struct {
		CertificateNumber string `json:"certificate_number"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return "", fmt.Errorf("invalid allocator response: %v", err)
	}
	if body.CertificateNumber == "" {
		return "", errors.New("allocator returned an empty certificate number")
	}
	return body.CertificateNumber, nil
}
