package certificate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceAllocatorFormatsAndAdvances(t *testing.T) {
	db := setupTestDB(t)
	allocator := NewSequenceAllocator(db)

	year := time.Now().Year()
	for i := 1; i <= 5; i++ {
		number, err := allocator.Next(context.Background())
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("CERT-%d-%06d", year, i), number)
	}
}

func TestSequenceAllocatorNeverRepeats(t *testing.T) {
	db := setupTestDB(t)
	allocator := NewSequenceAllocator(db)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		number, err := allocator.Next(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^CERT-\d{4}-\d{6}$`), number)
		assert.False(t, seen[number], "number %s allocated twice", number)
		seen[number] = true
	}
}

func TestRemoteAllocator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"certificate_number":"CERT-2024-000123"}`)
	}))
	defer server.Close()

	allocator := NewRemoteAllocator(server.URL)
	number, err := allocator.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "CERT-2024-000123", number)
}

func TestRemoteAllocatorRejectsBadResponses(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewRemoteAllocator(server.URL).Next(context.Background())
		assert.Error(t, err)
	})

	t.Run("empty number", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"certificate_number":""}`)
		}))
		defer server.Close()

		_, err := NewRemoteAllocator(server.URL).Next(context.Background())
		assert.Error(t, err)
	})
}
