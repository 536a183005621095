package service

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grievance-labs/complaintbot/internal/domain"
	"github.com/grievance-labs/complaintbot/internal/repository"
)

func newTestService(t *testing.T) *ComplaintService {
	svc, _ := newTestServiceWithDB(t)
	return svc
}

func newTestServiceWithDB(t *testing.T) (*ComplaintService, *repository.DB) {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "complaints.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewComplaintService(repository.NewComplaintRepository(db), zap.NewNop()), db
}

func validRequest() *domain.CreateComplaintRequest {
	return &domain.CreateComplaintRequest{
		Name:             "Jane Doe",
		PhoneNumber:      "5551234567",
		Email:            "jane@example.com",
		ComplaintDetails: "broken widget",
	}
}

func TestComplaintService_CreateAndGetRoundTrip(t *testing.T) {
	svc := newTestService(t)
	start := time.Now().UTC().Truncate(time.Second)

	resp, err := svc.Create(validRequest())
	require.NoError(t, err)
	assert.Len(t, resp.ComplaintID, 8)
	assert.Equal(t, strings.ToUpper(resp.ComplaintID), resp.ComplaintID)
	assert.Equal(t, "Complaint created successfully", resp.Message)

	got, err := svc.Get(resp.ComplaintID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "5551234567", got.PhoneNumber)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "broken widget", got.ComplaintDetails)

	createdAt, err := time.Parse(time.RFC3339, got.CreatedAt)
	require.NoError(t, err)
	assert.False(t, createdAt.Before(start), "created_at %v precedes test start %v", createdAt, start)
}

func TestComplaintService_PhoneValidation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"ten digits", "5551234567", true},
		{"eleven digits", "15551234567", true},
		{"twelve digits", "915551234567", true},
		{"nine digits", "555123456", false},
		{"thirteen digits", "5551234567890", false},
		{"contains letter", "555123456a", false},
		{"contains dash", "555-123-4567", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.PhoneNumber = tt.phone

			resp, err := svc.Create(req)
			if tt.valid {
				require.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, "phone_number")
			assert.Nil(t, resp)
		})
	}
}

func TestComplaintService_EmailValidation(t *testing.T) {
	svc := newTestService(t)

	req := validRequest()
	req.Email = "not-an-email"

	_, err := svc.Create(req)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
}

func TestComplaintService_InvalidInputPersistsNothing(t *testing.T) {
	svc, db := newTestServiceWithDB(t)

	req := validRequest()
	req.PhoneNumber = "bad"
	_, err := svc.Create(req)
	require.Error(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM complaints`).Scan(&count))
	assert.Zero(t, count)
}

func TestComplaintService_UniqueIDs(t *testing.T) {
	svc := newTestService(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		resp, err := svc.Create(validRequest())
		require.NoError(t, err)
		assert.False(t, seen[resp.ComplaintID], "duplicate id %s", resp.ComplaintID)
		seen[resp.ComplaintID] = true
	}
}

func TestComplaintService_GetNormalizesCase(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Create(validRequest())
	require.NoError(t, err)

	got, err := svc.Get(strings.ToLower(resp.ComplaintID))
	require.NoError(t, err)
	assert.Equal(t, resp.ComplaintID, got.ComplaintID)
}

func TestComplaintService_GetMissing(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get("ZZZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
