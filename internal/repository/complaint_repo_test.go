package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grievance-labs/complaintbot/internal/domain"
)

func newTestRepo(t *testing.T) *ComplaintRepository {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "complaints.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewComplaintRepository(db)
}

func testComplaint(id string) *domain.Complaint {
	return &domain.Complaint{
		ComplaintID:      id,
		Name:             "Jane Doe",
		PhoneNumber:      "5551234567",
		Email:            "jane@example.com",
		ComplaintDetails: "broken widget",
		CreatedAt:        "2025-01-02T03:04:05Z",
	}
}

func TestComplaintRepository_InsertAndGet(t *testing.T) {
	repo := newTestRepo(t)

	want := testComplaint("AB12CD34")
	require.NoError(t, repo.Insert(want))

	got, err := repo.Get("AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestComplaintRepository_InsertDuplicate(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Insert(testComplaint("AB12CD34")))

	err := repo.Insert(testComplaint("AB12CD34"))
	assert.ErrorIs(t, err, domain.ErrDuplicateID)
}

func TestComplaintRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get("ZZZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewDB_MigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "complaints.db")

	db1, err := NewDB(path)
	require.NoError(t, err)
	require.NoError(t, NewComplaintRepository(db1).Insert(testComplaint("AB12CD34")))
	require.NoError(t, db1.Close())

	// Reopening must not recreate the table or lose rows
	db2, err := NewDB(path)
	require.NoError(t, err)
	defer db2.Close()

	got, err := NewComplaintRepository(db2).Get("AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
}
