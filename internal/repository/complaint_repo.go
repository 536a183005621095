package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/grievance-labs/complaintbot/internal/domain"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ComplaintRepository handles complaint persistence
type ComplaintRepository struct {
	db *DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Insert persists a complaint. Returns domain.ErrDuplicateID when a complaint
// with the same ID already exists.
func (r *ComplaintRepository) Insert(complaint *domain.Complaint) error {
	_, err := r.db.Exec(`
		INSERT INTO complaints (complaint_id, name, phone_number, email, complaint_details, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, complaint.ComplaintID, complaint.Name, complaint.PhoneNumber,
		complaint.Email, complaint.ComplaintDetails, complaint.CreatedAt)

	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("insert complaint: %w", err)
	}

	return nil
}

// Get retrieves a complaint by ID. Returns domain.ErrNotFound when absent.
func (r *ComplaintRepository) Get(id string) (*domain.Complaint, error) {
	complaint := &domain.Complaint{}

	err := r.db.QueryRow(`
		SELECT complaint_id, name, phone_number, email, complaint_details, created_at
		FROM complaints WHERE complaint_id = ?
	`, id).Scan(&complaint.ComplaintID, &complaint.Name, &complaint.PhoneNumber,
		&complaint.Email, &complaint.ComplaintDetails, &complaint.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get complaint: %w", err)
	}

	return complaint, nil
}

func isDuplicateKey(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		switch serr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}
