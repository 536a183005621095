package service

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grievance-labs/complaintbot/internal/domain"
	"github.com/grievance-labs/complaintbot/internal/repository"
)

// Accepted phone numbers are digits only, 10 to 12 characters.
var phonePattern = regexp.MustCompile(`^[0-9]{10,12}$`)

// maxIDAttempts bounds ID regeneration when the store reports a collision.
const maxIDAttempts = 3

// ComplaintService validates and creates complaint records
type ComplaintService struct {
	repo     *repository.ComplaintRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewComplaintService creates a new complaint service
func NewComplaintService(repo *repository.ComplaintRepository, logger *zap.Logger) *ComplaintService {
	return &ComplaintService{
		repo:     repo,
		validate: validator.New(),
		logger:   logger,
	}
}

// Create validates the request, assigns an ID and timestamp, and persists the
// complaint. Storage failures are logged and surfaced as domain.ErrInternal.
func (s *ComplaintService) Create(req *domain.CreateComplaintRequest) (*domain.CreateComplaintResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	complaint := &domain.Complaint{
		Name:             req.Name,
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		ComplaintDetails: req.ComplaintDetails,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		complaint.ComplaintID = newComplaintID()

		err := s.repo.Insert(complaint)
		if err == nil {
			s.logger.Info("complaint created",
				zap.String("complaint_id", complaint.ComplaintID))
			return &domain.CreateComplaintResponse{
				ComplaintID: complaint.ComplaintID,
				Message:     "Complaint created successfully",
			}, nil
		}
		if errors.Is(err, domain.ErrDuplicateID) {
			s.logger.Warn("complaint id collision, regenerating",
				zap.String("complaint_id", complaint.ComplaintID))
			continue
		}
		s.logger.Error("failed to insert complaint", zap.Error(err))
		return nil, domain.ErrInternal
	}

	s.logger.Error("complaint id generation exhausted",
		zap.Int("attempts", maxIDAttempts))
	return nil, domain.ErrInternal
}

// Get retrieves a complaint by ID. IDs are stored uppercase, so the lookup is
// normalized to uppercase before querying.
func (s *ComplaintService) Get(id string) (*domain.Complaint, error) {
	return s.repo.Get(strings.ToUpper(strings.TrimSpace(id)))
}

func (s *ComplaintService) validateRequest(req *domain.CreateComplaintRequest) error {
	if !phonePattern.MatchString(req.PhoneNumber) {
		return domain.NewValidationError("phone_number",
			"phone number must contain only digits and be 10 to 12 characters long")
	}
	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		return domain.NewValidationError("email", "email address is not well-formed")
	}
	return nil
}

// newComplaintID returns a short human-readable identifier: the first eight
// characters of a random UUID, uppercased.
func newComplaintID() string {
	return strings.ToUpper(uuid.New().String()[:8])
}
