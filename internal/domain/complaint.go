package domain

// Complaint is a filed grievance. Records are immutable after creation; the
// complaint ID is the sole lookup key.
type Complaint struct {
	ComplaintID      string `json:"complaint_id"`
	Name             string `json:"name"`
	PhoneNumber      string `json:"phone_number"`
	Email            string `json:"email"`
	ComplaintDetails string `json:"complaint_details"`
	CreatedAt        string `json:"created_at"`
}

// CreateComplaintRequest is the request to file a new complaint.
type CreateComplaintRequest struct {
	Name             string `json:"name" binding:"required"`
	PhoneNumber      string `json:"phone_number" binding:"required"`
	Email            string `json:"email" binding:"required"`
	ComplaintDetails string `json:"complaint_details" binding:"required"`
}

// CreateComplaintResponse acknowledges a filed complaint.
type CreateComplaintResponse struct {
	ComplaintID string `json:"complaint_id"`
	Message     string `json:"message"`
}
