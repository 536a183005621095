package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grievance-labs/complaintbot/internal/domain"
)

func TestClient_CreateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/complaints", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"complaint_id":"AB12CD34","message":"Complaint created successfully"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	resp, err := c.Create(context.Background(), &domain.CreateComplaintRequest{
		Name:             "Jane Doe",
		PhoneNumber:      "5551234567",
		Email:            "jane@x.com",
		ComplaintDetails: "widget broken",
	})
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", resp.ComplaintID)
	assert.Equal(t, "Complaint created successfully", resp.Message)
}

func TestClient_CreateValidationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":{"phone_number":"phone number must contain only digits"}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Create(context.Background(), &domain.CreateComplaintRequest{})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "phone_number")
}

func TestClient_CreateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Create(context.Background(), &domain.CreateComplaintRequest{})
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestClient_GetSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/complaints/AB12CD34", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"complaint_id":"AB12CD34","name":"Jane Doe","phone_number":"5551234567","email":"jane@x.com","complaint_details":"widget broken","created_at":"2025-01-02T03:04:05Z"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	got, err := c.Get(context.Background(), "AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "2025-01-02T03:04:05Z", got.CreatedAt)
}

func TestClient_GetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Get(context.Background(), "ZZZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_ServiceUnreachable(t *testing.T) {
	// Point at a server that is already closed
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, time.Second)

	_, err := c.Get(context.Background(), "AB12CD34")
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	_, err = c.Create(context.Background(), &domain.CreateComplaintRequest{})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
