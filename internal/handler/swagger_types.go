package handler

import (
	"time"

	"github.com/google/uuid"

	"petvault/internal/domain"
)

// Request and response shapes referenced by the swag annotations.

// --- Request Types ---

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"sam@example.com"`
	Password string `json:"password" binding:"required" example:"correct-horse-battery"`
	FullName string `json:"full_name" binding:"required" example:"Sam Rivera"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"sam@example.com"`
	Password string `json:"password" binding:"required" example:"correct-horse-battery"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreatePetRequest represents the create pet request body.
type CreatePetRequest struct {
	Name        string `json:"name" binding:"required" example:"Biscuit"`
	Species     string `json:"species" binding:"required" example:"dog"`
	Breed       string `json:"breed" example:"Beagle"`
	DateOfBirth string `json:"date_of_birth" example:"2019-04-12"`
}

// SharePetRequest represents the share pet request body.
type SharePetRequest struct {
	Email string         `json:"email" binding:"required" example:"alex@example.com"`
	Role  domain.PetRole `json:"role" binding:"required" example:"viewer"`
}

// ReviewItemsRequest represents the approve/reject request body.
type ReviewItemsRequest struct {
	ItemIDs []uuid.UUID `json:"item_ids" binding:"required"`
}

// UpdateItemRequest represents the edit extraction item request body.
type UpdateItemRequest struct {
	ModifiedData map[string]interface{} `json:"modified_data" binding:"required"`
}

// CreateRecordRequest represents the manual health record request body.
type CreateRecordRequest struct {
	Data map[string]interface{} `json:"data" binding:"required"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-01-15T10:30:00Z"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// DownloadURLResponse carries a time-limited link to a stored upload.
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url" example:"https://petvault-uploads.s3.amazonaws.com/pdf-import/pets/...?X-Amz-Signature=..."`
}

// EmergencyTokenResponse carries a newly issued emergency card token.
type EmergencyTokenResponse struct {
	Token string `json:"token" example:"3f0b6c1e9a7d4e2b8c5f1a0d7e6b4c2a"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
