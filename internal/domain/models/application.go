// internal/domain/models/application.go
package models

import "time"

// ApplicationStatus tracks an application through the back-office
// pipeline. New submissions always start at ApplicationSubmitted.
type ApplicationStatus string

const (
	ApplicationDraft       ApplicationStatus = "draft"
	ApplicationSubmitted   ApplicationStatus = "submitted"
	ApplicationUnderReview ApplicationStatus = "under-review"
	ApplicationApproved    ApplicationStatus = "approved"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationCompleted   ApplicationStatus = "completed"
	ApplicationCancelled   ApplicationStatus = "cancelled"
)

// Terminal reports whether the status admits no further processing.
func (s ApplicationStatus) Terminal() bool {
	switch s {
	case ApplicationApproved, ApplicationRejected, ApplicationCompleted, ApplicationCancelled:
		return true
	}
	return false
}

// DocumentType classifies uploaded attachments.
type DocumentType string

const (
	DocumentNationalID  DocumentType = "national-id"
	DocumentPassport    DocumentType = "passport"
	DocumentPhoto       DocumentType = "photo"
	DocumentCertificate DocumentType = "certificate"
	DocumentReceipt     DocumentType = "receipt"
	DocumentOther       DocumentType = "other"
)

// Document is an attachment recorded against an application. Uploads
// are simulated, so only metadata is kept; URL points nowhere real.
type Document struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       DocumentType `json:"type"`
	Size       int64        `json:"size"`
	UploadDate time.Time    `json:"upload_date"`
	IsRequired bool         `json:"is_required"`
	IsVerified bool         `json:"is_verified"`
	URL        string       `json:"url"`
}

// Application is one citizen's submission for a service. CurrentStep
// counts back-office processing stages (1..TotalSteps), not wizard
// pages. CompletionDate stays nil until the pipeline finishes.
type Application struct {
	ID                      string            `json:"id"`
	ServiceID               string            `json:"service_id"`
	UserID                  string            `json:"user_id"`
	Status                  ApplicationStatus `json:"status"`
	SubmissionDate          time.Time         `json:"submission_date"`
	CompletionDate          *time.Time        `json:"completion_date,omitempty"`
	EstimatedCompletionDate time.Time         `json:"estimated_completion_date"`
	Documents               []Document        `json:"documents"`
	CurrentStep             int               `json:"current_step"`
	TotalSteps              int               `json:"total_steps"`
	Fees                    float64           `json:"fees"`
	IsPaid                  bool              `json:"is_paid"`
	PaymentMethod           PaymentMethod     `json:"payment_method"`
	TrackingNumber          string            `json:"tracking_number"`
	Notes                   string            `json:"notes,omitempty"`
}
