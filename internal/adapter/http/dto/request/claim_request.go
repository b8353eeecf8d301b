package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidIncidentDate = errors.New("incident date must be formatted as YYYY-MM-DD")

const incidentDateLayout = "2006-01-02"

// SubmitClaimRequest is the payload for filing a new claim. Enum and range
// checks live in the use case so their violations come back per field; the
// binding tags only reject structurally broken payloads.
type SubmitClaimRequest struct {
	PolicyNumber     string  `json:"policy_number" binding:"required"`
	PolicyType       string  `json:"policy_type" binding:"required"`
	ClaimType        string  `json:"claim_type" binding:"required"`
	IncidentDate     string  `json:"incident_date" binding:"required"`
	ClaimedAmount    float64 `json:"claimed_amount" binding:"required"`
	Description      string  `json:"description" binding:"required"`
	IncidentLocation string  `json:"incident_location"`
	DocumentsPath    string  `json:"documents_path"`
	Severity         string  `json:"severity"`
}

func (r SubmitClaimRequest) ParseIncidentDate() (time.Time, error) {
	t, err := time.Parse(incidentDateLayout, strings.TrimSpace(r.IncidentDate))
	if err != nil {
		return time.Time{}, ErrInvalidIncidentDate
	}
	return t, nil
}

type ApproveClaimRequest struct {
	ApprovedAmount float64 `json:"approved_amount" binding:"required"`
	AdminNotes     string  `json:"admin_notes"`
}

type RejectClaimRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"required"`
	AdminNotes      string `json:"admin_notes"`
}
