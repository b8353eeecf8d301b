package response

import (
	"time"

	"trustify_claims/internal/domain/entities"
)

type ClaimResponse struct {
	ClaimNumber      string     `json:"claim_number"`
	PolicyNumber     string     `json:"policy_number"`
	PolicyType       string     `json:"policy_type"`
	ClaimType        string     `json:"claim_type"`
	Status           string     `json:"status"`
	IncidentDate     string     `json:"incident_date"`
	SubmittedAt      time.Time  `json:"submitted_at"`
	ClaimedAmount    float64    `json:"claimed_amount"`
	ApprovedAmount   *float64   `json:"approved_amount,omitempty"`
	ApprovedDate     *time.Time `json:"approved_date,omitempty"`
	RejectedDate     *time.Time `json:"rejected_date,omitempty"`
	SettledDate      *time.Time `json:"settled_date,omitempty"`
	Description      string     `json:"description"`
	IncidentLocation string     `json:"incident_location,omitempty"`
	RejectionReason  string     `json:"rejection_reason,omitempty"`
	AdminNotes       string     `json:"admin_notes,omitempty"`
	DocumentsPath    string     `json:"documents_path,omitempty"`
	ReviewedBy       string     `json:"reviewed_by,omitempty"`
	Severity         string     `json:"severity"`
}

func FromClaim(c entities.Claim) ClaimResponse {
	return ClaimResponse{
		ClaimNumber:      c.ClaimNumber,
		PolicyNumber:     c.PolicyNumber,
		PolicyType:       string(c.PolicyType),
		ClaimType:        string(c.ClaimType),
		Status:           string(c.Status),
		IncidentDate:     c.IncidentDate.Format("2006-01-02"),
		SubmittedAt:      c.SubmittedAt,
		ClaimedAmount:    c.ClaimedAmount,
		ApprovedAmount:   c.ApprovedAmount,
		ApprovedDate:     c.ApprovedDate,
		RejectedDate:     c.RejectedDate,
		SettledDate:      c.SettledDate,
		Description:      c.Description,
		IncidentLocation: c.IncidentLocation,
		RejectionReason:  c.RejectionReason,
		AdminNotes:       c.AdminNotes,
		DocumentsPath:    c.DocumentsPath,
		ReviewedBy:       c.ReviewedBy,
		Severity:         string(c.Severity),
	}
}

func FromClaims(claims []entities.Claim) []ClaimResponse {
	out := make([]ClaimResponse, 0, len(claims))
	for _, c := range claims {
		out = append(out, FromClaim(c))
	}
	return out
}

// StatisticsResponse mirrors the admin statistics projection: a total plus a
// count for every status, zero or not.
type StatisticsResponse struct {
	TotalClaims       int64 `json:"totalClaims"`
	SubmittedClaims   int64 `json:"submittedClaims"`
	UnderReviewClaims int64 `json:"underReviewClaims"`
	ApprovedClaims    int64 `json:"approvedClaims"`
	RejectedClaims    int64 `json:"rejectedClaims"`
	SettledClaims     int64 `json:"settledClaims"`
	CancelledClaims   int64 `json:"cancelledClaims"`
}

func FromStatistics(s entities.ClaimStatistics) StatisticsResponse {
	return StatisticsResponse{
		TotalClaims:       s.Total,
		SubmittedClaims:   s.ByStatus[entities.ClaimStatusSubmitted],
		UnderReviewClaims: s.ByStatus[entities.ClaimStatusUnderReview],
		ApprovedClaims:    s.ByStatus[entities.ClaimStatusApproved],
		RejectedClaims:    s.ByStatus[entities.ClaimStatusRejected],
		SettledClaims:     s.ByStatus[entities.ClaimStatusSettled],
		CancelledClaims:   s.ByStatus[entities.ClaimStatusCancelled],
	}
}
