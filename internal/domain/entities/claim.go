package entities

import "time"

// ClaimStatus represents the lifecycle of an insurance claim.
//
// Domain notes:
//   - The claims-service is the source of truth for claim state.
//   - Transitions only happen through the edges enforced by the claim use case:
//     SUBMITTED -> UNDER_REVIEW -> {APPROVED, REJECTED}, APPROVED -> SETTLED,
//     and SUBMITTED/UNDER_REVIEW -> CANCELLED (owner action).
//   - REJECTED, SETTLED and CANCELLED are terminal.

type ClaimStatus string

const (
	ClaimStatusSubmitted   ClaimStatus = "SUBMITTED"
	ClaimStatusUnderReview ClaimStatus = "UNDER_REVIEW"
	ClaimStatusApproved    ClaimStatus = "APPROVED"
	ClaimStatusRejected    ClaimStatus = "REJECTED"
	ClaimStatusSettled     ClaimStatus = "SETTLED"
	ClaimStatusCancelled   ClaimStatus = "CANCELLED"
)

// AllClaimStatuses lists every status, used by the statistics projection so
// zero-count categories still appear.
var AllClaimStatuses = []ClaimStatus{
	ClaimStatusSubmitted,
	ClaimStatusUnderReview,
	ClaimStatusApproved,
	ClaimStatusRejected,
	ClaimStatusSettled,
	ClaimStatusCancelled,
}

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusSubmitted, ClaimStatusUnderReview, ClaimStatusApproved,
		ClaimStatusRejected, ClaimStatusSettled, ClaimStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status has no outgoing transition.
func (s ClaimStatus) Terminal() bool {
	switch s {
	case ClaimStatusRejected, ClaimStatusSettled, ClaimStatusCancelled:
		return true
	}
	return false
}

type PolicyType string

const (
	PolicyTypeLife  PolicyType = "LIFE"
	PolicyTypeCar   PolicyType = "CAR"
	PolicyTypeHouse PolicyType = "HOUSE"
)

func (p PolicyType) Valid() bool {
	switch p {
	case PolicyTypeLife, PolicyTypeCar, PolicyTypeHouse:
		return true
	}
	return false
}

// ClaimType is scoped by the policy type it is filed against.

type ClaimType string

const (
	// Life insurance claims
	ClaimTypeDeath           ClaimType = "DEATH_CLAIM"
	ClaimTypeCriticalIllness ClaimType = "CRITICAL_ILLNESS_CLAIM"
	ClaimTypeDisability      ClaimType = "DISABILITY_CLAIM"

	// Car insurance claims
	ClaimTypeAccident           ClaimType = "ACCIDENT_CLAIM"
	ClaimTypeTheft              ClaimType = "THEFT_CLAIM"
	ClaimTypeVandalism          ClaimType = "VANDALISM_CLAIM"
	ClaimTypeNaturalDisasterCar ClaimType = "NATURAL_DISASTER_CAR_CLAIM"

	// House insurance claims
	ClaimTypeFireDamage          ClaimType = "FIRE_DAMAGE_CLAIM"
	ClaimTypeWaterDamage         ClaimType = "WATER_DAMAGE_CLAIM"
	ClaimTypeTheftHome           ClaimType = "THEFT_HOME_CLAIM"
	ClaimTypeNaturalDisasterHome ClaimType = "NATURAL_DISASTER_HOME_CLAIM"
	ClaimTypeLiability           ClaimType = "LIABILITY_CLAIM"

	// General
	ClaimTypeOther ClaimType = "OTHER"
)

var claimTypesByPolicy = map[PolicyType][]ClaimType{
	PolicyTypeLife:  {ClaimTypeDeath, ClaimTypeCriticalIllness, ClaimTypeDisability},
	PolicyTypeCar:   {ClaimTypeAccident, ClaimTypeTheft, ClaimTypeVandalism, ClaimTypeNaturalDisasterCar},
	PolicyTypeHouse: {ClaimTypeFireDamage, ClaimTypeWaterDamage, ClaimTypeTheftHome, ClaimTypeNaturalDisasterHome, ClaimTypeLiability},
}

// ValidFor reports whether the claim type may be filed against the given
// policy type. OTHER is accepted for any policy type.
func (t ClaimType) ValidFor(p PolicyType) bool {
	if t == ClaimTypeOther {
		return p.Valid()
	}
	for _, ct := range claimTypesByPolicy[p] {
		if ct == t {
			return true
		}
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Claim is the insurance claim persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: claim_number
//   - GSI1 (user_id-index): user_id
//
// ClaimNumber is the externally visible identifier, generated once at
// submission and never reused. UserID is the identity-provider subject of the
// submitting user and never changes after creation.

type Claim struct {
	ClaimNumber      string      `json:"claim_number"`
	PolicyNumber     string      `json:"policy_number"`
	PolicyType       PolicyType  `json:"policy_type"`
	ClaimType        ClaimType   `json:"claim_type"`
	UserID           string      `json:"user_id"`
	Email            string      `json:"email,omitempty"`
	Status           ClaimStatus `json:"status"`
	IncidentDate     time.Time   `json:"incident_date"`
	SubmittedAt      time.Time   `json:"submitted_at"`
	ClaimedAmount    float64     `json:"claimed_amount"`
	ApprovedAmount   *float64    `json:"approved_amount,omitempty"`
	ApprovedDate     *time.Time  `json:"approved_date,omitempty"`
	RejectedDate     *time.Time  `json:"rejected_date,omitempty"`
	SettledDate      *time.Time  `json:"settled_date,omitempty"`
	Description      string      `json:"description"`
	IncidentLocation string      `json:"incident_location,omitempty"`
	RejectionReason  string      `json:"rejection_reason,omitempty"`
	AdminNotes       string      `json:"admin_notes,omitempty"`
	DocumentsPath    string      `json:"documents_path,omitempty"`
	ReviewedBy       string      `json:"reviewed_by,omitempty"`
	Severity         Severity    `json:"severity"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// ClaimStatistics is a read-only projection over the claim store. The
// per-status counts always sum to Total.
type ClaimStatistics struct {
	Total    int64                 `json:"totalClaims"`
	ByStatus map[ClaimStatus]int64 `json:"byStatus"`
}
