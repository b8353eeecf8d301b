package interfaces

import (
	"context"
	"errors"
	"time"

	"trustify_claims/internal/domain/entities"
)

// ErrClaimNumberExists is returned by Create when the generated claim number
// is already taken.
var ErrClaimNumberExists = errors.New("claim number already exists")

// ClaimStatusChange describes a single guarded status transition. Only the
// fields relevant to the target status are set; the repository folds the
// non-zero ones into the update expression.
type ClaimStatusChange struct {
	NewStatus       entities.ClaimStatus
	ReviewedBy      string
	ApprovedAmount  *float64
	ApprovedDate    *time.Time
	RejectedDate    *time.Time
	SettledDate     *time.Time
	RejectionReason string
	AdminNotes      string
}

// IClaimRepository abstracts DynamoDB persistence for Claim.
//
// Reads return the zero-value Claim when nothing matches. TransitionStatus is
// the conditional compare-and-update the lifecycle engine relies on: the
// write succeeds only while the stored status still equals expected, so two
// concurrent transitions on the same claim cannot both apply.

type IClaimRepository interface {
	Create(ctx context.Context, c entities.Claim) (entities.Claim, error)
	GetByNumber(ctx context.Context, claimNumber string) (entities.Claim, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Claim, error)
	ListByUserAndStatus(ctx context.Context, userID string, status entities.ClaimStatus) ([]entities.Claim, error)
	ListByUserAndPolicyType(ctx context.Context, userID string, policyType entities.PolicyType) ([]entities.Claim, error)
	ListByUserAndPolicy(ctx context.Context, userID, policyNumber string) ([]entities.Claim, error)
	ListAll(ctx context.Context) ([]entities.Claim, error)
	ListByStatus(ctx context.Context, status entities.ClaimStatus) ([]entities.Claim, error)
	// TransitionStatus applies the change iff the stored status equals
	// expected. The bool result is false when the condition did not hold.
	TransitionStatus(ctx context.Context, claimNumber string, expected entities.ClaimStatus, change ClaimStatusChange) (entities.Claim, bool, error)
	CountByStatus(ctx context.Context) (map[entities.ClaimStatus]int64, error)
}
