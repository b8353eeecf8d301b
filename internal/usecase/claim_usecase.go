package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"trustify_claims/internal/domain/entities"
	"trustify_claims/internal/domain/events"
	"trustify_claims/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClaimNotFound       = errors.New("claim not found")
	ErrClaimForbidden      = errors.New("you don't have permission to access this claim")
	ErrAdminRequired       = errors.New("admin role required")
	ErrInvalidClaimNumber  = errors.New("invalid claim number")
	ErrInvalidClaimStatus  = errors.New("invalid claim status")
	ErrInvalidPolicyType   = errors.New("invalid policy type")
	ErrPolicyNotFound      = errors.New("referenced policy does not exist")
	ErrClaimNumberConflict = errors.New("claim number collision, retry the submission")
)

// InvalidTransitionError reports a state-machine violation. It names the
// operation, the status(es) it requires and the status the claim actually had.
type InvalidTransitionError struct {
	Operation string
	Required  []entities.ClaimStatus
	Actual    entities.ClaimStatus
}

func (e *InvalidTransitionError) Error() string {
	required := make([]string, len(e.Required))
	for i, s := range e.Required {
		required[i] = string(s)
	}
	return fmt.Sprintf("claim can only be %s from %s status. Current status: %s",
		e.Operation, strings.Join(required, " or "), e.Actual)
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries per-field input violations.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func fieldErr(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// SubmitClaimInput is the domain command for filing a new claim.
type SubmitClaimInput struct {
	PolicyNumber     string
	PolicyType       entities.PolicyType
	ClaimType        entities.ClaimType
	IncidentDate     time.Time
	ClaimedAmount    float64
	Description      string
	IncidentLocation string
	DocumentsPath    string
	Severity         entities.Severity
}

type ApproveClaimInput struct {
	ClaimNumber    string
	ApprovedAmount float64
	AdminNotes     string
}

type RejectClaimInput struct {
	ClaimNumber     string
	RejectionReason string
	AdminNotes      string
}

// IClaimUseCase exposes the claim lifecycle operations. Every call carries the
// resolved caller identity; ownership and role checks happen here, not in the
// transport layer.

type IClaimUseCase interface {
	Submit(ctx context.Context, caller entities.Identity, input SubmitClaimInput) (entities.Claim, error)
	GetByNumber(ctx context.Context, caller entities.Identity, claimNumber string) (entities.Claim, error)
	ListMine(ctx context.Context, caller entities.Identity) ([]entities.Claim, error)
	ListMineByStatus(ctx context.Context, caller entities.Identity, status entities.ClaimStatus) ([]entities.Claim, error)
	ListMineByPolicyType(ctx context.Context, caller entities.Identity, policyType entities.PolicyType) ([]entities.Claim, error)
	ListByPolicy(ctx context.Context, caller entities.Identity, policyNumber string) ([]entities.Claim, error)
	Cancel(ctx context.Context, caller entities.Identity, claimNumber string) (entities.Claim, error)

	ListAll(ctx context.Context, caller entities.Identity) ([]entities.Claim, error)
	ListByStatus(ctx context.Context, caller entities.Identity, status entities.ClaimStatus) ([]entities.Claim, error)
	MoveToUnderReview(ctx context.Context, caller entities.Identity, claimNumber string) (entities.Claim, error)
	Approve(ctx context.Context, caller entities.Identity, input ApproveClaimInput) (entities.Claim, error)
	Reject(ctx context.Context, caller entities.Identity, input RejectClaimInput) (entities.Claim, error)
	Settle(ctx context.Context, caller entities.Identity, claimNumber string) (entities.Claim, error)
	Statistics(ctx context.Context, caller entities.Identity) (entities.ClaimStatistics, error)
}

type ClaimUseCase struct {
	repo      interfaces.IClaimRepository
	publisher interfaces.IClaimEventPublisher
	policies  interfaces.IPolicyClient
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

// NewClaimUseCase wires the lifecycle engine. publisher and policies may be
// nil: without a publisher transitions simply do not notify, without a policy
// client submissions skip the policy existence check.
func NewClaimUseCase(repo interfaces.IClaimRepository, publisher interfaces.IClaimEventPublisher, policies interfaces.IPolicyClient) *ClaimUseCase {
	return &ClaimUseCase{repo: repo, publisher: publisher, policies: policies}
}

func (u *ClaimUseCase) Submit(ctx context.Context, caller entities.Identity, input SubmitClaimInput) (entities.Claim, error) {
	if err := validateSubmitInput(&input); err != nil {
		return entities.Claim{}, err
	}

	if u.policies != nil {
		exists, err := u.policies.PolicyExists(ctx, input.PolicyNumber)
		if err != nil {
			return entities.Claim{}, err
		}
		if !exists {
			return entities.Claim{}, ErrPolicyNotFound
		}
	}

	now := time.Now().UTC()
	c := entities.Claim{
		ClaimNumber:      generateClaimNumber(),
		PolicyNumber:     input.PolicyNumber,
		PolicyType:       input.PolicyType,
		ClaimType:        input.ClaimType,
		UserID:           caller.SubjectID,
		Email:            caller.Email,
		Status:           entities.ClaimStatusSubmitted,
		IncidentDate:     input.IncidentDate,
		SubmittedAt:      now,
		ClaimedAmount:    input.ClaimedAmount,
		Description:      input.Description,
		IncidentLocation: input.IncidentLocation,
		DocumentsPath:    input.DocumentsPath,
		Severity:         input.Severity,
		UpdatedAt:        now,
	}
	if c.Severity == "" {
		c.Severity = entities.SeverityMedium
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrClaimNumberExists) {
			return entities.Claim{}, ErrClaimNumberConflict
		}
		return entities.Claim{}, err
	}

	log.Printf("[claims] claim submitted number=%s user=%s", created.ClaimNumber, caller.SubjectID)
	return created, nil
}

func validateSubmitInput(input *SubmitClaimInput) error {
	var fields []FieldError

	input.PolicyNumber = strings.TrimSpace(input.PolicyNumber)
	input.Description = strings.TrimSpace(input.Description)

	if input.PolicyNumber == "" {
		fields = append(fields, FieldError{"policy_number", "policy number is required"})
	}
	if !input.PolicyType.Valid() {
		fields = append(fields, FieldError{"policy_type", "policy type must be one of LIFE, CAR, HOUSE"})
	} else if !input.ClaimType.ValidFor(input.PolicyType) {
		fields = append(fields, FieldError{"claim_type", fmt.Sprintf("claim type %s is not valid for policy type %s", input.ClaimType, input.PolicyType)})
	}
	if input.IncidentDate.IsZero() {
		fields = append(fields, FieldError{"incident_date", "incident date is required"})
	} else if input.IncidentDate.After(time.Now()) {
		fields = append(fields, FieldError{"incident_date", "incident date cannot be in the future"})
	}
	if input.ClaimedAmount <= 0 {
		fields = append(fields, FieldError{"claimed_amount", "claimed amount must be positive"})
	}
	if n := len(input.Description); n < 20 || n > 2000 {
		fields = append(fields, FieldError{"description", "description must be between 20 and 2000 characters"})
	}
	if len(input.IncidentLocation) > 500 {
		fields = append(fields, FieldError{"incident_location", "incident location cannot exceed 500 characters"})
	}
	if input.Severity != "" && !input.Severity.Valid() {
		fields = append(fields, FieldError{"severity", "severity must be one of LOW, MEDIUM, HIGH, CRITICAL"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (u *ClaimUseCase) GetByNumber(ctx context.Context, caller entities.Identity, claimNumber string) (entities.Claim, error) {
	c, err := u.getClaim(ctx, claimNumber)
	if err != nil {
		return entities.Claim{}, err
	}
	if !caller.IsAdmin() && c.UserID != caller.SubjectID {
		return entities.Claim{}, ErrClaimForbidden
	}
	return c, nil
}

func (u *ClaimUseCase) ListMine(ctx context.Context, caller entities.Identity) ([]entities.Claim, error) {
	return u.repo.ListByUser(ctx, caller.SubjectID)
}

func (u *ClaimUseCase) ListMineByStatus(ctx context.Context, caller entities.Identity, status entities.ClaimStatus) ([]entities.Claim, error) {
	if !status.Valid() {
		return nil, ErrInvalidClaimStatus
	}
	return u.repo.ListByUserAndStatus(ctx, caller.SubjectID, status)
}

func (u *ClaimUseCase) ListMineByPolicyType(ctx context.Context, caller entities.Identity, policyType entities.PolicyType) ([]entities.Claim, error) {
	if !policyType.Valid() {
		return nil, ErrInvalidPolicyType
	}
	return u.repo.ListByUserAndPolicyType(ctx, caller.SubjectID, policyType)
}

// ListByPolicy only ever queries the caller's own claims; the filter runs in
// the store so other users' claims never leave it.
func (u *ClaimUseCase) ListByPolicy(ctx context.Context, caller entities.Identity, policyNumber string) ([]entities.Claim, error) {
	policyNumber = strings.TrimSpace(policyNumber)
	if policyNumber == "" {
		return nil, fieldErr("policy_number", "policy number is required")
	}
	return u.repo.ListByUserAndPolicy(ctx, caller.SubjectID, policyNumber)
}

func (u *ClaimUseCase) Cancel(ctx context.Context, caller entities.Identity, claimNumber string) (entities.Claim, error) {
	c, err := u.getClaim(ctx, claimNumber)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.UserID != caller.SubjectID {
		return entities.Claim{}, ErrClaimForbidden
	}

	required := []entities.ClaimStatus{entities.ClaimStatusSubmitted, entities.ClaimStatusUnderReview}
	if c.Status != entities.ClaimStatusSubmitted && c.Status != entities.ClaimStatusUnderReview {
		return entities.Claim{}, &InvalidTransitionError{Operation: "cancelled", Required: required, Actual: c.Status}
	}

	updated, ok, err := u.repo.TransitionStatus(ctx, c.ClaimNumber, c.Status, interfaces.ClaimStatusChange{
		NewStatus: entities.ClaimStatusCancelled,
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if !ok {
		return entities.Claim{}, u.transitionConflict(ctx, c.ClaimNumber, "cancelled", required)
	}

	log.Printf("[claims] claim cancelled number=%s user=%s", c.ClaimNumber, caller.SubjectID)
	return updated, nil
}

// Admin operations

func (u *ClaimUseCase) ListAll(ctx context.Context, caller entities.Identity) ([]entities.Claim, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminRequired
	}
	return u.repo.ListAll(ctx)
}

func (u *ClaimUseCase) ListByStatus(ctx context.Context, caller entities.Identity, status entities.ClaimStatus) ([]entities.Claim, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminRequired
	}
	if !status.Valid() {
		return nil, ErrInvalidClaimStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *ClaimUseCase) MoveToUnderReview(ctx context.Context, caller entities.Identity, claimNumber string) (entities.Claim, error) {
	return u.adminTransition(ctx, caller, claimNumber, "moved to UNDER_REVIEW",
		[]entities.ClaimStatus{entities.ClaimStatusSubmitted},
		interfaces.ClaimStatusChange{
			NewStatus:  entities.ClaimStatusUnderReview,
			ReviewedBy: caller.SubjectID,
		}, "")
}

func (u *ClaimUseCase) Approve(ctx context.Context, caller entities.Identity, input ApproveClaimInput) (entities.Claim, error) {
	if input.ApprovedAmount <= 0 {
		return entities.Claim{}, fieldErr("approved_amount", "approved amount must be positive")
	}

	now := time.Now().UTC()
	return u.adminTransition(ctx, caller, input.ClaimNumber, "approved",
		[]entities.ClaimStatus{entities.ClaimStatusUnderReview},
		interfaces.ClaimStatusChange{
			NewStatus:      entities.ClaimStatusApproved,
			ReviewedBy:     caller.SubjectID,
			ApprovedAmount: &input.ApprovedAmount,
			ApprovedDate:   &now,
			AdminNotes:     input.AdminNotes,
		}, "")
}

func (u *ClaimUseCase) Reject(ctx context.Context, caller entities.Identity, input RejectClaimInput) (entities.Claim, error) {
	reason := strings.TrimSpace(input.RejectionReason)
	if n := len(reason); n < 10 || n > 1000 {
		return entities.Claim{}, fieldErr("rejection_reason", "rejection reason must be between 10 and 1000 characters")
	}

	now := time.Now().UTC()
	return u.adminTransition(ctx, caller, input.ClaimNumber, "rejected",
		[]entities.ClaimStatus{entities.ClaimStatusUnderReview},
		interfaces.ClaimStatusChange{
			NewStatus:       entities.ClaimStatusRejected,
			ReviewedBy:      caller.SubjectID,
			RejectedDate:    &now,
			RejectionReason: reason,
			AdminNotes:      input.AdminNotes,
		}, reason)
}

func (u *ClaimUseCase) Settle(ctx context.Context, caller entities.Identity, claimNumber string) (entities.Claim, error) {
	now := time.Now().UTC()
	return u.adminTransition(ctx, caller, claimNumber, "settled",
		[]entities.ClaimStatus{entities.ClaimStatusApproved},
		interfaces.ClaimStatusChange{
			NewStatus:   entities.ClaimStatusSettled,
			ReviewedBy:  caller.SubjectID,
			SettledDate: &now,
		}, "")
}

func (u *ClaimUseCase) Statistics(ctx context.Context, caller entities.Identity) (entities.ClaimStatistics, error) {
	if !caller.IsAdmin() {
		return entities.ClaimStatistics{}, ErrAdminRequired
	}

	counts, err := u.repo.CountByStatus(ctx)
	if err != nil {
		return entities.ClaimStatistics{}, err
	}

	stats := entities.ClaimStatistics{ByStatus: make(map[entities.ClaimStatus]int64, len(entities.AllClaimStatuses))}
	for _, s := range entities.AllClaimStatuses {
		stats.ByStatus[s] = counts[s]
		stats.Total += counts[s]
	}
	return stats, nil
}

// adminTransition runs one guarded transition: role check, precondition check
// against the loaded claim, conditional update, then event emission for
// notification-worthy targets. The conditional update re-checks the expected
// status in the store, so a concurrent transition makes ok=false and the
// operation fails against the post-transition state.
func (u *ClaimUseCase) adminTransition(
	ctx context.Context,
	caller entities.Identity,
	claimNumber, operation string,
	required []entities.ClaimStatus,
	change interfaces.ClaimStatusChange,
	reason string,
) (entities.Claim, error) {
	if !caller.IsAdmin() {
		return entities.Claim{}, ErrAdminRequired
	}

	c, err := u.getClaim(ctx, claimNumber)
	if err != nil {
		return entities.Claim{}, err
	}
	if !statusIn(c.Status, required) {
		return entities.Claim{}, &InvalidTransitionError{Operation: operation, Required: required, Actual: c.Status}
	}

	updated, ok, err := u.repo.TransitionStatus(ctx, c.ClaimNumber, c.Status, change)
	if err != nil {
		return entities.Claim{}, err
	}
	if !ok {
		return entities.Claim{}, u.transitionConflict(ctx, c.ClaimNumber, operation, required)
	}

	log.Printf("[claims] claim %s number=%s admin=%s", operation, c.ClaimNumber, caller.SubjectID)

	u.publishStatusChanged(ctx, updated, c.Status, caller.SubjectID, reason)
	return updated, nil
}

func (u *ClaimUseCase) publishStatusChanged(ctx context.Context, c entities.Claim, oldStatus entities.ClaimStatus, changedBy, reason string) {
	if u.publisher == nil || !events.NotificationWorthy(c.Status) {
		return
	}

	event := events.ClaimStatusChangedEvent{
		ClaimNumber: c.ClaimNumber,
		OldStatus:   oldStatus,
		NewStatus:   c.Status,
		UserID:      c.UserID,
		UserEmail:   c.Email,
		ChangedBy:   changedBy,
		Reason:      reason,
		Timestamp:   time.Now().UTC(),
	}

	// The claim is already committed; a publish failure is a delivery
	// problem, not a claim problem.
	if err := u.publisher.PublishClaimStatusChanged(ctx, event); err != nil {
		log.Printf("[claims] failed to publish status change event number=%s new_status=%s err=%v",
			c.ClaimNumber, c.Status, err)
	}
}

func (u *ClaimUseCase) getClaim(ctx context.Context, claimNumber string) (entities.Claim, error) {
	claimNumber = strings.TrimSpace(claimNumber)
	if claimNumber == "" {
		return entities.Claim{}, ErrInvalidClaimNumber
	}

	c, err := u.repo.GetByNumber(ctx, claimNumber)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.ClaimNumber == "" {
		return entities.Claim{}, ErrClaimNotFound
	}
	return c, nil
}

// transitionConflict rebuilds the precise InvalidTransitionError after a
// conditional update lost a race. The claim existed moments ago; if it reads
// back empty, report not found.
func (u *ClaimUseCase) transitionConflict(ctx context.Context, claimNumber, operation string, required []entities.ClaimStatus) error {
	c, err := u.repo.GetByNumber(ctx, claimNumber)
	if err != nil {
		return err
	}
	if c.ClaimNumber == "" {
		return ErrClaimNotFound
	}
	return &InvalidTransitionError{Operation: operation, Required: required, Actual: c.Status}
}

func statusIn(s entities.ClaimStatus, in []entities.ClaimStatus) bool {
	for _, candidate := range in {
		if s == candidate {
			return true
		}
	}
	return false
}

// generateClaimNumber builds CLM-<ms>-<rand>: the trailing digits of the unix
// millisecond clock for debuggability plus eight hex chars of a fresh UUID.
// Uniqueness is enforced at the store with a conditional put.
func generateClaimNumber() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return "CLM-" + ms + "-" + random
}
