package repository

import (
	"context"
	"errors"
	"time"

	"trustify_claims/internal/domain/entities"
	"trustify_claims/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClaimsTableName = "claims"
	claimsUserIndex        = "user_id-index"
)

type claimItem struct {
	ClaimNumber      string `dynamodbav:"claim_number"`
	PolicyNumber     string `dynamodbav:"policy_number"`
	PolicyType       string `dynamodbav:"policy_type"`
	ClaimType        string `dynamodbav:"claim_type"`
	UserID           string `dynamodbav:"user_id"`
	Email            string `dynamodbav:"email,omitempty"`
	Status           string `dynamodbav:"status"`
	IncidentDate     string `dynamodbav:"incident_date"`
	SubmittedAt      string `dynamodbav:"submitted_at"`
	ClaimedAmount    string `dynamodbav:"claimed_amount"`
	ApprovedAmount   string `dynamodbav:"approved_amount,omitempty"`
	ApprovedDate     string `dynamodbav:"approved_date,omitempty"`
	RejectedDate     string `dynamodbav:"rejected_date,omitempty"`
	SettledDate      string `dynamodbav:"settled_date,omitempty"`
	Description      string `dynamodbav:"description"`
	IncidentLocation string `dynamodbav:"incident_location,omitempty"`
	RejectionReason  string `dynamodbav:"rejection_reason,omitempty"`
	AdminNotes       string `dynamodbav:"admin_notes,omitempty"`
	DocumentsPath    string `dynamodbav:"documents_path,omitempty"`
	ReviewedBy       string `dynamodbav:"reviewed_by,omitempty"`
	Severity         string `dynamodbav:"severity"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ClaimDynamoRepository persists Claim entities in DynamoDB.
//
// Table requirements:
//   - PK: claim_number (string)
//   - GSI user_id-index: user_id (string)
//
// Status transitions go through a conditional UpdateItem keyed on the current
// status, which is what gives each claim row its compare-and-update
// semantics.

type ClaimDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb *dynamodb.Client) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLAIMS_TABLE", defaultClaimsTableName),
	}
}

func (r *ClaimDynamoRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	av, err := attributevalue.MarshalMap(toClaimItem(c))
	if err != nil {
		return entities.Claim{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#cn)"),
		ExpressionAttributeNames: map[string]string{
			"#cn": "claim_number",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Claim{}, interfaces.ErrClaimNumberExists
		}
		return entities.Claim{}, err
	}
	return c, nil
}

func (r *ClaimDynamoRepository) GetByNumber(ctx context.Context, claimNumber string) (entities.Claim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"claim_number": &types.AttributeValueMemberS{Value: claimNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Claim{}, err
	}
	if len(out.Item) == 0 {
		return entities.Claim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it), nil
}

func (r *ClaimDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Claim, error) {
	return r.queryUser(ctx, userID, "", nil)
}

func (r *ClaimDynamoRepository) ListByUserAndStatus(ctx context.Context, userID string, status entities.ClaimStatus) ([]entities.Claim, error) {
	return r.queryUser(ctx, userID, "#status = :f", map[string]filterAttr{
		"#status": {name: "status", value: string(status)},
	})
}

func (r *ClaimDynamoRepository) ListByUserAndPolicyType(ctx context.Context, userID string, policyType entities.PolicyType) ([]entities.Claim, error) {
	return r.queryUser(ctx, userID, "#policy_type = :f", map[string]filterAttr{
		"#policy_type": {name: "policy_type", value: string(policyType)},
	})
}

func (r *ClaimDynamoRepository) ListByUserAndPolicy(ctx context.Context, userID, policyNumber string) ([]entities.Claim, error) {
	return r.queryUser(ctx, userID, "#policy_number = :f", map[string]filterAttr{
		"#policy_number": {name: "policy_number", value: policyNumber},
	})
}

type filterAttr struct {
	name  string
	value string
}

// queryUser runs a user_id-index query with an optional single-attribute
// filter. The filter is applied in the store, never after the fact in the
// caller.
func (r *ClaimDynamoRepository) queryUser(ctx context.Context, userID, filterExpr string, filters map[string]filterAttr) ([]entities.Claim, error) {
	names := map[string]string{"#user_id": "user_id"}
	values := map[string]types.AttributeValue{
		":uid": &types.AttributeValueMemberS{Value: userID},
	}
	for placeholder, attr := range filters {
		names[placeholder] = attr.name
		values[":f"] = &types.AttributeValueMemberS{Value: attr.value}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(claimsUserIndex),
		KeyConditionExpression:    aws.String("#user_id = :uid"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
	}

	var claims []entities.Claim
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it claimItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			claims = append(claims, fromClaimItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return claims, nil
}

func (r *ClaimDynamoRepository) ListAll(ctx context.Context) ([]entities.Claim, error) {
	return r.scan(ctx, "", nil, nil)
}

func (r *ClaimDynamoRepository) ListByStatus(ctx context.Context, status entities.ClaimStatus) ([]entities.Claim, error) {
	return r.scan(ctx, "#status = :status",
		map[string]string{"#status": "status"},
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		})
}

func (r *ClaimDynamoRepository) scan(ctx context.Context, filterExpr string, names map[string]string, values map[string]types.AttributeValue) ([]entities.Claim, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var claims []entities.Claim
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it claimItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			claims = append(claims, fromClaimItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return claims, nil
}

func (r *ClaimDynamoRepository) TransitionStatus(ctx context.Context, claimNumber string, expected entities.ClaimStatus, change interfaces.ClaimStatusChange) (entities.Claim, bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(change.NewStatus)},
		":expected":   &types.AttributeValueMemberS{Value: string(expected)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#cn":         "claim_number",
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	set := func(placeholder, attr, value string) {
		expr += ", " + placeholder + " = :" + attr
		names[placeholder] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	}

	if change.ReviewedBy != "" {
		set("#reviewed_by", "reviewed_by", change.ReviewedBy)
	}
	if change.ApprovedAmount != nil {
		set("#approved_amount", "approved_amount", floatToString(*change.ApprovedAmount))
	}
	if change.ApprovedDate != nil {
		set("#approved_date", "approved_date", change.ApprovedDate.UTC().Format(time.RFC3339Nano))
	}
	if change.RejectedDate != nil {
		set("#rejected_date", "rejected_date", change.RejectedDate.UTC().Format(time.RFC3339Nano))
	}
	if change.SettledDate != nil {
		set("#settled_date", "settled_date", change.SettledDate.UTC().Format(time.RFC3339Nano))
	}
	if change.RejectionReason != "" {
		set("#rejection_reason", "rejection_reason", change.RejectionReason)
	}
	if change.AdminNotes != "" {
		set("#admin_notes", "admin_notes", change.AdminNotes)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"claim_number": &types.AttributeValueMemberS{Value: claimNumber},
		},
		ConditionExpression:       aws.String("attribute_exists(#cn) AND #status = :expected"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Claim{}, false, nil
		}
		return entities.Claim{}, false, err
	}
	if len(out.Attributes) == 0 {
		return entities.Claim{}, false, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Claim{}, false, err
	}
	return fromClaimItem(it), true, nil
}

func (r *ClaimDynamoRepository) CountByStatus(ctx context.Context) (map[entities.ClaimStatus]int64, error) {
	input := &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#status"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
	}

	counts := make(map[entities.ClaimStatus]int64)
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			if s, ok := item["status"].(*types.AttributeValueMemberS); ok {
				counts[entities.ClaimStatus(s.Value)]++
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return counts, nil
}

func toClaimItem(c entities.Claim) claimItem {
	return claimItem{
		ClaimNumber:      c.ClaimNumber,
		PolicyNumber:     c.PolicyNumber,
		PolicyType:       string(c.PolicyType),
		ClaimType:        string(c.ClaimType),
		UserID:           c.UserID,
		Email:            c.Email,
		Status:           string(c.Status),
		IncidentDate:     c.IncidentDate.UTC().Format(time.RFC3339Nano),
		SubmittedAt:      c.SubmittedAt.UTC().Format(time.RFC3339Nano),
		ClaimedAmount:    floatToString(c.ClaimedAmount),
		ApprovedAmount:   optionalFloatToString(c.ApprovedAmount),
		ApprovedDate:     optionalTimeToString(c.ApprovedDate),
		RejectedDate:     optionalTimeToString(c.RejectedDate),
		SettledDate:      optionalTimeToString(c.SettledDate),
		Description:      c.Description,
		IncidentLocation: c.IncidentLocation,
		RejectionReason:  c.RejectionReason,
		AdminNotes:       c.AdminNotes,
		DocumentsPath:    c.DocumentsPath,
		ReviewedBy:       c.ReviewedBy,
		Severity:         string(c.Severity),
		UpdatedAt:        c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromClaimItem(it claimItem) entities.Claim {
	return entities.Claim{
		ClaimNumber:      it.ClaimNumber,
		PolicyNumber:     it.PolicyNumber,
		PolicyType:       entities.PolicyType(it.PolicyType),
		ClaimType:        entities.ClaimType(it.ClaimType),
		UserID:           it.UserID,
		Email:            it.Email,
		Status:           entities.ClaimStatus(it.Status),
		IncidentDate:     parseTime(it.IncidentDate),
		SubmittedAt:      parseTime(it.SubmittedAt),
		ClaimedAmount:    stringToFloat(it.ClaimedAmount),
		ApprovedAmount:   stringToOptionalFloat(it.ApprovedAmount),
		ApprovedDate:     stringToOptionalTime(it.ApprovedDate),
		RejectedDate:     stringToOptionalTime(it.RejectedDate),
		SettledDate:      stringToOptionalTime(it.SettledDate),
		Description:      it.Description,
		IncidentLocation: it.IncidentLocation,
		RejectionReason:  it.RejectionReason,
		AdminNotes:       it.AdminNotes,
		DocumentsPath:    it.DocumentsPath,
		ReviewedBy:       it.ReviewedBy,
		Severity:         entities.Severity(it.Severity),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
