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
	defaultNotificationsTableName = "notifications"
	notificationsUserIndex        = "user_id-index"
)

type notificationItem struct {
	ID          string `dynamodbav:"id"`
	UserID      string `dynamodbav:"user_id"`
	ClaimNumber string `dynamodbav:"claim_number"`
	Message     string `dynamodbav:"message"`
	Type        string `dynamodbav:"type"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	ReadAt      string `dynamodbav:"read_at,omitempty"`
}

// NotificationDynamoRepository persists Notification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index: user_id (string) HASH, created_at (string) RANGE
//
// RFC3339 created_at as the index range key gives newest-first listing with
// ScanIndexForward=false.

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Notification{}, err
	}
	if len(out.Item) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func (r *NotificationDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	return r.queryUser(ctx, userID, false)
}

func (r *NotificationDynamoRepository) ListUnreadByUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	return r.queryUser(ctx, userID, true)
}

func (r *NotificationDynamoRepository) queryUser(ctx context.Context, userID string, unreadOnly bool) ([]entities.Notification, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIndex),
		KeyConditionExpression: aws.String("#user_id = :uid"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if unreadOnly {
		input.FilterExpression = aws.String("#status = :unread")
		input.ExpressionAttributeNames["#status"] = "status"
		input.ExpressionAttributeValues[":unread"] = &types.AttributeValueMemberS{Value: string(entities.NotificationStatusUnread)}
	}

	var notifications []entities.Notification
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it notificationItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			notifications = append(notifications, fromNotificationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return notifications, nil
}

func (r *NotificationDynamoRepository) CountUnreadByUser(ctx context.Context, userID string) (int64, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUserIndex),
		KeyConditionExpression: aws.String("#user_id = :uid"),
		FilterExpression:       aws.String("#status = :unread"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
			"#status":  "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":    &types.AttributeValueMemberS{Value: userID},
			":unread": &types.AttributeValueMemberS{Value: string(entities.NotificationStatusUnread)},
		},
		Select: types.SelectCount,
	}

	var count int64
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return 0, err
		}
		count += int64(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return count, nil
}

// MarkRead flips UNREAD to READ and stamps read_at. The condition keeps READ
// monotonic: a row already READ is left untouched and the zero value is
// returned.
func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id string, readAt time.Time) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :unread"),
		UpdateExpression:    aws.String("SET #status = :read, #read_at = :read_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#status":  "status",
			"#read_at": "read_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":unread":  &types.AttributeValueMemberS{Value: string(entities.NotificationStatusUnread)},
			":read":    &types.AttributeValueMemberS{Value: string(entities.NotificationStatusRead)},
			":read_at": &types.AttributeValueMemberS{Value: readAt.UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}

	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	return notificationItem{
		ID:          n.ID,
		UserID:      n.UserID,
		ClaimNumber: n.ClaimNumber,
		Message:     n.Message,
		Type:        string(n.Type),
		Status:      string(n.Status),
		CreatedAt:   n.CreatedAt.UTC().Format(time.RFC3339Nano),
		ReadAt:      optionalTimeToString(n.ReadAt),
	}
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:          it.ID,
		UserID:      it.UserID,
		ClaimNumber: it.ClaimNumber,
		Message:     it.Message,
		Type:        entities.NotificationType(it.Type),
		Status:      entities.NotificationStatus(it.Status),
		CreatedAt:   parseTime(it.CreatedAt),
		ReadAt:      stringToOptionalTime(it.ReadAt),
	}
}
