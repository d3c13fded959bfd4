package repository

import (
	"context"

	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPushTokensTableName = "push_tokens"
	pushTokensReferenceIndex   = "reference_id-index"
)

type pushTokenItem struct {
	Token       string `dynamodbav:"token"`
	Platform    string `dynamodbav:"platform"`
	ReferenceID string `dynamodbav:"reference_id,omitempty"`
	Active      bool   `dynamodbav:"active"`
	LastUsed    string `dynamodbav:"last_used"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// PushTokenDynamoRepository stores FCM device registrations.
//
// Table requirements:
//   - PK: token (string)
//   - GSI: reference_id-index (PK: reference_id)
type PushTokenDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPushTokenRepository = (*PushTokenDynamoRepository)(nil)

func NewPushTokenDynamoRepository(ddb DynamoAPI) *PushTokenDynamoRepository {
	return &PushTokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PUSH_TOKENS_TABLE", defaultPushTokensTableName),
	}
}

func tokenKey(token string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"token": &types.AttributeValueMemberS{Value: token},
	}
}

// Upsert registers or refreshes a token and rebinds it to t.ReferenceID.
// created_at of an existing registration is kept; an empty reference detaches
// the token.
func (r *PushTokenDynamoRepository) Upsert(ctx context.Context, t entities.PushToken) (entities.PushToken, error) {
	expr := "SET #platform = :platform, #active = :active, #last_used = :last_used, #created_at = if_not_exists(#created_at, :created_at)"
	names := map[string]string{
		"#platform":   "platform",
		"#active":     "active",
		"#last_used":  "last_used",
		"#created_at": "created_at",
		"#reference":  "reference_id",
	}
	values := map[string]types.AttributeValue{
		":platform":   &types.AttributeValueMemberS{Value: t.Platform},
		":active":     &types.AttributeValueMemberBOOL{Value: t.Active},
		":last_used":  &types.AttributeValueMemberS{Value: formatTime(t.LastUsed)},
		":created_at": &types.AttributeValueMemberS{Value: formatTime(t.CreatedAt)},
	}
	if t.ReferenceID != "" {
		expr += ", #reference = :reference"
		values[":reference"] = &types.AttributeValueMemberS{Value: t.ReferenceID}
	} else {
		expr += " REMOVE #reference"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       tokenKey(t.Token),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.PushToken{}, err
	}
	var it pushTokenItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PushToken{}, err
	}
	return fromPushTokenItem(it), nil
}

func (r *PushTokenDynamoRepository) ListActiveByReference(ctx context.Context, referenceID string) ([]entities.PushToken, error) {
	q := indexQuery(r.tableName, pushTokensReferenceIndex, "reference_id", referenceID)
	q.FilterExpression = aws.String("#active = :true")
	q.ExpressionAttributeNames = mergeNames(q.ExpressionAttributeNames, map[string]string{"#active": "active"})
	q.ExpressionAttributeValues[":true"] = &types.AttributeValueMemberBOOL{Value: true}

	items, err := queryAll[pushTokenItem](ctx, r.ddb, q)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PushToken, 0, len(items))
	for _, it := range items {
		out = append(out, fromPushTokenItem(it))
	}
	return out, nil
}

// Deactivate marks a token inactive. Unknown tokens are ignored.
func (r *PushTokenDynamoRepository) Deactivate(ctx context.Context, token string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 tokenKey(token),
		UpdateExpression:    aws.String("SET #active = :false"),
		ConditionExpression: aws.String("attribute_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
			"#token":  "token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil && !isConditionFailed(err) {
		return err
	}
	return nil
}

func fromPushTokenItem(it pushTokenItem) entities.PushToken {
	return entities.PushToken{
		Token:       it.Token,
		Platform:    it.Platform,
		ReferenceID: it.ReferenceID,
		Active:      it.Active,
		LastUsed:    parseTime(it.LastUsed),
		CreatedAt:   parseTime(it.CreatedAt),
	}
}
