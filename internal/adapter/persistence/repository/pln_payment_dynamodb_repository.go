package repository

import (
	"context"
	"encoding/json"

	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultPaymentsTableName = "pln_payments"
	paymentsReferenceIndex   = "reference_id-index"
)

type plnPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ReferenceID        string                 `dynamodbav:"reference_id"`
	Amount             float64                `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// PLNPaymentDynamoRepository persists PLN fee payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference_id-index (PK: reference_id)
type PLNPaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPLNPaymentRepository = (*PLNPaymentDynamoRepository)(nil)

func NewPLNPaymentDynamoRepository(ddb DynamoAPI) *PLNPaymentDynamoRepository {
	return &PLNPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PLNPaymentDynamoRepository) Create(ctx context.Context, p entities.PLNPayment) (entities.PLNPayment, error) {
	av, err := attributevalue.MarshalMap(toPLNPaymentItem(p))
	if err != nil {
		return entities.PLNPayment{}, err
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
		return entities.PLNPayment{}, err
	}
	return p, nil
}

func (r *PLNPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PLNPayment, error) {
	var it plnPaymentItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.PLNPayment{}, err
	}
	return fromPLNPaymentItem(it), nil
}

func (r *PLNPaymentDynamoRepository) ListByReferenceID(ctx context.Context, referenceID string) ([]entities.PLNPayment, error) {
	items, err := queryAll[plnPaymentItem](ctx, r.ddb, indexQuery(r.tableName, paymentsReferenceIndex, "reference_id", referenceID))
	if err != nil {
		return nil, err
	}
	out := make([]entities.PLNPayment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPLNPaymentItem(it))
	}
	return out, nil
}

func toPLNPaymentItem(p entities.PLNPayment) plnPaymentItem {
	return plnPaymentItem{
		ID:                 p.ID,
		ReferenceID:        p.ReferenceID,
		Amount:             p.Amount,
		Date:               formatTime(p.Date),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPLNPaymentItem(it plnPaymentItem) entities.PLNPayment {
	return entities.PLNPayment{
		ID:                 it.ID,
		ReferenceID:        it.ReferenceID,
		Amount:             it.Amount,
		Date:               parseTime(it.Date),
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: json.RawMessage(it.ProviderPayloadRaw),
	}
}
