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
	defaultDocumentsTableName = "documents"
	documentsKindIndex        = "kind-index"
)

type attachmentItem struct {
	Name     string `dynamodbav:"name"`
	Key      string `dynamodbav:"key,omitempty"`
	URL      string `dynamodbav:"url,omitempty"`
	MimeType string `dynamodbav:"mime_type,omitempty"`
	Size     int64  `dynamodbav:"size,omitempty"`
}

type documentItem struct {
	ID          string           `dynamodbav:"id"`
	Kind        string           `dynamodbav:"kind"`
	Title       string           `dynamodbav:"title"`
	Description string           `dynamodbav:"description,omitempty"`
	Reference   string           `dynamodbav:"reference,omitempty"`
	Category    string           `dynamodbav:"category,omitempty"`
	Department  string           `dynamodbav:"department,omitempty"`
	Location    string           `dynamodbav:"location,omitempty"`
	Status      string           `dynamodbav:"status,omitempty"`
	Published   bool             `dynamodbav:"published"`
	OpeningDate string           `dynamodbav:"opening_date,omitempty"`
	ClosingDate string           `dynamodbav:"closing_date,omitempty"`
	Attachments []attachmentItem `dynamodbav:"attachments,omitempty"`
	PublishedAt string           `dynamodbav:"published_at,omitempty"`
	CreatedAt   string           `dynamodbav:"created_at"`
	UpdatedAt   string           `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository persists forms, tenders, vacancies, procurement
// notices and news items in one DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: kind-index (PK: kind)
type DocumentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb DynamoAPI) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	if err := r.put(ctx, d, "attribute_not_exists(#id)"); err != nil {
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	var it documentItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) ListByKind(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error) {
	items, err := queryAll[documentItem](ctx, r.ddb, indexQuery(r.tableName, documentsKindIndex, "kind", string(kind)))
	if err != nil {
		return nil, err
	}
	out := make([]entities.Document, 0, len(items))
	for _, it := range items {
		out = append(out, fromDocumentItem(it))
	}
	return out, nil
}

func (r *DocumentDynamoRepository) Update(ctx context.Context, d entities.Document) (entities.Document, error) {
	if err := r.put(ctx, d, "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return entities.Document{}, nil
		}
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *DocumentDynamoRepository) put(ctx context.Context, d entities.Document, condition string) error {
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func toDocumentItem(d entities.Document) documentItem {
	it := documentItem{
		ID:          d.ID,
		Kind:        string(d.Kind),
		Title:       d.Title,
		Description: d.Description,
		Reference:   d.Reference,
		Category:    d.Category,
		Department:  d.Department,
		Location:    d.Location,
		Status:      d.Status,
		Published:   d.Published,
		OpeningDate: formatTimePtr(d.OpeningDate),
		ClosingDate: formatTimePtr(d.ClosingDate),
		PublishedAt: formatTimePtr(d.PublishedAt),
		CreatedAt:   formatTime(d.CreatedAt),
		UpdatedAt:   formatTime(d.UpdatedAt),
	}
	for _, a := range d.Attachments {
		it.Attachments = append(it.Attachments, attachmentItem(a))
	}
	return it
}

func fromDocumentItem(it documentItem) entities.Document {
	d := entities.Document{
		ID:          it.ID,
		Kind:        entities.DocumentKind(it.Kind),
		Title:       it.Title,
		Description: it.Description,
		Reference:   it.Reference,
		Category:    it.Category,
		Department:  it.Department,
		Location:    it.Location,
		Status:      it.Status,
		Published:   it.Published,
		OpeningDate: parseTimePtr(it.OpeningDate),
		ClosingDate: parseTimePtr(it.ClosingDate),
		PublishedAt: parseTimePtr(it.PublishedAt),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	for _, a := range it.Attachments {
		d.Attachments = append(d.Attachments, entities.Attachment(a))
	}
	return d
}
