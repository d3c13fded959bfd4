package repository

import (
	"context"
	"strings"

	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApplicationsTableName = "pln_applications"
	applicationsReferenceIndex   = "reference_key-index"
	applicationsEmailIndex       = "email-index"
	applicationsStatusIndex      = "status-index"
)

type addressItem struct {
	Line1 string `dynamodbav:"line1"`
	Line2 string `dynamodbav:"line2,omitempty"`
	Line3 string `dynamodbav:"line3,omitempty"`
}

type plateChoiceItem struct {
	Text    string `dynamodbav:"text"`
	Meaning string `dynamodbav:"meaning"`
}

type statusHistoryItem struct {
	Status    string `dynamodbav:"status"`
	Timestamp string `dynamodbav:"timestamp"`
	Comment   string `dynamodbav:"comment,omitempty"`
	ChangedBy string `dynamodbav:"changed_by,omitempty"`
}

type plnApplicationItem struct {
	ID              string `dynamodbav:"id"`
	ReferenceID     string `dynamodbav:"reference_id"`
	ReferenceKey    string `dynamodbav:"reference_key"`
	TrackingPINHash string `dynamodbav:"tracking_pin_hash,omitempty"`
	TransactionType string `dynamodbav:"transaction_type"`

	IDType           string            `dynamodbav:"id_type"`
	IDNumber         string            `dynamodbav:"id_number,omitempty"`
	Surname          string            `dynamodbav:"surname,omitempty"`
	Initials         string            `dynamodbav:"initials,omitempty"`
	BusinessName     string            `dynamodbav:"business_name,omitempty"`
	PostalAddress    addressItem       `dynamodbav:"postal_address"`
	StreetAddress    addressItem       `dynamodbav:"street_address"`
	Email            string            `dynamodbav:"email,omitempty"`
	CellNumber       string            `dynamodbav:"cell_number,omitempty"`
	PlateFormat      string            `dynamodbav:"plate_format"`
	Quantity         int               `dynamodbav:"quantity"`
	PlateChoices     []plateChoiceItem `dynamodbav:"plate_choices"`
	VehicleRegNo     string            `dynamodbav:"vehicle_register_number,omitempty"`
	DocumentURL      string            `dynamodbav:"document_url,omitempty"`
	DeclarationAt    string            `dynamodbav:"declaration_date"`
	DeclarationPlace string            `dynamodbav:"declaration_place,omitempty"`

	Status        string              `dynamodbav:"status"`
	StatusHistory []statusHistoryItem `dynamodbav:"status_history"`
	AdminComments string              `dynamodbav:"admin_comments,omitempty"`
	AssignedTo    string              `dynamodbav:"assigned_to,omitempty"`

	PaymentDeadline   string `dynamodbav:"payment_deadline,omitempty"`
	PaymentReceivedAt string `dynamodbav:"payment_received_at,omitempty"`
	PaymentReference  string `dynamodbav:"payment_reference,omitempty"`
	PlatesOrderedAt   string `dynamodbav:"plates_ordered_at,omitempty"`
	ReadyAt           string `dynamodbav:"ready_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PLNApplicationDynamoRepository persists PLNApplication entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: reference_key-index (PK: reference_key)
//   - GSI: email-index (PK: email)
//   - GSI: status-index (PK: status)
type PLNApplicationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPLNApplicationRepository = (*PLNApplicationDynamoRepository)(nil)

func NewPLNApplicationDynamoRepository(ddb DynamoAPI) *PLNApplicationDynamoRepository {
	return &PLNApplicationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PLN_APPLICATIONS_TABLE", defaultApplicationsTableName),
	}
}

func (r *PLNApplicationDynamoRepository) Create(ctx context.Context, a entities.PLNApplication) (entities.PLNApplication, error) {
	av, err := attributevalue.MarshalMap(toPLNApplicationItem(a))
	if err != nil {
		return entities.PLNApplication{}, err
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
		return entities.PLNApplication{}, err
	}
	return a, nil
}

func (r *PLNApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.PLNApplication, error) {
	var it plnApplicationItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.PLNApplication{}, err
	}
	return fromPLNApplicationItem(it), nil
}

// GetByReference matches the reference id case-insensitively through the
// upper-cased reference_key attribute.
func (r *PLNApplicationDynamoRepository) GetByReference(ctx context.Context, referenceID string) (entities.PLNApplication, error) {
	q := indexQuery(r.tableName, applicationsReferenceIndex, "reference_key", referenceKey(referenceID))
	q.Limit = aws.Int32(1)
	out, err := r.ddb.Query(ctx, q)
	if err != nil {
		return entities.PLNApplication{}, err
	}
	if len(out.Items) == 0 {
		return entities.PLNApplication{}, nil
	}
	var it plnApplicationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PLNApplication{}, err
	}
	return fromPLNApplicationItem(it), nil
}

func (r *PLNApplicationDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.PLNApplication, error) {
	items, err := queryAll[plnApplicationItem](ctx, r.ddb, indexQuery(r.tableName, applicationsEmailIndex, "email", strings.ToLower(email)))
	if err != nil {
		return nil, err
	}
	return fromPLNApplicationItems(items), nil
}

func (r *PLNApplicationDynamoRepository) ListByStatus(ctx context.Context, status entities.ApplicationStatus) ([]entities.PLNApplication, error) {
	items, err := queryAll[plnApplicationItem](ctx, r.ddb, indexQuery(r.tableName, applicationsStatusIndex, "status", string(status)))
	if err != nil {
		return nil, err
	}
	return fromPLNApplicationItems(items), nil
}

func (r *PLNApplicationDynamoRepository) List(ctx context.Context) ([]entities.PLNApplication, error) {
	items, err := scanAll[plnApplicationItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromPLNApplicationItems(items), nil
}

// Save replaces the stored application only if its updated_at still matches
// previous; otherwise it returns interfaces.ErrVersionConflict.
func (r *PLNApplicationDynamoRepository) Save(ctx context.Context, a entities.PLNApplication, previous entities.PLNApplication) (entities.PLNApplication, error) {
	av, err := attributevalue.MarshalMap(toPLNApplicationItem(a))
	if err != nil {
		return entities.PLNApplication{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #updated_at = :previous"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":previous": &types.AttributeValueMemberS{Value: formatTime(previous.UpdatedAt)},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.PLNApplication{}, interfaces.ErrVersionConflict
		}
		return entities.PLNApplication{}, err
	}
	return a, nil
}

func referenceKey(referenceID string) string {
	return strings.ToUpper(strings.TrimSpace(referenceID))
}

func toPLNApplicationItem(a entities.PLNApplication) plnApplicationItem {
	choices := make([]plateChoiceItem, 0, len(a.PlateChoices))
	for _, c := range a.PlateChoices {
		choices = append(choices, plateChoiceItem{Text: c.Text, Meaning: c.Meaning})
	}
	history := make([]statusHistoryItem, 0, len(a.StatusHistory))
	for _, h := range a.StatusHistory {
		history = append(history, statusHistoryItem{
			Status:    string(h.Status),
			Timestamp: formatTime(h.Timestamp),
			Comment:   h.Comment,
			ChangedBy: h.ChangedBy,
		})
	}
	return plnApplicationItem{
		ID:                a.ID,
		ReferenceID:       a.ReferenceID,
		ReferenceKey:      referenceKey(a.ReferenceID),
		TrackingPINHash:   a.TrackingPINHash,
		TransactionType:   a.TransactionType,
		IDType:            a.IDType,
		IDNumber:          a.IDNumber,
		Surname:           a.Surname,
		Initials:          a.Initials,
		BusinessName:      a.BusinessName,
		PostalAddress:     addressItem(a.PostalAddress),
		StreetAddress:     addressItem(a.StreetAddress),
		Email:             strings.ToLower(a.Email),
		CellNumber:        a.CellNumber,
		PlateFormat:       a.PlateFormat,
		Quantity:          a.Quantity,
		PlateChoices:      choices,
		VehicleRegNo:      a.VehicleRegNo,
		DocumentURL:       a.DocumentURL,
		DeclarationAt:     formatTime(a.DeclarationAt),
		DeclarationPlace:  a.DeclarationPlace,
		Status:            string(a.Status),
		StatusHistory:     history,
		AdminComments:     a.AdminComments,
		AssignedTo:        a.AssignedTo,
		PaymentDeadline:   formatTimePtr(a.PaymentDeadline),
		PaymentReceivedAt: formatTimePtr(a.PaymentReceivedAt),
		PaymentReference:  a.PaymentReference,
		PlatesOrderedAt:   formatTimePtr(a.PlatesOrderedAt),
		ReadyAt:           formatTimePtr(a.ReadyAt),
		CreatedAt:         formatTime(a.CreatedAt),
		UpdatedAt:         formatTime(a.UpdatedAt),
	}
}

func fromPLNApplicationItem(it plnApplicationItem) entities.PLNApplication {
	choices := make([]entities.PlateChoice, 0, len(it.PlateChoices))
	for _, c := range it.PlateChoices {
		choices = append(choices, entities.PlateChoice{Text: c.Text, Meaning: c.Meaning})
	}
	history := make([]entities.StatusHistoryEntry, 0, len(it.StatusHistory))
	for _, h := range it.StatusHistory {
		history = append(history, entities.StatusHistoryEntry{
			Status:    entities.ApplicationStatus(h.Status),
			Timestamp: parseTime(h.Timestamp),
			Comment:   h.Comment,
			ChangedBy: h.ChangedBy,
		})
	}
	return entities.PLNApplication{
		ID:                it.ID,
		ReferenceID:       it.ReferenceID,
		TrackingPINHash:   it.TrackingPINHash,
		TransactionType:   it.TransactionType,
		IDType:            it.IDType,
		IDNumber:          it.IDNumber,
		Surname:           it.Surname,
		Initials:          it.Initials,
		BusinessName:      it.BusinessName,
		PostalAddress:     entities.Address(it.PostalAddress),
		StreetAddress:     entities.Address(it.StreetAddress),
		Email:             it.Email,
		CellNumber:        it.CellNumber,
		PlateFormat:       it.PlateFormat,
		Quantity:          it.Quantity,
		PlateChoices:      choices,
		VehicleRegNo:      it.VehicleRegNo,
		DocumentURL:       it.DocumentURL,
		DeclarationAt:     parseTime(it.DeclarationAt),
		DeclarationPlace:  it.DeclarationPlace,
		Status:            entities.ApplicationStatus(it.Status),
		StatusHistory:     history,
		AdminComments:     it.AdminComments,
		AssignedTo:        it.AssignedTo,
		PaymentDeadline:   parseTimePtr(it.PaymentDeadline),
		PaymentReceivedAt: parseTimePtr(it.PaymentReceivedAt),
		PaymentReference:  it.PaymentReference,
		PlatesOrderedAt:   parseTimePtr(it.PlatesOrderedAt),
		ReadyAt:           parseTimePtr(it.ReadyAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

func fromPLNApplicationItems(items []plnApplicationItem) []entities.PLNApplication {
	out := make([]entities.PLNApplication, 0, len(items))
	for _, it := range items {
		out = append(out, fromPLNApplicationItem(it))
	}
	return out
}
