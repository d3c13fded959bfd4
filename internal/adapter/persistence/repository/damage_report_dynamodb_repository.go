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
	defaultReportsTableName = "damage_reports"
	reportsDeviceIndex      = "device_id-index"
	reportsEmailIndex       = "user_email-index"
	reportsReferenceIndex   = "reference_code-index"
)

type damageReportItem struct {
	ID             string          `dynamodbav:"id"`
	ReferenceCode  string          `dynamodbav:"reference_code"`
	DeviceID       string          `dynamodbav:"device_id"`
	UserEmail      string          `dynamodbav:"user_email,omitempty"`
	Location       coordinatesItem `dynamodbav:"location"`
	RoadName       string          `dynamodbav:"road_name"`
	Town           string          `dynamodbav:"town"`
	Region         string          `dynamodbav:"region"`
	Description    string          `dynamodbav:"description,omitempty"`
	Severity       string          `dynamodbav:"severity,omitempty"`
	PhotoURL       string          `dynamodbav:"photo_url,omitempty"`
	RepairPhotoURL string          `dynamodbav:"repair_photo_url,omitempty"`
	Status         string          `dynamodbav:"status"`
	AssignedTo     string          `dynamodbav:"assigned_to,omitempty"`
	AdminNotes     string          `dynamodbav:"admin_notes,omitempty"`
	FixedAt        string          `dynamodbav:"fixed_at,omitempty"`
	CreatedAt      string          `dynamodbav:"created_at"`
	UpdatedAt      string          `dynamodbav:"updated_at"`
}

// DamageReportDynamoRepository persists road damage reports in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: device_id-index (PK: device_id)
//   - GSI: user_email-index (PK: user_email)
//   - GSI: reference_code-index (PK: reference_code, keys only)
type DamageReportDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDamageReportRepository = (*DamageReportDynamoRepository)(nil)

func NewDamageReportDynamoRepository(ddb DynamoAPI) *DamageReportDynamoRepository {
	return &DamageReportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DAMAGE_REPORTS_TABLE", defaultReportsTableName),
	}
}

func (r *DamageReportDynamoRepository) Create(ctx context.Context, rep entities.DamageReport) (entities.DamageReport, error) {
	if err := r.put(ctx, rep, "attribute_not_exists(#id)"); err != nil {
		return entities.DamageReport{}, err
	}
	return rep, nil
}

func (r *DamageReportDynamoRepository) GetByID(ctx context.Context, id string) (entities.DamageReport, error) {
	var it damageReportItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.DamageReport{}, err
	}
	return fromDamageReportItem(it), nil
}

func (r *DamageReportDynamoRepository) ExistsReferenceCode(ctx context.Context, code string) (bool, error) {
	q := indexQuery(r.tableName, reportsReferenceIndex, "reference_code", code)
	q.Select = types.SelectCount
	q.Limit = aws.Int32(1)
	out, err := r.ddb.Query(ctx, q)
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func (r *DamageReportDynamoRepository) ListByDeviceID(ctx context.Context, deviceID string) ([]entities.DamageReport, error) {
	return r.query(ctx, indexQuery(r.tableName, reportsDeviceIndex, "device_id", deviceID))
}

func (r *DamageReportDynamoRepository) ListByEmail(ctx context.Context, email string) ([]entities.DamageReport, error) {
	return r.query(ctx, indexQuery(r.tableName, reportsEmailIndex, "user_email", email))
}

func (r *DamageReportDynamoRepository) List(ctx context.Context) ([]entities.DamageReport, error) {
	items, err := scanAll[damageReportItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromDamageReportItems(items), nil
}

// Update replaces an existing report; a missing report yields the zero value.
func (r *DamageReportDynamoRepository) Update(ctx context.Context, rep entities.DamageReport) (entities.DamageReport, error) {
	if err := r.put(ctx, rep, "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return entities.DamageReport{}, nil
		}
		return entities.DamageReport{}, err
	}
	return rep, nil
}

func (r *DamageReportDynamoRepository) query(ctx context.Context, in *dynamodb.QueryInput) ([]entities.DamageReport, error) {
	items, err := queryAll[damageReportItem](ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	return fromDamageReportItems(items), nil
}

func (r *DamageReportDynamoRepository) put(ctx context.Context, rep entities.DamageReport, condition string) error {
	av, err := attributevalue.MarshalMap(toDamageReportItem(rep))
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

func toDamageReportItem(rep entities.DamageReport) damageReportItem {
	return damageReportItem{
		ID:             rep.ID,
		ReferenceCode:  rep.ReferenceCode,
		DeviceID:       rep.DeviceID,
		UserEmail:      rep.UserEmail,
		Location:       coordinatesItem(rep.Location),
		RoadName:       rep.RoadName,
		Town:           rep.Town,
		Region:         rep.Region,
		Description:    rep.Description,
		Severity:       string(rep.Severity),
		PhotoURL:       rep.PhotoURL,
		RepairPhotoURL: rep.RepairPhotoURL,
		Status:         string(rep.Status),
		AssignedTo:     rep.AssignedTo,
		AdminNotes:     rep.AdminNotes,
		FixedAt:        formatTimePtr(rep.FixedAt),
		CreatedAt:      formatTime(rep.CreatedAt),
		UpdatedAt:      formatTime(rep.UpdatedAt),
	}
}

func fromDamageReportItem(it damageReportItem) entities.DamageReport {
	return entities.DamageReport{
		ID:             it.ID,
		ReferenceCode:  it.ReferenceCode,
		DeviceID:       it.DeviceID,
		UserEmail:      it.UserEmail,
		Location:       entities.Coordinates(it.Location),
		RoadName:       it.RoadName,
		Town:           it.Town,
		Region:         it.Region,
		Description:    it.Description,
		Severity:       entities.Severity(it.Severity),
		PhotoURL:       it.PhotoURL,
		RepairPhotoURL: it.RepairPhotoURL,
		Status:         entities.ReportStatus(it.Status),
		AssignedTo:     it.AssignedTo,
		AdminNotes:     it.AdminNotes,
		FixedAt:        parseTimePtr(it.FixedAt),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}

func fromDamageReportItems(items []damageReportItem) []entities.DamageReport {
	out := make([]entities.DamageReport, 0, len(items))
	for _, it := range items {
		out = append(out, fromDamageReportItem(it))
	}
	return out
}
