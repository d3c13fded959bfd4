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
	defaultOfficesTableName = "offices"
	officesRegionIndex      = "region-index"
)

type coordinatesItem struct {
	Latitude  float64 `dynamodbav:"latitude"`
	Longitude float64 `dynamodbav:"longitude"`
}

type specialHoursItem struct {
	Date   string `dynamodbav:"date"`
	Reason string `dynamodbav:"reason"`
	Closed bool   `dynamodbav:"closed"`
	Open   string `dynamodbav:"open,omitempty"`
	Close  string `dynamodbav:"close,omitempty"`
}

type officeItem struct {
	ID             string             `dynamodbav:"id"`
	Name           string             `dynamodbav:"name"`
	Address        string             `dynamodbav:"address"`
	Region         string             `dynamodbav:"region"`
	Coordinates    *coordinatesItem   `dynamodbav:"coordinates,omitempty"`
	ContactNumber  string             `dynamodbav:"contact_number,omitempty"`
	Email          string             `dynamodbav:"email,omitempty"`
	Services       []string           `dynamodbav:"services,omitempty"`
	OperatingHours map[string]string  `dynamodbav:"operating_hours,omitempty"`
	ClosedDays     []string           `dynamodbav:"closed_days,omitempty"`
	SpecialHours   []specialHoursItem `dynamodbav:"special_hours,omitempty"`
	CreatedAt      string             `dynamodbav:"created_at"`
	UpdatedAt      string             `dynamodbav:"updated_at"`
}

// OfficeDynamoRepository persists offices in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: region-index (PK: region)
type OfficeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOfficeRepository = (*OfficeDynamoRepository)(nil)

func NewOfficeDynamoRepository(ddb DynamoAPI) *OfficeDynamoRepository {
	return &OfficeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OFFICES_TABLE", defaultOfficesTableName),
	}
}

func (r *OfficeDynamoRepository) Create(ctx context.Context, o entities.Office) (entities.Office, error) {
	if err := r.put(ctx, o, "attribute_not_exists(#id)"); err != nil {
		return entities.Office{}, err
	}
	return o, nil
}

func (r *OfficeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Office, error) {
	var it officeItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Office{}, err
	}
	return fromOfficeItem(it), nil
}

func (r *OfficeDynamoRepository) List(ctx context.Context, region string) ([]entities.Office, error) {
	var (
		items []officeItem
		err   error
	)
	if region == "" {
		items, err = scanAll[officeItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	} else {
		items, err = queryAll[officeItem](ctx, r.ddb, indexQuery(r.tableName, officesRegionIndex, "region", region))
	}
	if err != nil {
		return nil, err
	}
	out := make([]entities.Office, 0, len(items))
	for _, it := range items {
		out = append(out, fromOfficeItem(it))
	}
	return out, nil
}

// Update replaces an existing office; a missing office yields the zero value.
func (r *OfficeDynamoRepository) Update(ctx context.Context, o entities.Office) (entities.Office, error) {
	if err := r.put(ctx, o, "attribute_exists(#id)"); err != nil {
		if isConditionFailed(err) {
			return entities.Office{}, nil
		}
		return entities.Office{}, err
	}
	return o, nil
}

func (r *OfficeDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func (r *OfficeDynamoRepository) put(ctx context.Context, o entities.Office, condition string) error {
	av, err := attributevalue.MarshalMap(toOfficeItem(o))
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

func toOfficeItem(o entities.Office) officeItem {
	it := officeItem{
		ID:             o.ID,
		Name:           o.Name,
		Address:        o.Address,
		Region:         o.Region,
		ContactNumber:  o.ContactNumber,
		Email:          o.Email,
		Services:       o.Services,
		OperatingHours: o.OperatingHours,
		ClosedDays:     o.ClosedDays,
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
	}
	if o.Coordinates != nil {
		c := coordinatesItem(*o.Coordinates)
		it.Coordinates = &c
	}
	for _, s := range o.SpecialHours {
		it.SpecialHours = append(it.SpecialHours, specialHoursItem(s))
	}
	return it
}

func fromOfficeItem(it officeItem) entities.Office {
	o := entities.Office{
		ID:             it.ID,
		Name:           it.Name,
		Address:        it.Address,
		Region:         it.Region,
		ContactNumber:  it.ContactNumber,
		Email:          it.Email,
		Services:       it.Services,
		OperatingHours: it.OperatingHours,
		ClosedDays:     it.ClosedDays,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
	if it.Coordinates != nil {
		c := entities.Coordinates(*it.Coordinates)
		o.Coordinates = &c
	}
	for _, s := range it.SpecialHours {
		o.SpecialHours = append(o.SpecialHours, entities.SpecialHours(s))
	}
	return o
}
