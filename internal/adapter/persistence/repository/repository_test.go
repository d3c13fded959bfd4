package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo records the last request of each kind and answers from the
// configured functions.
type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItem func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan       func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return f.deleteItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scan(in)
}

var stamp = time.Date(2026, 4, 14, 10, 0, 0, 123456000, time.UTC)

func sampleApplication() entities.PLNApplication {
	deadline := stamp.AddDate(0, 0, 21)
	return entities.PLNApplication{
		ID:            "app-1",
		ReferenceID:   "PLN-2026-ABCDEF123456",
		IDType:        entities.IDTypeNamibiaID,
		IDNumber:      "85010100123",
		Surname:       "Shikongo",
		Initials:      "T",
		PostalAddress: entities.Address{Line1: "PO Box 1", Line2: "Windhoek"},
		StreetAddress: entities.Address{Line1: "1 Independence Ave"},
		Email:         "Applicant@Example.com",
		PlateFormat:   "Standard",
		Quantity:      2,
		PlateChoices:  []entities.PlateChoice{{Text: "NAMIB1", Meaning: "home"}},
		Status:        entities.ApplicationStatusPaymentPending,
		StatusHistory: []entities.StatusHistoryEntry{
			{Status: entities.ApplicationStatusSubmitted, Timestamp: stamp, ChangedBy: "System"},
		},
		PaymentDeadline: &deadline,
		CreatedAt:       stamp,
		UpdatedAt:       stamp,
	}
}

func TestPLNApplicationRepository_GetByReference(t *testing.T) {
	av, err := attributevalue.MarshalMap(toPLNApplicationItem(sampleApplication()))
	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "applicant@example.com"}, av["email"])

	var got *dynamodb.QueryInput
	repo := NewPLNApplicationDynamoRepository(&fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			got = in
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
		},
	})

	a, err := repo.GetByReference(context.Background(), " pln-2026-abcdef123456 ")
	require.NoError(t, err)
	assert.Equal(t, applicationsReferenceIndex, aws.ToString(got.IndexName))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "PLN-2026-ABCDEF123456"}, got.ExpressionAttributeValues[":v"])

	assert.Equal(t, "app-1", a.ID)
	assert.Equal(t, entities.ApplicationStatusPaymentPending, a.Status)
	assert.Equal(t, "Windhoek", a.PostalAddress.Line2)
	require.Len(t, a.StatusHistory, 1)
	assert.True(t, stamp.Equal(a.StatusHistory[0].Timestamp))
	require.NotNil(t, a.PaymentDeadline)
	assert.True(t, stamp.AddDate(0, 0, 21).Equal(*a.PaymentDeadline))
	assert.Nil(t, a.PaymentReceivedAt)
}

func TestPLNApplicationRepository_GetByID_NotFound(t *testing.T) {
	repo := NewPLNApplicationDynamoRepository(&fakeDynamo{
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	})
	a, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, a.ID)
}

func TestPLNApplicationRepository_Save(t *testing.T) {
	previous := sampleApplication()
	next := previous
	next.Status = entities.ApplicationStatusPaid
	next.UpdatedAt = stamp.Add(time.Hour)

	t.Run("conditions on previous updated_at", func(t *testing.T) {
		var got *dynamodb.PutItemInput
		repo := NewPLNApplicationDynamoRepository(&fakeDynamo{
			putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				got = in
				return &dynamodb.PutItemOutput{}, nil
			},
		})
		saved, err := repo.Save(context.Background(), next, previous)
		require.NoError(t, err)
		assert.Equal(t, entities.ApplicationStatusPaid, saved.Status)
		assert.Contains(t, aws.ToString(got.ConditionExpression), "#updated_at = :previous")
		assert.Equal(t, &types.AttributeValueMemberS{Value: formatTime(stamp)}, got.ExpressionAttributeValues[":previous"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: formatTime(next.UpdatedAt)}, got.Item["updated_at"])
	})

	t.Run("conflict", func(t *testing.T) {
		repo := NewPLNApplicationDynamoRepository(&fakeDynamo{
			putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("changed")}
			},
		})
		_, err := repo.Save(context.Background(), next, previous)
		assert.ErrorIs(t, err, interfaces.ErrVersionConflict)
	})
}

func TestQueryAll_FollowsPages(t *testing.T) {
	calls := 0
	repo := NewPLNPaymentDynamoRepository(&fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			item, _ := attributevalue.MarshalMap(plnPaymentItem{ID: "p" + string(rune('0'+calls)), ReferenceID: "PLN-1", Status: "approved", Date: formatTime(stamp)})
			if calls == 1 {
				assert.Nil(t, in.ExclusiveStartKey)
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}, LastEvaluatedKey: idKey("p1")}, nil
			}
			assert.Equal(t, idKey("p1"), in.ExclusiveStartKey)
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
		},
	})

	payments, err := repo.ListByReferenceID(context.Background(), "PLN-1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, payments, 2)
	assert.Equal(t, "p2", payments[1].ID)
	assert.Equal(t, entities.PaymentStatusApproved, payments[0].Status)
}

func TestOfficeRepository_ListAndDelete(t *testing.T) {
	item, err := attributevalue.MarshalMap(toOfficeItem(entities.Office{
		ID: "wdh", Name: "Windhoek", Region: "Khomas",
		Coordinates: &entities.Coordinates{Latitude: -22.56, Longitude: 17.07},
	}))
	require.NoError(t, err)

	scanned, queried := false, false
	repo := NewOfficeDynamoRepository(&fakeDynamo{
		scan: func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			scanned = true
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{item}}, nil
		},
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			queried = true
			assert.Equal(t, officesRegionIndex, aws.ToString(in.IndexName))
			return &dynamodb.QueryOutput{}, nil
		},
		deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			return &dynamodb.DeleteItemOutput{}, nil
		},
	})

	all, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].Coordinates)
	assert.Equal(t, 17.07, all[0].Coordinates.Longitude)

	_, err = repo.List(context.Background(), "Erongo")
	require.NoError(t, err)
	assert.True(t, scanned)
	assert.True(t, queried)

	deleted, err := repo.Delete(context.Background(), "gone")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPushTokenRepository_Upsert(t *testing.T) {
	var got *dynamodb.UpdateItemInput
	repo := NewPushTokenDynamoRepository(&fakeDynamo{
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			got = in
			attrs, _ := attributevalue.MarshalMap(pushTokenItem{Token: "tok", Platform: "ios", Active: true, LastUsed: formatTime(stamp), CreatedAt: formatTime(stamp)})
			return &dynamodb.UpdateItemOutput{Attributes: attrs}, nil
		},
	})

	tok, err := repo.Upsert(context.Background(), entities.PushToken{Token: "tok", Platform: "ios", Active: true, LastUsed: stamp, CreatedAt: stamp})
	require.NoError(t, err)
	assert.True(t, tok.Active)
	assert.True(t, strings.HasSuffix(aws.ToString(got.UpdateExpression), "REMOVE #reference"))
	assert.Contains(t, aws.ToString(got.UpdateExpression), "if_not_exists(#created_at, :created_at)")

	_, err = repo.Upsert(context.Background(), entities.PushToken{Token: "tok", Platform: "ios", ReferenceID: "PLN-2026-ABC", Active: true})
	require.NoError(t, err)
	assert.Contains(t, aws.ToString(got.UpdateExpression), "#reference = :reference")
	assert.Equal(t, &types.AttributeValueMemberS{Value: "PLN-2026-ABC"}, got.ExpressionAttributeValues[":reference"])
}

func TestPushTokenRepository_ListActiveByReference(t *testing.T) {
	repo := NewPushTokenDynamoRepository(&fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, pushTokensReferenceIndex, aws.ToString(in.IndexName))
			assert.Equal(t, &types.AttributeValueMemberS{Value: "PLN-2026-ABC"}, in.ExpressionAttributeValues[":v"])
			assert.Equal(t, "#active = :true", aws.ToString(in.FilterExpression))
			item, _ := attributevalue.MarshalMap(pushTokenItem{Token: "tok", Platform: "android", ReferenceID: "PLN-2026-ABC", Active: true})
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item}}, nil
		},
	})

	got, err := repo.ListActiveByReference(context.Background(), "PLN-2026-ABC")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PLN-2026-ABC", got[0].ReferenceID)
}

func TestPushTokenRepository_DeactivateUnknown(t *testing.T) {
	repo := NewPushTokenDynamoRepository(&fakeDynamo{
		updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
	})
	assert.NoError(t, repo.Deactivate(context.Background(), "unknown"))
}

func TestDamageReportRepository_ExistsReferenceCode(t *testing.T) {
	repo := NewDamageReportDynamoRepository(&fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, types.SelectCount, in.Select)
			return &dynamodb.QueryOutput{Count: 1}, nil
		},
	})
	exists, err := repo.ExistsReferenceCode(context.Background(), "RA-PT-20260414-000001")
	require.NoError(t, err)
	assert.True(t, exists)
}
