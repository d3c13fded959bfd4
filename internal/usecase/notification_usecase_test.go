package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"
	mock_interfaces "roads_authority/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type notificationFixture struct {
	tokens       *mock_interfaces.MockIPushTokenRepository
	applications *mock_interfaces.MockIPLNApplicationRepository
	sender       *mock_interfaces.MockIPushSender
}

func newTestNotificationUseCase(t *testing.T) (*NotificationUseCase, notificationFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := notificationFixture{
		tokens:       mock_interfaces.NewMockIPushTokenRepository(ctrl),
		applications: mock_interfaces.NewMockIPLNApplicationRepository(ctrl),
		sender:       mock_interfaces.NewMockIPushSender(ctrl),
	}
	uc := NewNotificationUseCase(f.tokens, f.applications, f.sender)
	uc.now = func() time.Time { return fixedNow }
	return uc, f
}

func TestNotificationUseCase_RegisterToken(t *testing.T) {
	stored := entities.PLNApplication{ID: "app-1", ReferenceID: testReference, IDNumber: "85010100123", Email: "applicant@example.com"}

	t.Run("binds token to the application", func(t *testing.T) {
		uc, f := newTestNotificationUseCase(t)
		f.applications.EXPECT().GetByReference(gomock.Any(), testReference).Return(stored, nil)
		f.tokens.EXPECT().Upsert(gomock.Any(), entities.PushToken{
			Token:       "fcm-abc",
			Platform:    "android",
			ReferenceID: testReference,
			Active:      true,
			LastUsed:    fixedNow,
			CreatedAt:   fixedNow,
		}).DoAndReturn(func(_ context.Context, p entities.PushToken) (entities.PushToken, error) { return p, nil })

		got, err := uc.RegisterToken(context.Background(), " fcm-abc ", "Android", " "+testReference+" ", "85010100123")
		require.NoError(t, err)
		assert.True(t, got.Active)
	})

	t.Run("wrong secret stores nothing", func(t *testing.T) {
		uc, f := newTestNotificationUseCase(t)
		f.applications.EXPECT().GetByReference(gomock.Any(), testReference).Return(stored, nil)

		_, err := uc.RegisterToken(context.Background(), "fcm-abc", "android", testReference, "applicant@example.com")
		assert.ErrorIs(t, err, ErrInvalidTrackingSecret)
	})

	t.Run("unknown reference", func(t *testing.T) {
		uc, f := newTestNotificationUseCase(t)
		f.applications.EXPECT().GetByReference(gomock.Any(), testReference).Return(entities.PLNApplication{}, nil)

		_, err := uc.RegisterToken(context.Background(), "fcm-abc", "android", testReference, "85010100123")
		assert.ErrorIs(t, err, ErrApplicationNotFound)
	})

	t.Run("reference required", func(t *testing.T) {
		uc, _ := newTestNotificationUseCase(t)
		_, err := uc.RegisterToken(context.Background(), "fcm-abc", "android", " ", "85010100123")
		assert.ErrorIs(t, err, ErrInvalidReferenceID)
	})

	t.Run("rejects empty token", func(t *testing.T) {
		uc, _ := newTestNotificationUseCase(t)
		_, err := uc.RegisterToken(context.Background(), "", "ios", testReference, "85010100123")
		assert.ErrorIs(t, err, ErrInvalidPushToken)
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		uc, _ := newTestNotificationUseCase(t)
		_, err := uc.RegisterToken(context.Background(), "tok", "symbian", testReference, "85010100123")
		assert.ErrorIs(t, err, ErrInvalidPushToken)
	})
}

func TestNotificationUseCase_UnregisterToken(t *testing.T) {
	uc, f := newTestNotificationUseCase(t)
	f.tokens.EXPECT().Deactivate(gomock.Any(), "tok").Return(nil)

	assert.NoError(t, uc.UnregisterToken(context.Background(), " tok "))
	assert.ErrorIs(t, uc.UnregisterToken(context.Background(), " "), ErrInvalidPushToken)
}

func TestNotificationUseCase_NotifyApplicationStatus(t *testing.T) {
	app := entities.PLNApplication{
		ID:          "app-1",
		ReferenceID: testReference,
		Email:       "Applicant@Example.com",
		Status:      entities.ApplicationStatusPaymentPending,
	}

	t.Run("sends to devices bound to the reference and deactivates rejected tokens", func(t *testing.T) {
		uc, f := newTestNotificationUseCase(t)
		f.tokens.EXPECT().ListActiveByReference(gomock.Any(), testReference).Return([]entities.PushToken{
			{Token: "good"}, {Token: "stale"},
		}, nil)
		f.sender.EXPECT().Send(gomock.Any(), []string{"good", "stale"}, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ []string, msg interfaces.PushMessage) ([]string, error) {
				assert.Equal(t, "PLN "+testReference+": Payment Pending", msg.Title)
				assert.Equal(t, entities.NextStepsMessage(string(entities.ApplicationStatusPaymentPending)), msg.Body)
				assert.Equal(t, "PAYMENT_PENDING", msg.Data["status"])
				assert.Equal(t, testReference, msg.Data["reference_id"])
				return []string{"stale"}, nil
			},
		)
		f.tokens.EXPECT().Deactivate(gomock.Any(), "stale").Return(nil)

		require.NoError(t, uc.NotifyApplicationStatus(context.Background(), app))
	})

	t.Run("no devices", func(t *testing.T) {
		uc, f := newTestNotificationUseCase(t)
		f.tokens.EXPECT().ListActiveByReference(gomock.Any(), testReference).Return(nil, nil)

		assert.NoError(t, uc.NotifyApplicationStatus(context.Background(), app))
	})

	t.Run("no reference", func(t *testing.T) {
		uc, _ := newTestNotificationUseCase(t)
		noReference := app
		noReference.ReferenceID = ""
		assert.NoError(t, uc.NotifyApplicationStatus(context.Background(), noReference))
	})

	t.Run("no sender configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := NewNotificationUseCase(mock_interfaces.NewMockIPushTokenRepository(ctrl), mock_interfaces.NewMockIPLNApplicationRepository(ctrl), nil)
		assert.NoError(t, uc.NotifyApplicationStatus(context.Background(), app))
	})

	t.Run("send error", func(t *testing.T) {
		uc, f := newTestNotificationUseCase(t)
		f.tokens.EXPECT().ListActiveByReference(gomock.Any(), gomock.Any()).Return([]entities.PushToken{{Token: "good"}}, nil)
		f.sender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("fcm unavailable"))

		assert.EqualError(t, uc.NotifyApplicationStatus(context.Background(), app), "fcm unavailable")
	})
}
