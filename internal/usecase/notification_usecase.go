package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"roads_authority/internal/domain/entities"
	"roads_authority/internal/usecase/interfaces"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidPushToken = errors.New("invalid push token")

var pushPlatforms = map[string]bool{"ios": true, "android": true, "web": true}

type INotificationUseCase interface {
	RegisterToken(ctx context.Context, token, platform, referenceID, secret string) (entities.PushToken, error)
	UnregisterToken(ctx context.Context, token string) error
	NotifyApplicationStatus(ctx context.Context, a entities.PLNApplication) error
}

// NotificationUseCase fans application status changes out to the devices
// bound to the application.
type NotificationUseCase struct {
	tokens       interfaces.IPushTokenRepository
	applications interfaces.IPLNApplicationRepository
	sender       interfaces.IPushSender
	now          func() time.Time
}

var (
	_ INotificationUseCase       = (*NotificationUseCase)(nil)
	_ interfaces.IStatusNotifier = (*NotificationUseCase)(nil)
)

func NewNotificationUseCase(tokens interfaces.IPushTokenRepository, applications interfaces.IPLNApplicationRepository, sender interfaces.IPushSender) *NotificationUseCase {
	return &NotificationUseCase{
		tokens:       tokens,
		applications: applications,
		sender:       sender,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// RegisterToken binds a device to the application identified by referenceID.
// secret is checked the same way as on the tracking screen.
func (u *NotificationUseCase) RegisterToken(ctx context.Context, token, platform, referenceID, secret string) (entities.PushToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.PushToken{}, ErrInvalidPushToken
	}
	platform = strings.ToLower(strings.TrimSpace(platform))
	if !pushPlatforms[platform] {
		return entities.PushToken{}, fmt.Errorf("%w: unsupported platform %q", ErrInvalidPushToken, platform)
	}
	referenceID = strings.TrimSpace(referenceID)
	if referenceID == "" {
		return entities.PushToken{}, ErrInvalidReferenceID
	}
	a, err := u.applications.GetByReference(ctx, referenceID)
	if err != nil {
		return entities.PushToken{}, err
	}
	if a.ID == "" {
		return entities.PushToken{}, ErrApplicationNotFound
	}
	if !matchesTrackingSecret(a, secret) {
		log.Printf("[notification][usecase] register secret rejected reference_id=%s", a.ReferenceID)
		return entities.PushToken{}, ErrInvalidTrackingSecret
	}

	now := u.now()
	return u.tokens.Upsert(ctx, entities.PushToken{
		Token:       token,
		Platform:    platform,
		ReferenceID: a.ReferenceID,
		Active:      true,
		LastUsed:    now,
		CreatedAt:   now,
	})
}

func (u *NotificationUseCase) UnregisterToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidPushToken
	}
	return u.tokens.Deactivate(ctx, token)
}

// NotifyApplicationStatus sends the current status of a to every active
// device bound to its reference. Tokens the provider rejects are deactivated.
func (u *NotificationUseCase) NotifyApplicationStatus(ctx context.Context, a entities.PLNApplication) error {
	if u.sender == nil || a.ReferenceID == "" {
		return nil
	}
	registered, err := u.tokens.ListActiveByReference(ctx, a.ReferenceID)
	if err != nil {
		return err
	}
	if len(registered) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(registered))
	for _, t := range registered {
		tokens = append(tokens, t.Token)
	}

	status := string(a.Status)
	msg := interfaces.PushMessage{
		Title: fmt.Sprintf("PLN %s: %s", a.ReferenceID, entities.Label(status)),
		Body:  entities.NextStepsMessage(status),
		Data: map[string]string{
			"type":         "pln_status",
			"reference_id": a.ReferenceID,
			"status":       string(entities.NormalizeStatus(status)),
		},
	}
	invalid, err := u.sender.Send(ctx, tokens, msg)
	if err != nil {
		return err
	}
	log.Printf("[notification][usecase] status push sent reference_id=%s devices=%d invalid=%d", a.ReferenceID, len(tokens), len(invalid))

	g, gctx := errgroup.WithContext(ctx)
	for _, t := range invalid {
		t := t
		g.Go(func() error { return u.tokens.Deactivate(gctx, t) })
	}
	return g.Wait()
}
