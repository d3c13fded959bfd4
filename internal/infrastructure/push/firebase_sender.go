package push

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"

	"roads_authority/internal/usecase/interfaces"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit for one multicast request.
const maxMulticastTokens = 500

const androidChannelID = "pln_status_updates"

var ErrFirebaseNotConfigured = errors.New("firebase credentials not configured")

type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// FirebaseSender delivers push messages through Firebase Cloud Messaging.
type FirebaseSender struct {
	client multicastClient
}

var _ interfaces.IPushSender = (*FirebaseSender)(nil)

// NewFirebaseSender builds an FCM client from FIREBASE_CREDENTIALS_BASE64 or
// FIREBASE_CREDENTIALS_FILE. FIREBASE_PROJECT_ID overrides the project in the
// credentials.
func NewFirebaseSender(ctx context.Context) (*FirebaseSender, error) {
	var opt option.ClientOption
	switch {
	case os.Getenv("FIREBASE_CREDENTIALS_BASE64") != "":
		decoded, err := base64.StdEncoding.DecodeString(os.Getenv("FIREBASE_CREDENTIALS_BASE64"))
		if err != nil {
			return nil, fmt.Errorf("decode FIREBASE_CREDENTIALS_BASE64: %w", err)
		}
		log.Printf("[push][firebase] using credentials from base64 env")
		opt = option.WithCredentialsJSON(decoded)
	case os.Getenv("FIREBASE_CREDENTIALS_FILE") != "":
		log.Printf("[push][firebase] using credentials file=%s", os.Getenv("FIREBASE_CREDENTIALS_FILE"))
		opt = option.WithCredentialsFile(os.Getenv("FIREBASE_CREDENTIALS_FILE"))
	default:
		return nil, ErrFirebaseNotConfigured
	}

	var cfg *firebase.Config
	if projectID := os.Getenv("FIREBASE_PROJECT_ID"); projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}
	app, err := firebase.NewApp(ctx, cfg, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase messaging: %w", err)
	}
	return &FirebaseSender{client: client}, nil
}

// Send multicasts msg to tokens in batches and returns the tokens FCM
// reported as no longer registered.
func (s *FirebaseSender) Send(ctx context.Context, tokens []string, msg interfaces.PushMessage) ([]string, error) {
	var invalid []string
	for start := 0; start < len(tokens); start += maxMulticastTokens {
		end := start + maxMulticastTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		resp, err := s.client.SendEachForMulticast(ctx, multicastMessage(batch, msg))
		if err != nil {
			log.Printf("[push][firebase] multicast failed tokens=%d err=%v", len(batch), err)
			return invalid, err
		}
		for i, r := range resp.Responses {
			if r.Success || r.Error == nil {
				continue
			}
			if messaging.IsUnregistered(r.Error) || messaging.IsInvalidArgument(r.Error) {
				invalid = append(invalid, batch[i])
				continue
			}
			log.Printf("[push][firebase] delivery failed err=%v", r.Error)
		}
		log.Printf("[push][firebase] multicast sent success=%d failure=%d", resp.SuccessCount, resp.FailureCount)
	}
	return invalid, nil
}

func multicastMessage(tokens []string, msg interfaces.PushMessage) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     "default",
				ChannelID: androidChannelID,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{Title: msg.Title, Body: msg.Body},
					Sound: "default",
				},
			},
		},
	}
}
