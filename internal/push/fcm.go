package push

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/messaging"
)

// FCMSender sends notifications through Firebase Cloud Messaging.
type FCMSender struct {
	client *messaging.Client
}

func NewFCMSender(client *messaging.Client) *FCMSender {
	return &FCMSender{client: client}
}

func (s *FCMSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "sportlink_channel",
				Priority:  messaging.PriorityMax,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send FCM: %w", err)
	}

	log.Printf("✅ Notification sent to token: %s...", truncateToken(token))
	return nil
}

func truncateToken(token string) string {
	if len(token) > 20 {
		return token[:20]
	}
	return token
}
