package notif

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	"pawshare/internal/common"
	"pawshare/internal/dbmysql"
)

// ErrPermanentFailure marks a delivery rejection that will never
// succeed again for this subscription; the engine prunes it.
var ErrPermanentFailure = errors.New("permanent push delivery failure")

// PushPayload is the message handed to the transport.
type PushPayload struct {
	Type    common.NotificationType
	Title   string
	Message string
}

// PushTransport delivers one payload to one subscription. A permanent
// rejection wraps ErrPermanentFailure; anything else is transient.
type PushTransport interface {
	Send(ctx context.Context, sub *dbmysql.PushSubscription, payload PushPayload) error
}

// FCMTransport delivers over Firebase Cloud Messaging. The
// subscription's endpoint column carries the FCM registration token.
type FCMTransport struct {
	client *messaging.Client
}

// NewFCMTransport wraps an initialized messaging client.
func NewFCMTransport(client *messaging.Client) *FCMTransport {
	return &FCMTransport{client: client}
}

func (t *FCMTransport) Send(ctx context.Context, sub *dbmysql.PushSubscription, payload PushPayload) error {
	msg := &messaging.Message{
		Token: sub.Endpoint,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Message,
		},
		Data: map[string]string{
			"type": string(payload.Type),
		},
	}

	if _, err := t.client.Send(ctx, msg); err != nil {
		if messaging.IsRegistrationTokenNotRegistered(err) || messaging.IsInvalidArgument(err) {
			return fmt.Errorf("token %s: %v: %w", sub.Endpoint, err, ErrPermanentFailure)
		}
		return fmt.Errorf("fcm send: %w", err)
	}
	return nil
}
