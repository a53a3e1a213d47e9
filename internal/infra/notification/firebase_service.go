package notification

import (
	"context"
	"fmt"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messageSender is the slice of *messaging.Client used here
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	token  string
	topic  string
}

// NewFirebaseService creates a new Firebase notification service instance that
// addresses the customer's device token, or the topic when no token is set
func NewFirebaseService(ctx context.Context, credentialsPath, token, topic string) (service.NotificationService, error) {
	if token == "" && topic == "" {
		return nil, fmt.Errorf("either device token or topic is required")
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return newFirebaseService(client, token, topic), nil
}

func newFirebaseService(client messageSender, token, topic string) *firebaseService {
	return &firebaseService{
		client: client,
		token:  token,
		topic:  topic,
	}
}

// Send pushes a single notification to the configured target
func (s *firebaseService) Send(ctx context.Context, n entity.Notification) error {
	message := &messaging.Message{
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: map[string]string{
			"kind":        string(n.Kind),
			"delivery_id": n.DeliveryID,
		},
	}
	if s.token != "" {
		message.Token = s.token
	} else {
		message.Topic = s.topic
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
