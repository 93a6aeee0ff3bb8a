package mail

import (
	"context"

	"github.com/google/uuid"
)

// Message is one outbound email job. Delivery is at-least-once and
// owned by the downstream mail worker; callers only observe enqueue.
type Message struct {
	ID       uuid.UUID `json:"id"`
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Template string    `json:"template"`
	UserID   uint      `json:"user_id"`
	UserName string    `json:"user_name"`
}

func OrderThankYou(userID uint, name, email string) Message {
	return Message{
		ID:       uuid.New(),
		To:       email,
		Subject:  "Thank you for your order!",
		Template: "order_thank_you",
		UserID:   userID,
		UserName: name,
	}
}

type Queue interface {
	Enqueue(ctx context.Context, msg Message) error
}
