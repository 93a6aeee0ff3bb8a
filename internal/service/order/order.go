package order

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/vmaksimov/storefront/internal/logging"
	"github.com/vmaksimov/storefront/internal/mail"
	"github.com/vmaksimov/storefront/internal/models"
)

var ErrNotFound = errors.New("not found")

type CartClearer interface {
	DeleteAll(ctx context.Context, userID uint) error
}

type UserReader interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

type Service struct {
	Cart  CartClearer
	Users UserReader
	Queue mail.Queue
}

// PlaceOrder hands one thank-you mail to the outbound queue and clears
// the cart. No order record is persisted. Delivery of the mail is the
// dispatcher's problem; this call only observes the enqueue.
func (s *Service) PlaceOrder(ctx context.Context, userID uint) error {
	user, err := s.Users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return err
	}

	msg := mail.OrderThankYou(user.ID, user.Name, user.Email)
	if err := s.Queue.Enqueue(ctx, msg); err != nil {
		return fmt.Errorf("enqueue thank-you mail: %w", err)
	}

	if err := s.Cart.DeleteAll(ctx, user.ID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	logging.FromContext(ctx).Info("order placed", "user_id", user.ID, "mail_id", msg.ID)
	return nil
}
