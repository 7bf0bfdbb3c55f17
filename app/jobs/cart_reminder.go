package jobs

import (
	"fmt"
	"time"

	"github.com/Austinkuria/E-commerce-Site/app/repositories"
	"github.com/Austinkuria/E-commerce-Site/pkg/logger"
	"github.com/Austinkuria/E-commerce-Site/pkg/mail"
	"github.com/Austinkuria/E-commerce-Site/pkg/queue"
)

// staleCartAge is how long a cart must sit untouched before we nudge its owner.
const staleCartAge = 24 * time.Hour

// CartReminderJob emails one shopper about the items waiting in their cart.
type CartReminderJob struct {
	UserID uint `json:"user_id"`
}

func (j *CartReminderJob) Handle() error {
	user, err := repositories.NewUserRepository().FindByID(j.UserID)
	if err != nil {
		return fmt.Errorf("cart reminder: load user %d: %w", j.UserID, err)
	}

	if err := mail.To(user.Email).
		Subject("You left something in your cart").
		Body(fmt.Sprintf("<p>Hi %s, your cart is still waiting for you.</p>", user.Name)).
		Send(); err != nil {
		return fmt.Errorf("cart reminder: send to %s: %w", user.Email, err)
	}

	logger.Info("jobs: cart reminder sent", "user_id", j.UserID)
	return nil
}

// SweepAbandonedCarts queues a reminder for every non-empty cart that has not
// been touched for staleCartAge. Runs hourly from the scheduler.
func SweepAbandonedCarts() {
	carts, err := repositories.NewCartRepository().FindStale(time.Now().Add(-staleCartAge))
	if err != nil {
		logger.Error("jobs: stale cart sweep failed", "error", err)
		return
	}

	for _, cart := range carts {
		if err := queue.Dispatch(&CartReminderJob{UserID: cart.UserID}); err != nil {
			logger.Error("jobs: dispatch cart reminder", "user_id", cart.UserID, "error", err)
		}
	}

	if len(carts) > 0 {
		logger.Info("jobs: cart reminders queued", "count", len(carts))
	}
}
