package jobs

import (
	"github.com/Austinkuria/E-commerce-Site/pkg/event"
	"github.com/Austinkuria/E-commerce-Site/pkg/logger"
	"github.com/Austinkuria/E-commerce-Site/pkg/queue"
	"github.com/Austinkuria/E-commerce-Site/pkg/schedule"
)

// Boot registers job types with the queue, wires domain-event listeners, and
// schedules recurring sweeps. Call once at startup, before queue workers and
// the scheduler start.
func Boot() {
	queue.Register("*jobs.OrderConfirmationJob", func() queue.Job { return &OrderConfirmationJob{} })
	queue.Register("*jobs.CartReminderJob", func() queue.Job { return &CartReminderJob{} })

	event.Listen("order.placed", func(payload interface{}) {
		orderID, ok := payload.(uint)
		if !ok {
			logger.Error("jobs: order.placed payload is not an order id", "payload", payload)
			return
		}
		if err := queue.Dispatch(&OrderConfirmationJob{OrderID: orderID}); err != nil {
			logger.Error("jobs: dispatch order confirmation", "order_id", orderID, "error", err)
		}
	})

	schedule.Hourly().
		Name("carts.reminders").
		WithoutOverlapping().
		Run(SweepAbandonedCarts)
}
