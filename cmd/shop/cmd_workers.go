package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Austinkuria/E-commerce-Site/app/jobs"
	"github.com/Austinkuria/E-commerce-Site/pkg/cache"
	"github.com/Austinkuria/E-commerce-Site/pkg/database"
	"github.com/Austinkuria/E-commerce-Site/pkg/logger"
	"github.com/Austinkuria/E-commerce-Site/pkg/queue"
	"github.com/Austinkuria/E-commerce-Site/pkg/schedule"
)

var queueWorkersFlag int

// bootWorkers prepares the shared state workers need: database, redis queue
// driver when available, and the registered job types.
func bootWorkers() error {
	if err := bootDB(); err != nil {
		return err
	}

	if err := cache.Connect(); err != nil {
		logger.Warn("workers: redis unavailable, using in-memory queue", "error", err)
	} else {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}

	queue.UseDB(database.DB)
	jobs.Boot()
	return nil
}

// shop queue:work
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootWorkers(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 5
		}

		fmt.Printf("Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\nQueue worker stopped.")
		return nil
	},
}

// shop schedule:run
var scheduleRunCmd = &cobra.Command{
	Use:   "schedule:run",
	Short: "Start the task scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootWorkers(); err != nil {
			return err
		}

		tasks := schedule.List()
		if len(tasks) == 0 {
			fmt.Println("No scheduled tasks registered.")
		} else {
			fmt.Println("Registered scheduled tasks:")
			for _, t := range tasks {
				fmt.Println("  •", t)
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Println("Scheduler started. Press Ctrl+C to stop.")
		schedule.Start(ctx)

		<-ctx.Done()
		fmt.Println("\nScheduler stopped.")
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 5, "Number of concurrent workers")
}
