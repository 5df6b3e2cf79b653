package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/damassweet/damas/app/jobs"
	"github.com/damassweet/damas/app/repositories"
	"github.com/damassweet/damas/app/services"
	"github.com/damassweet/damas/config"
	"github.com/damassweet/damas/pkg/cache"
	"github.com/damassweet/damas/pkg/logger"
	"github.com/damassweet/damas/pkg/queue"
	"github.com/damassweet/damas/pkg/storage"
)

var queueWorkersFlag int

// damas queue:work — run export jobs outside the web process.
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bootDB()
		if err != nil {
			return err
		}

		if err := cache.Connect(); err != nil {
			logger.Warn("queue:work: redis unavailable", "error", err)
		}
		storage.Connect()

		if config.QueueDriver() == "redis" && cache.RDB != nil {
			queue.SetDriver(queue.NewRedisDriver(cache.RDB))
		}
		queue.UseDB(db)

		reportService := services.NewReportService(
			repositories.NewStockRepository(db),
			repositories.NewOrderRepository(db),
			repositories.NewUserRepository(db),
		)
		jobs.Configure(reportService)

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

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 5, "Number of concurrent workers")
}
