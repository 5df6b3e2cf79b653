// Package jobs holds the queued background jobs.
package jobs

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/damassweet/damas/app/services"
	"github.com/damassweet/damas/pkg/logger"
	"github.com/damassweet/damas/pkg/queue"
	"github.com/damassweet/damas/pkg/storage"
)

// ReconciliationExportName is the registry key workers use to deserialize
// the job.
const ReconciliationExportName = "jobs.ReconciliationExportJob"

var reports *services.ReportService

// Configure wires the job package to its collaborators and registers every
// job type. Call once at boot, before workers start.
func Configure(reportService *services.ReportService) {
	reports = reportService
	queue.Register(ReconciliationExportName, func() queue.Job {
		return &ReconciliationExportJob{}
	})
}

// ReconciliationExportJob writes one day's reconciliation report as a CSV
// file to the configured storage disk.
type ReconciliationExportJob struct {
	Date string `json:"date"`
}

// ExportPath returns where the CSV for a given day lands on the disk.
func ExportPath(day string) string {
	return "exports/reconciliation-" + day + ".csv"
}

func (j ReconciliationExportJob) Handle() error {
	if reports == nil {
		return fmt.Errorf("jobs: not configured")
	}

	rows, err := reports.Reconcile(j.Date)
	if err != nil {
		return fmt.Errorf("jobs: reconcile %s: %w", j.Date, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{
		"driver_id", "driver_name",
		"taken_small", "taken_medium", "taken_large", "taken",
		"delivered", "difference", "amount",
	})
	for _, r := range rows {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(r.DriverID), 10),
			r.DriverName,
			strconv.Itoa(r.TakenSmall),
			strconv.Itoa(r.TakenMedium),
			strconv.Itoa(r.TakenLarge),
			strconv.Itoa(r.Taken),
			strconv.Itoa(r.Delivered),
			strconv.Itoa(r.Difference),
			strconv.FormatFloat(r.Amount, 'f', 2, 64),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("jobs: write csv: %w", err)
	}

	path := ExportPath(j.Date)
	if err := storage.Put(path, buf.Bytes()); err != nil {
		return fmt.Errorf("jobs: store export: %w", err)
	}

	logger.Info("jobs: reconciliation exported", "date", j.Date, "path", path, "rows", len(rows))
	return nil
}
