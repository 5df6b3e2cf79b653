package controllers

import (
	"net/http"
	"time"

	"github.com/damassweet/damas/app/jobs"
	"github.com/damassweet/damas/app/services"
	"github.com/damassweet/damas/pkg/queue"
	"github.com/damassweet/damas/pkg/response"
	"github.com/damassweet/damas/pkg/storage"
)

type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

// day reads ?date=YYYY-MM-DD, defaulting to today. Writes the 422 itself
// and returns false on a malformed date.
func day(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return time.Now().Format("2006-01-02"), true
	}
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		response.Error(w, http.StatusUnprocessableEntity, "date must be YYYY-MM-DD")
		return "", false
	}
	return raw, true
}

// Reconciliation returns the per-driver taken/delivered/difference report.
func (c *ReportController) Reconciliation(w http.ResponseWriter, r *http.Request) {
	date, ok := day(w, r)
	if !ok {
		return
	}

	report, err := c.service.Reconcile(date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	response.Success(w, report)
}

// Export queues a CSV export of the reconciliation report and answers 202
// with where the file will appear.
func (c *ReportController) Export(w http.ResponseWriter, r *http.Request) {
	date, ok := day(w, r)
	if !ok {
		return
	}

	if err := queue.Dispatch(jobs.ReconciliationExportJob{Date: date}); err != nil {
		writeServiceError(w, err)
		return
	}

	path := jobs.ExportPath(date)
	response.Accepted(w, map[string]string{
		"date": date,
		"path": path,
		"url":  storage.URL(path),
	})
}
