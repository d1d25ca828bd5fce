package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/retail-hr/internal/domain/document"
)

type DocumentJobs struct {
	documentService document.DocumentService
	interval        time.Duration
}

func NewDocumentJobs(documentService document.DocumentService, interval time.Duration) *DocumentJobs {
	return &DocumentJobs{documentService: documentService, interval: interval}
}

func (j *DocumentJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("document_expiry_scan", j.interval, j.ScanExpiring)
}

// ScanExpiring logs every expired or expiring-soon document.
func (j *DocumentJobs) ScanExpiring(ctx context.Context) error {
	docs, err := j.documentService.ListExpiring(ctx)
	if err != nil {
		return fmt.Errorf("failed to list expiring documents: %w", err)
	}

	expired := 0
	for _, d := range docs {
		if d.ExpiryState == string(document.Expired) {
			expired++
		}
		slog.Warn("Cron: document needs renewal",
			"document_id", d.ID,
			"employee_id", d.EmployeeID,
			"employee_name", d.EmployeeName,
			"type", d.Type,
			"expiry_date", d.ExpiryDate,
			"state", d.ExpiryState,
		)
	}

	slog.Info("Cron: document expiry scan finished", "flagged", len(docs), "expired", expired)
	return nil
}
