package cron

import (
	"context"
	"errors"
	"testing"

	auditRepo "salonadmin/database/repository/audit"
	kvRepo "salonadmin/database/repository/kv"
	"salonadmin/models"
	"salonadmin/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func TestHandleAuditTaskAppends(t *testing.T) {
	repo := auditRepo.NewKVAuditRepo(kvRepo.NewMemoryStore())
	handler := HandleAuditTask(repo, zap.NewNop())

	task, err := tasks.NewAuditTask(models.AuditEntry{Action: models.AuditDelete, BookingID: 2, AdminID: 130208292})
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	if err := handler(context.Background(), task); err != nil {
		t.Fatalf("handle: %v", err)
	}

	entries, _ := repo.List(context.Background())
	if len(entries) != 1 || entries[0].BookingID != 2 || entries[0].Action != models.AuditDelete {
		t.Fatalf("unexpected trail %+v", entries)
	}
}

func TestHandleAuditTaskSkipsRetryOnGarbage(t *testing.T) {
	repo := auditRepo.NewKVAuditRepo(kvRepo.NewMemoryStore())
	handler := HandleAuditTask(repo, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingAudit, []byte("not json")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
}
