package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	auditRepo "salonadmin/database/repository/audit"
	"salonadmin/models"

	"github.com/hibiken/asynq"
)

const TypeBookingAudit = "booking:audit"

// AuditRecorder receives an entry for every successful booking mutation.
type AuditRecorder interface {
	Record(ctx context.Context, entry models.AuditEntry) error
}

// NewAuditTask wraps entry as an asynq task.
func NewAuditTask(entry models.AuditEntry) (*asynq.Task, error) {
	b, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingAudit, b, asynq.MaxRetry(3)), nil
}

// ParseAuditTask decodes the payload written by NewAuditTask.
func ParseAuditTask(task *asynq.Task) (models.AuditEntry, error) {
	var entry models.AuditEntry
	if err := json.Unmarshal(task.Payload(), &entry); err != nil {
		return models.AuditEntry{}, fmt.Errorf("invalid audit payload: %w", err)
	}
	return entry, nil
}

// Enqueuer is the part of *asynq.Client the queue recorder needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueRecorder hands entries to the audit worker through redis.
type QueueRecorder struct {
	Client Enqueuer
}

func (q *QueueRecorder) Record(ctx context.Context, entry models.AuditEntry) error {
	task, err := NewAuditTask(entry)
	if err != nil {
		return err
	}
	if _, err := q.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue audit task: %w", err)
	}
	return nil
}

// InlineRecorder appends entries to the audit trail directly.
type InlineRecorder struct {
	Repo auditRepo.AuditRepository
}

func (r *InlineRecorder) Record(ctx context.Context, entry models.AuditEntry) error {
	return r.Repo.Append(ctx, entry)
}
