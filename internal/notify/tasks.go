// Package notify schedules and delivers staff notifications about contact form traffic
package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/assetmagnets/platform/internal/models"
)

// Task types and the queue they run on
const (
	TypeContactNew    = "contact:new"
	TypeContactDigest = "contact:digest"
	Queue             = "notifications"
)

// ContactNewPayload describes a freshly submitted contact message
type ContactNewPayload struct {
	MessageID string                 `json:"messageId"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Subject   string                 `json:"subject"`
	Priority  models.MessagePriority `json:"priority"`
}

// DigestPayload carries the time the digest was requested
type DigestPayload struct {
	RequestedAt time.Time `json:"requestedAt"`
}

// NewContactNewTask builds the task announcing msg
func NewContactNewTask(msg *models.ContactMessage) (*asynq.Task, error) {
	payload, err := json.Marshal(ContactNewPayload{
		MessageID: msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Priority:  msg.Priority,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contact payload: %w", err)
	}
	return asynq.NewTask(TypeContactNew, payload, asynq.Queue(Queue), asynq.MaxRetry(5)), nil
}

// NewDigestTask builds the digest task requested at at
func NewDigestTask(at time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(DigestPayload{RequestedAt: at})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal digest payload: %w", err)
	}
	return asynq.NewTask(TypeContactDigest, payload, asynq.Queue(Queue), asynq.MaxRetry(3)), nil
}

// TaskClient enqueues asynq tasks; *asynq.Client implements it
type TaskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer puts notification tasks on the queue
type Enqueuer struct {
	client TaskClient
}

// NewEnqueuer creates a new enqueuer
func NewEnqueuer(client TaskClient) *Enqueuer {
	return &Enqueuer{client: client}
}

// EnqueueContactMessage schedules the new-message notification for msg
func (e *Enqueuer) EnqueueContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	task, err := NewContactNewTask(msg)
	if err != nil {
		return err
	}
	if _, err := e.client.EnqueueContext(ctx, task, asynq.TaskID(TypeContactNew+":"+msg.ID)); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue contact notification: %w", err)
	}
	return nil
}

// EnqueueDigest schedules one digest per minute at most
func (e *Enqueuer) EnqueueDigest(ctx context.Context, at time.Time) error {
	task, err := NewDigestTask(at)
	if err != nil {
		return err
	}
	id := TypeContactDigest + ":" + at.UTC().Format("200601021504")
	if _, err := e.client.EnqueueContext(ctx, task, asynq.TaskID(id)); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue digest: %w", err)
	}
	return nil
}
