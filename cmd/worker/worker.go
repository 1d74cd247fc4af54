package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/assetmagnets/platform/internal/models"
	"github.com/assetmagnets/platform/internal/notify"
)

// ContactMessageRepository defines the interface for contact message repository
type ContactMessageRepository interface {
	// ListNewSince retrieves unhandled messages the cursor has not reported yet, oldest first
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	ListNewSince(ctx context.Context, cursor models.DigestCursor) ([]*models.ContactMessage, error)
}

// Worker handles notification task processing
type Worker struct {
	logger      *zap.Logger
	messageRepo ContactMessageRepository
	cursor      notify.DigestCursor
	mailer      notify.Mailer
	notifyEmail string
}

// NewWorker creates a new worker instance
func NewWorker(
	logger *zap.Logger,
	messageRepo ContactMessageRepository,
	cursor notify.DigestCursor,
	mailer notify.Mailer,
	notifyEmail string,
) *Worker {
	return &Worker{
		logger:      logger,
		messageRepo: messageRepo,
		cursor:      cursor,
		mailer:      mailer,
		notifyEmail: notifyEmail,
	}
}

// HandleContactNew emails staff about one new contact message
func (w *Worker) HandleContactNew(ctx context.Context, t *asynq.Task) error {
	var payload notify.ContactNewPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to parse contact payload: %v: %w", err, asynq.SkipRetry)
	}

	subject, body, err := notify.RenderContactNew(payload)
	if err != nil {
		return fmt.Errorf("failed to render contact notification: %v: %w", err, asynq.SkipRetry)
	}

	if err := w.mailer.Send(w.notifyEmail, subject, body); err != nil {
		return err
	}

	w.logger.Info("Contact notification sent", zap.String("message_id", payload.MessageID))
	return nil
}

// HandleDigest emails staff a summary of messages received since the last digest
func (w *Worker) HandleDigest(ctx context.Context, t *asynq.Task) error {
	var payload notify.DigestPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to parse digest payload: %v: %w", err, asynq.SkipRetry)
	}

	cursor, err := w.cursor.Load(ctx)
	if err != nil {
		return err
	}

	messages, err := w.messageRepo.ListNewSince(ctx, cursor)
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		w.logger.Debug("No new contact messages for digest", zap.Time("since", cursor.CreatedAt))
		return nil
	}

	subject, body, err := notify.RenderDigest(messages, payload.RequestedAt)
	if err != nil {
		return fmt.Errorf("failed to render digest: %v: %w", err, asynq.SkipRetry)
	}

	if err := w.mailer.Send(w.notifyEmail, subject, body); err != nil {
		return err
	}

	next := cursor.Advance(messages)
	if err := w.cursor.Save(ctx, next); err != nil {
		return err
	}

	w.logger.Info("Contact digest sent", zap.Int("messages", len(messages)), zap.Time("cursor", next.CreatedAt))
	return nil
}
