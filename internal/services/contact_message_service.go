package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/assetmagnets/platform/internal/models"
)

// NotificationEnqueuer schedules staff notifications
type NotificationEnqueuer interface {
	// Method EnqueueContactMessage schedules the new-message notification for a stored contact message.
	//
	// If the queue is unreachable, the error will be returned.
	EnqueueContactMessage(ctx context.Context, msg *models.ContactMessage) error
}

// contactMessageService adds defaults and staff notification to contact message creation
type contactMessageService struct {
	*entityService[*models.ContactMessage]
	notifier NotificationEnqueuer
}

// NewContactMessageService creates a new contact message service
//
// notifier may be nil, in which case no notification is scheduled.
func NewContactMessageService(repo EntityRepository[*models.ContactMessage], notifier NotificationEnqueuer, logger *zap.Logger) *contactMessageService {
	return &contactMessageService{
		entityService: NewEntityService(repo, logger),
		notifier:      notifier,
	}
}

// Create stores a contact form submission and schedules a staff notification
//
// A failing notification is logged and does not fail the submission.
func (s *contactMessageService) Create(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	msg.Status = ""
	msg.Priority = priorityOrDefault(msg.Priority)
	msg.ApplyDefaults()
	msg.Email = models.NormalizeEmail(msg.Email)

	stored, err := s.entityService.Create(ctx, msg)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.EnqueueContactMessage(ctx, stored); err != nil {
			s.logger.Warn("failed to enqueue contact notification",
				zap.String("messageId", stored.ID),
				zap.Error(err),
			)
		}
	}

	return stored, nil
}

// priorityOrDefault keeps a known priority and drops anything else
func priorityOrDefault(p models.MessagePriority) models.MessagePriority {
	switch p {
	case models.MessagePriorityLow, models.MessagePriorityMedium, models.MessagePriorityHigh:
		return p
	}
	return ""
}

// Update replaces a contact message
//
// Status and priority default like on creation when omitted.
func (s *contactMessageService) Update(ctx context.Context, id string, msg *models.ContactMessage) (*models.ContactMessage, error) {
	msg.ApplyDefaults()
	msg.Email = models.NormalizeEmail(msg.Email)
	return s.entityService.Update(ctx, id, msg)
}
