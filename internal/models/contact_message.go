package models

import (
	"slices"
	"time"
)

// MessageStatus is the processing state of a contact message
type MessageStatus string

// MessageStatus constants
const (
	MessageStatusNew      MessageStatus = "new"
	MessageStatusRead     MessageStatus = "read"
	MessageStatusReplied  MessageStatus = "replied"
	MessageStatusArchived MessageStatus = "archived"
)

// MessagePriority is the triage priority of a contact message
type MessagePriority string

// MessagePriority constants
const (
	MessagePriorityLow    MessagePriority = "low"
	MessagePriorityMedium MessagePriority = "medium"
	MessagePriorityHigh   MessagePriority = "high"
)

// ContactMessage is a submission of the public contact form
type ContactMessage struct {
	Base
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Subject  string          `json:"subject"`
	Message  string          `json:"message"`
	Status   MessageStatus   `json:"status"`
	Priority MessagePriority `json:"priority"`
}

// ApplyDefaults fills status and priority of a new submission
func (m *ContactMessage) ApplyDefaults() {
	if m.Status == "" {
		m.Status = MessageStatusNew
	}
	if m.Priority == "" {
		m.Priority = MessagePriorityMedium
	}
}

// Validate implements Record
func (m *ContactMessage) Validate() error {
	if err := required("name", m.Name); err != nil {
		return err
	}
	if err := required("email", m.Email); err != nil {
		return err
	}
	if !ValidEmail(NormalizeEmail(m.Email)) {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	if err := required("message", m.Message); err != nil {
		return err
	}
	if err := oneOf("status", m.Status, MessageStatusNew, MessageStatusRead, MessageStatusReplied, MessageStatusArchived); err != nil {
		return err
	}
	return oneOf("priority", m.Priority, MessagePriorityLow, MessagePriorityMedium, MessagePriorityHigh)
}

// DigestCursor marks the newest contact messages already reported in a digest
//
// created_at has one second precision, so the IDs reported within that second are kept
// and the next digest starts at CreatedAt inclusive.
type DigestCursor struct {
	CreatedAt time.Time `json:"createdAt"`
	IDs       []string  `json:"ids,omitempty"`
}

// Reported reports whether m was part of an earlier digest
func (c DigestCursor) Reported(m *ContactMessage) bool {
	return m.CreatedAt.Equal(c.CreatedAt) && slices.Contains(c.IDs, m.ID)
}

// Advance returns the cursor after reporting messages, which must be ordered oldest first
func (c DigestCursor) Advance(messages []*ContactMessage) DigestCursor {
	if len(messages) == 0 {
		return c
	}

	next := DigestCursor{CreatedAt: messages[len(messages)-1].CreatedAt}
	if next.CreatedAt.Equal(c.CreatedAt) {
		next.IDs = slices.Clone(c.IDs)
	}
	for _, m := range messages {
		if m.CreatedAt.Equal(next.CreatedAt) {
			next.IDs = append(next.IDs, m.ID)
		}
	}
	return next
}
