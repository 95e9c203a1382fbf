package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stores a new contact message. It assigns an ID, sets the status to
// "unread", applies the subject default, and stamps CreatedAt.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.ID = uuid.NewString()
	msg.Status = model.ContactStatusUnread
	msg.CreatedAt = time.Now().UTC()
	if msg.Subject == "" {
		msg.Subject = model.DefaultContactSubject
	}
	return s.repo.Save(ctx, msg)
}

// List returns all contact messages, newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}

// GetByID returns a single message by ID.
func (s *contactServiceImpl) GetByID(ctx context.Context, id string) (*model.ContactMessage, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus changes the status of a contact message.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete removes a contact message permanently.
func (s *contactServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
