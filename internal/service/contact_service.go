package service

import (
	"context"

	"github.com/noievoi/backend/internal/model"
)

// ContactService defines the business logic for contact messages.
type ContactService interface {
	// Submit stores a new contact message. ID, status, subject default, and
	// CreatedAt are populated by the implementation.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns all contact messages, newest first.
	List(ctx context.Context) ([]*model.ContactMessage, error)

	// GetByID returns a single message or repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.ContactMessage, error)

	// UpdateStatus changes the status of a message. Status is the only
	// mutable field after creation.
	UpdateStatus(ctx context.Context, id, status string) error

	// Delete removes a message permanently.
	Delete(ctx context.Context, id string) error
}
