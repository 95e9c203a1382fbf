package service

import (
	"context"

	"github.com/noievoi/backend/internal/model"
)

// ServiceService defines the business logic for the services catalog.
// (The entity itself is called Service on the marketing site, hence the
// doubled name.)
type ServiceService interface {
	// Create stores a new service. ID, timestamps, defaults, and the
	// append-only display order are populated by the implementation.
	Create(ctx context.Context, svc *model.Service) error

	// List returns all services ordered by display position.
	List(ctx context.Context) ([]*model.Service, error)

	// GetByID returns a single service or repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Service, error)

	// Update replaces a service record and refreshes UpdatedAt.
	Update(ctx context.Context, svc *model.Service) error

	// Delete removes a service permanently. Display orders of the remaining
	// services are left untouched.
	Delete(ctx context.Context, id string) error
}
