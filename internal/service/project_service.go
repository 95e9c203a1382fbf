package service

import (
	"context"

	"github.com/noievoi/backend/internal/model"
)

// ProjectService defines the business logic for portfolio projects.
type ProjectService interface {
	// Create stores a new project. ID and timestamps are populated by the
	// implementation.
	Create(ctx context.Context, project *model.Project) error

	// List returns all projects, newest first.
	List(ctx context.Context) ([]*model.Project, error)

	// GetByID returns a single project or repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Project, error)

	// Update replaces a project record and refreshes UpdatedAt.
	Update(ctx context.Context, project *model.Project) error

	// Delete removes a project permanently.
	Delete(ctx context.Context, id string) error
}
