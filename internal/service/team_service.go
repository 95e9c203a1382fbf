package service

import (
	"context"

	"github.com/noievoi/backend/internal/model"
)

// TeamService defines the business logic for team members.
type TeamService interface {
	// Create stores a new team member. ID and the avatar color default are
	// populated by the implementation.
	Create(ctx context.Context, member *model.TeamMember) error

	// List returns all team members in alphabetical order.
	List(ctx context.Context) ([]*model.TeamMember, error)

	// GetByID returns a single member or repository.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.TeamMember, error)

	// Update replaces a team member record.
	Update(ctx context.Context, member *model.TeamMember) error

	// Delete removes a team member permanently.
	Delete(ctx context.Context, id string) error
}
