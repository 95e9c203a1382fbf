package repository

import (
	"context"

	"github.com/noievoi/backend/internal/model"
)

// TeamRepository はチームメンバー永続化のインターフェース
type TeamRepository interface {
	Save(ctx context.Context, member *model.TeamMember) error
	List(ctx context.Context) ([]*model.TeamMember, error)
	GetByID(ctx context.Context, id string) (*model.TeamMember, error)
	Update(ctx context.Context, member *model.TeamMember) error
	Delete(ctx context.Context, id string) error
}
