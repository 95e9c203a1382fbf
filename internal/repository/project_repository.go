package repository

import (
	"context"

	"github.com/noievoi/backend/internal/model"
)

// ProjectRepository はプロジェクト永続化のインターフェース
type ProjectRepository interface {
	Save(ctx context.Context, project *model.Project) error
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
}
