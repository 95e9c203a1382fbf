package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/internal/repository"
)

// projectServiceImpl is the production implementation of ProjectService.
type projectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectServiceImpl{repo: repo}
}

// Create は ID とタイムスタンプを採番してプロジェクトを保存する
func (s *projectServiceImpl) Create(ctx context.Context, project *model.Project) error {
	now := time.Now().UTC()
	project.ID = uuid.NewString()
	project.CreatedAt = now
	project.UpdatedAt = now
	return s.repo.Save(ctx, project)
}

// List はプロジェクト一覧を取得する
func (s *projectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.repo.List(ctx)
}

// GetByID は ID でプロジェクトを取得する
func (s *projectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Update は UpdatedAt を更新してプロジェクトを書き換える
func (s *projectServiceImpl) Update(ctx context.Context, project *model.Project) error {
	project.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, project)
}

// Delete はプロジェクトを削除する
func (s *projectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
