package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/internal/repository"
)

// teamServiceImpl is the production implementation of TeamService.
type teamServiceImpl struct {
	repo repository.TeamRepository
}

// NewTeamService creates a TeamService backed by the given repository.
func NewTeamService(repo repository.TeamRepository) TeamService {
	return &teamServiceImpl{repo: repo}
}

// Create は ID を採番し、アバター色のデフォルトを適用してメンバーを保存する
func (s *teamServiceImpl) Create(ctx context.Context, member *model.TeamMember) error {
	member.ID = uuid.NewString()
	if member.ImageColor == "" {
		member.ImageColor = model.DefaultImageColor
	}
	return s.repo.Save(ctx, member)
}

// List はメンバー一覧を名前順で取得する
func (s *teamServiceImpl) List(ctx context.Context) ([]*model.TeamMember, error) {
	return s.repo.List(ctx)
}

// GetByID は ID でメンバーを取得する
func (s *teamServiceImpl) GetByID(ctx context.Context, id string) (*model.TeamMember, error) {
	return s.repo.GetByID(ctx, id)
}

// Update はメンバーを書き換える
func (s *teamServiceImpl) Update(ctx context.Context, member *model.TeamMember) error {
	return s.repo.Update(ctx, member)
}

// Delete はメンバーを削除する
func (s *teamServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
