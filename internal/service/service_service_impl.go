package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/noievoi/backend/internal/model"
	"github.com/noievoi/backend/internal/repository"
)

// serviceServiceImpl is the production implementation of ServiceService.
type serviceServiceImpl struct {
	repo repository.ServiceRepository
}

// NewServiceService creates a ServiceService backed by the given repository.
func NewServiceService(repo repository.ServiceRepository) ServiceService {
	return &serviceServiceImpl{repo: repo}
}

// Create assigns ID, timestamps, icon/published defaults, and the next
// display order (max existing + 1, starting at 1). Orders are never reused:
// deleting a service leaves a gap that stays.
func (s *serviceServiceImpl) Create(ctx context.Context, svc *model.Service) error {
	order, err := s.repo.NextOrder(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	svc.ID = uuid.NewString()
	svc.Order = order
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if svc.Icon == "" {
		svc.Icon = model.DefaultServiceIcon
	}
	return s.repo.Save(ctx, svc)
}

// List はサービス一覧を表示順で取得する
func (s *serviceServiceImpl) List(ctx context.Context) ([]*model.Service, error) {
	return s.repo.List(ctx)
}

// GetByID は ID でサービスを取得する
func (s *serviceServiceImpl) GetByID(ctx context.Context, id string) (*model.Service, error) {
	return s.repo.GetByID(ctx, id)
}

// Update は UpdatedAt を更新してサービスを書き換える
func (s *serviceServiceImpl) Update(ctx context.Context, svc *model.Service) error {
	svc.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, svc)
}

// Delete はサービスを削除する
func (s *serviceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
