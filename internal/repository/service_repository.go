package repository

import (
	"context"

	"github.com/noievoi/backend/internal/model"
)

// ServiceRepository はサービス（提供メニュー）永続化のインターフェース
type ServiceRepository interface {
	Save(ctx context.Context, svc *model.Service) error
	List(ctx context.Context) ([]*model.Service, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
	Update(ctx context.Context, svc *model.Service) error
	Delete(ctx context.Context, id string) error

	// NextOrder returns max(order)+1 over all services, or 1 when none
	// exist. Orders are append-only and never renumbered on delete.
	NextOrder(ctx context.Context) (int, error)
}
