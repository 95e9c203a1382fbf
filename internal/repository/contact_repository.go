package repository

import (
	"context"

	"github.com/noievoi/backend/internal/model"
)

// ContactRepository はお問い合わせメッセージ永続化のインターフェース
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
