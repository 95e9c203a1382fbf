package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/noievoi/backend/internal/model"
)

// PgServiceRepository は ServiceRepository の PostgreSQL 実装
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository は PgServiceRepository を生成する
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ServiceRepository = (*PgServiceRepository)(nil)

const serviceColumns = `id, title, slug, description, COALESCE(image_path, ''), icon, benefits,
	sort_order, published, created_at, updated_at`

func scanService(row pgx.Row) (*model.Service, error) {
	var s model.Service
	var benefits []byte
	err := row.Scan(&s.ID, &s.Title, &s.Slug, &s.Description, &s.ImagePath, &s.Icon,
		&benefits, &s.Order, &s.Published, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(benefits) > 0 {
		if err := json.Unmarshal(benefits, &s.Benefits); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func marshalBenefits(benefits []model.ServiceBenefit) ([]byte, error) {
	if benefits == nil {
		return nil, nil
	}
	return json.Marshal(benefits)
}

// Save はサービスを新規作成する
func (r *PgServiceRepository) Save(ctx context.Context, svc *model.Service) error {
	benefits, err := marshalBenefits(svc.Benefits)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO services (id, title, slug, description, image_path, icon, benefits, sort_order, published, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)`,
		svc.ID, svc.Title, svc.Slug, svc.Description, svc.ImagePath, svc.Icon,
		benefits, svc.Order, svc.Published, svc.CreatedAt, svc.UpdatedAt,
	)
	return err
}

// List はサービス一覧を表示順（sort_order 昇順）で取得する
func (r *PgServiceRepository) List(ctx context.Context) ([]*model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+serviceColumns+` FROM services ORDER BY sort_order ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// GetByID は ID でサービスを取得する
func (r *PgServiceRepository) GetByID(ctx context.Context, id string) (*model.Service, error) {
	s, err := scanService(r.pool.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return s, err
}

// Update はサービスの全カラムを書き換える（sort_order も含む）
func (r *PgServiceRepository) Update(ctx context.Context, svc *model.Service) error {
	benefits, err := marshalBenefits(svc.Benefits)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE services
		 SET title = $2, slug = $3, description = $4, image_path = NULLIF($5, ''),
		     icon = $6, benefits = $7, sort_order = $8, published = $9, updated_at = $10
		 WHERE id = $1`,
		svc.ID, svc.Title, svc.Slug, svc.Description, svc.ImagePath, svc.Icon,
		benefits, svc.Order, svc.Published, svc.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete はサービスを物理削除する。sort_order の採番には影響しない。
func (r *PgServiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// NextOrder returns the next append-only display position.
func (r *PgServiceRepository) NextOrder(ctx context.Context) (int, error) {
	var next int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(sort_order), 0) + 1 FROM services`,
	).Scan(&next)
	return next, err
}
