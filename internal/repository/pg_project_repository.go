package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/noievoi/backend/internal/model"
)

// PgProjectRepository は ProjectRepository の PostgreSQL 実装
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository は PgProjectRepository を生成する
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, description, category, COALESCE(client, ''), COALESCE(location, ''),
	COALESCE(year, ''), COALESCE(image_url, ''), featured, created_at, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Client, &p.Location,
		&p.Year, &p.ImageURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save はプロジェクトを新規作成する
func (r *PgProjectRepository) Save(ctx context.Context, project *model.Project) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO projects (id, title, description, category, client, location, year, image_url, featured, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11)`,
		project.ID, project.Title, project.Description, project.Category,
		project.Client, project.Location, project.Year, project.ImageURL,
		project.Featured, project.CreatedAt, project.UpdatedAt,
	)
	return err
}

// List はプロジェクト一覧を作成日時の降順で取得する
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID は ID でプロジェクトを取得する
func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// Update はプロジェクトの全カラムを書き換える
func (r *PgProjectRepository) Update(ctx context.Context, project *model.Project) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects
		 SET title = $2, description = $3, category = $4, client = NULLIF($5, ''),
		     location = NULLIF($6, ''), year = NULLIF($7, ''), image_url = NULLIF($8, ''),
		     featured = $9, updated_at = $10
		 WHERE id = $1`,
		project.ID, project.Title, project.Description, project.Category,
		project.Client, project.Location, project.Year, project.ImageURL,
		project.Featured, project.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete はプロジェクトを物理削除する
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
