package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/noievoi/backend/internal/model"
)

// PgTeamRepository は TeamRepository の PostgreSQL 実装
type PgTeamRepository struct {
	pool *pgxpool.Pool
}

// NewPgTeamRepository は PgTeamRepository を生成する
func NewPgTeamRepository(pool *pgxpool.Pool) *PgTeamRepository {
	return &PgTeamRepository{pool: pool}
}

var _ TeamRepository = (*PgTeamRepository)(nil)

const teamColumns = `id, name, position, location, bio, image_color, COALESCE(email, ''),
	COALESCE(linkedin_url, ''), COALESCE(twitter_url, ''), COALESCE(image_url, '')`

func scanTeamMember(row pgx.Row) (*model.TeamMember, error) {
	var m model.TeamMember
	err := row.Scan(&m.ID, &m.Name, &m.Position, &m.Location, &m.Bio, &m.ImageColor,
		&m.Email, &m.LinkedinURL, &m.TwitterURL, &m.ImageURL)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Save はチームメンバーを新規作成する
func (r *PgTeamRepository) Save(ctx context.Context, member *model.TeamMember) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO team_members (id, name, position, location, bio, image_color, email, linkedin_url, twitter_url, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''))`,
		member.ID, member.Name, member.Position, member.Location, member.Bio,
		member.ImageColor, member.Email, member.LinkedinURL, member.TwitterURL, member.ImageURL,
	)
	return err
}

// List はチームメンバー一覧を名前の昇順で取得する
func (r *PgTeamRepository) List(ctx context.Context) ([]*model.TeamMember, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+teamColumns+` FROM team_members ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*model.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetByID は ID でチームメンバーを取得する
func (r *PgTeamRepository) GetByID(ctx context.Context, id string) (*model.TeamMember, error) {
	m, err := scanTeamMember(r.pool.QueryRow(ctx,
		`SELECT `+teamColumns+` FROM team_members WHERE id = $1`, id,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

// Update はチームメンバーの全カラムを書き換える
func (r *PgTeamRepository) Update(ctx context.Context, member *model.TeamMember) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE team_members
		 SET name = $2, position = $3, location = $4, bio = $5, image_color = $6,
		     email = NULLIF($7, ''), linkedin_url = NULLIF($8, ''),
		     twitter_url = NULLIF($9, ''), image_url = NULLIF($10, '')
		 WHERE id = $1`,
		member.ID, member.Name, member.Position, member.Location, member.Bio,
		member.ImageColor, member.Email, member.LinkedinURL, member.TwitterURL, member.ImageURL,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete はチームメンバーを物理削除する
func (r *PgTeamRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
