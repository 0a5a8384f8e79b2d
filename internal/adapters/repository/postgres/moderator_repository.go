package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/ports"
)

type moderatorRepository struct {
	db *sql.DB
}

func NewModeratorRepository(db *sql.DB) ports.ModeratorRepository {
	return &moderatorRepository{db: db}
}

func (r *moderatorRepository) Create(ctx context.Context, mod *domain.Moderator) error {
	query := `
		INSERT INTO moderators (id, mod_for, mod_user, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, mod.ID, mod.ModFor, mod.ModUser, mod.CreatedBy, mod.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert moderator: %w", translateError(err, domain.ErrConflict))
	}
	return nil
}

func (r *moderatorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Moderator, error) {
	query := `SELECT id, mod_for, mod_user, created_by, created_at, updated_at FROM moderators WHERE id = $1`
	var m domain.Moderator
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.ModFor, &m.ModUser, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrModeratorNotFound
		}
		return nil, fmt.Errorf("failed to get moderator: %w", err)
	}
	return &m, nil
}

func (r *moderatorRepository) GetAll(ctx context.Context) ([]*domain.Moderator, error) {
	query := `SELECT id, mod_for, mod_user, created_by, created_at, updated_at FROM moderators ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list moderators: %w", err)
	}
	defer rows.Close()

	var mods []*domain.Moderator
	for rows.Next() {
		var m domain.Moderator
		if err := rows.Scan(&m.ID, &m.ModFor, &m.ModUser, &m.CreatedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan moderator: %w", err)
		}
		mods = append(mods, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating moderators: %w", err)
	}
	return mods, nil
}

func (r *moderatorRepository) Update(ctx context.Context, mod *domain.Moderator) error {
	query := `
		UPDATE moderators
		SET mod_for = $2, mod_user = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query, mod.ID, mod.ModFor, mod.ModUser).Scan(&mod.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrModeratorNotFound
		}
		return fmt.Errorf("failed to update moderator: %w", err)
	}
	return nil
}

func (r *moderatorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM moderators WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete moderator: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrModeratorNotFound
	}
	return nil
}

func (r *moderatorRepository) HasGrant(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM moderators WHERE mod_user = $1 LIMIT 1`
	var one int
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check moderator grant: %w", err)
	}
	return true, nil
}
