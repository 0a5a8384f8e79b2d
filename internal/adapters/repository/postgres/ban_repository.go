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

type banRepository struct {
	db *sql.DB
}

func NewBanRepository(db *sql.DB) ports.BanRepository {
	return &banRepository{db: db}
}

func (r *banRepository) Create(ctx context.Context, ban *domain.Ban) error {
	query := `
		INSERT INTO bans (id, poll_owner_id, banned_by, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, ban.ID, ban.PollOwnerID, ban.BannedBy, ban.UserID, ban.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ban: %w", translateError(err, domain.ErrConflict))
	}
	return nil
}

func (r *banRepository) GetAll(ctx context.Context) ([]*domain.Ban, error) {
	query := `SELECT id, poll_owner_id, banned_by, user_id, created_at FROM bans ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bans: %w", err)
	}
	defer rows.Close()

	var bans []*domain.Ban
	for rows.Next() {
		var b domain.Ban
		if err := rows.Scan(&b.ID, &b.PollOwnerID, &b.BannedBy, &b.UserID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ban: %w", err)
		}
		bans = append(bans, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bans: %w", err)
	}
	return bans, nil
}

func (r *banRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Ban, error) {
	query := `
		SELECT id, poll_owner_id, banned_by, user_id, created_at
		FROM bans
		WHERE user_id = $1
		ORDER BY created_at
		LIMIT 1
	`
	var b domain.Ban
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&b.ID, &b.PollOwnerID, &b.BannedBy, &b.UserID, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBanNotFound
		}
		return nil, fmt.Errorf("failed to get ban: %w", err)
	}
	return &b, nil
}

func (r *banRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bans WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bans: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted bans: %w", err)
	}
	return n, nil
}
