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

type choiceRepository struct {
	db *sql.DB
}

func NewChoiceRepository(db *sql.DB) ports.ChoiceRepository {
	return &choiceRepository{db: db}
}

func (r *choiceRepository) Create(ctx context.Context, choice *domain.Choice) error {
	query := `
		INSERT INTO choices (id, poll_id, text, image, created_by, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		choice.ID, choice.PollID, choice.Text, choice.Image, choice.CreatedBy, choice.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert choice: %w", translateError(err, domain.ErrConflict))
	}
	return nil
}

func (r *choiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Choice, error) {
	query := `
		SELECT id, poll_id, COALESCE(text, ''), COALESCE(image, ''), created_by, created_at, updated_at
		FROM choices
		WHERE id = $1
	`
	var c domain.Choice
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.PollID, &c.Text, &c.Image, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChoiceNotFound
		}
		return nil, fmt.Errorf("failed to get choice: %w", err)
	}
	return &c, nil
}

func (r *choiceRepository) GetAll(ctx context.Context) ([]*domain.Choice, error) {
	query := `
		SELECT id, poll_id, COALESCE(text, ''), COALESCE(image, ''), created_by, created_at, updated_at
		FROM choices
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list choices: %w", err)
	}
	defer rows.Close()

	var choices []*domain.Choice
	for rows.Next() {
		var c domain.Choice
		if err := rows.Scan(&c.ID, &c.PollID, &c.Text, &c.Image, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating choices: %w", err)
	}
	return choices, nil
}

func (r *choiceRepository) Update(ctx context.Context, choice *domain.Choice) error {
	query := `
		UPDATE choices
		SET text = NULLIF($2, ''), image = NULLIF($3, ''), updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query, choice.ID, choice.Text, choice.Image).Scan(&choice.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrChoiceNotFound
		}
		return fmt.Errorf("failed to update choice: %w", err)
	}
	return nil
}

func (r *choiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM choices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete choice: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrChoiceNotFound
	}
	return nil
}
