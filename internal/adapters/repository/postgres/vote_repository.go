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

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{db: db}
}

// CastAtomic runs the admission sequence at SERIALIZABLE isolation so two
// concurrent casts for the same (voter, poll) cannot both pass the
// duplicate check; the loser surfaces as a Conflict via translateError.
func (r *voteRepository) CastAtomic(ctx context.Context, fn func(tx ports.VoteTx) error) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&voteTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return translateError(err, domain.ErrConflict)
	}
	return nil
}

type voteTx struct {
	tx *sql.Tx
}

func (t *voteTx) ChoiceByID(ctx context.Context, id uuid.UUID) (*domain.Choice, error) {
	query := `
		SELECT id, poll_id, COALESCE(text, ''), COALESCE(image, ''), created_by, created_at, updated_at
		FROM choices
		WHERE id = $1
	`
	var c domain.Choice
	err := t.tx.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.PollID, &c.Text, &c.Image, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrChoiceNotFound
		}
		return nil, fmt.Errorf("failed to get choice: %w", err)
	}
	return &c, nil
}

func (t *voteTx) PollByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error) {
	query := `
		SELECT id, title, poll_type, created_by, choices_open, voting_open, created_at, updated_at
		FROM polls
		WHERE id = $1
	`
	var p domain.Poll
	err := t.tx.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Type, &p.CreatedBy, &p.ChoicesOpen, &p.VotingOpen, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}
	return &p, nil
}

func (t *voteTx) BanExists(ctx context.Context, pollOwnerID, userID uuid.UUID) (bool, error) {
	query := `SELECT 1 FROM bans WHERE poll_owner_id = $1 AND user_id = $2 LIMIT 1`
	var one int
	err := t.tx.QueryRowContext(ctx, query, pollOwnerID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check ban: %w", err)
	}
	return true, nil
}

// HasVotedInPoll matches by poll membership, not exact choice, so a vote
// for any sibling choice counts as a duplicate.
func (t *voteTx) HasVotedInPoll(ctx context.Context, userID, pollID uuid.UUID) (bool, error) {
	query := `
		SELECT 1
		FROM votes v
		JOIN choices c ON c.id = v.choice_id
		WHERE v.user_id = $1 AND c.poll_id = $2
		LIMIT 1
	`
	var one int
	err := t.tx.QueryRowContext(ctx, query, userID, pollID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func (t *voteTx) InsertVote(ctx context.Context, vote *domain.Vote) error {
	query := `INSERT INTO votes (id, user_id, choice_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := t.tx.ExecContext(ctx, query, vote.ID, vote.UserID, vote.ChoiceID, vote.CreatedAt)
	if err != nil {
		return translateError(err, domain.ErrConflict)
	}
	return nil
}

func (r *voteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	query := `SELECT id, user_id, choice_id, created_at FROM votes WHERE id = $1`
	var v domain.Vote
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.UserID, &v.ChoiceID, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVoteNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return &v, nil
}

func (r *voteRepository) GetAll(ctx context.Context) ([]*domain.Vote, error) {
	query := `SELECT id, user_id, choice_id, created_at FROM votes ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []*domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.UserID, &v.ChoiceID, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating votes: %w", err)
	}
	return votes, nil
}

func (r *voteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM votes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrVoteNotFound
	}
	return nil
}
