package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePoll(t *testing.T) {
	repo := newFakePollRepo()
	svc := NewPollService(repo)
	owner := &domain.User{ID: uuid.New(), Username: "alice"}

	poll, err := svc.Create(context.Background(), owner, ports.CreatePollInput{
		Title:       "Lunch",
		Type:        domain.PollTypeText,
		ChoicesOpen: true,
		VotingOpen:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, owner.ID, poll.CreatedBy)
	assert.True(t, poll.ChoicesOpen)
	assert.True(t, poll.VotingOpen)
	assert.NotEqual(t, uuid.Nil, poll.ID)
}

func TestCreatePollValidation(t *testing.T) {
	svc := NewPollService(newFakePollRepo())
	owner := &domain.User{ID: uuid.New()}

	_, err := svc.Create(context.Background(), owner, ports.CreatePollInput{Type: domain.PollTypeText})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(context.Background(), owner, ports.CreatePollInput{Title: "Lunch", Type: "video"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdatePollNonOwnerLeavesStateUnchanged(t *testing.T) {
	owner := &domain.User{ID: uuid.New()}
	stranger := &domain.User{ID: uuid.New()}
	poll := &domain.Poll{ID: uuid.New(), Title: "Lunch", Type: domain.PollTypeText, CreatedBy: owner.ID, CreatedAt: time.Now()}
	repo := newFakePollRepo(poll)
	svc := NewPollService(repo)

	_, err := svc.Update(context.Background(), stranger, poll.ID, ports.CreatePollInput{Title: "Dinner", Type: domain.PollTypeText})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, repo.updated)
	assert.Equal(t, "Lunch", repo.polls[poll.ID].Title)
}

func TestUpdatePollStampsUpdatedAt(t *testing.T) {
	owner := &domain.User{ID: uuid.New()}
	poll := &domain.Poll{ID: uuid.New(), Title: "Lunch", Type: domain.PollTypeText, CreatedBy: owner.ID, VotingOpen: true}
	repo := newFakePollRepo(poll)
	svc := NewPollService(repo)

	updated, err := svc.Update(context.Background(), owner, poll.ID, ports.CreatePollInput{Title: "Dinner", Type: domain.PollTypeText})
	require.NoError(t, err)

	assert.Equal(t, "Dinner", updated.Title)
	assert.False(t, updated.VotingOpen)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestDeletePollOrdering(t *testing.T) {
	owner := &domain.User{ID: uuid.New()}
	stranger := &domain.User{ID: uuid.New()}
	poll := &domain.Poll{ID: uuid.New(), Title: "Lunch", Type: domain.PollTypeText, CreatedBy: owner.ID}
	repo := newFakePollRepo(poll)
	svc := NewPollService(repo)

	// Absent resource wins over ownership.
	err := svc.Delete(context.Background(), stranger, uuid.New())
	assert.ErrorIs(t, err, domain.ErrPollNotFound)

	err = svc.Delete(context.Background(), stranger, poll.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, repo.deleted)

	err = svc.Delete(context.Background(), owner, poll.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.deleted)
}
