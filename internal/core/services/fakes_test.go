package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/pollboard/api/internal/core/domain"
	"github.com/pollboard/api/internal/core/ports"
)

// In-memory fakes shared by the service tests. They implement just
// enough behavior for the rules under test; persistence details are
// covered by the integration suite.

type fakeUserRepo struct {
	users      map[uuid.UUID]*domain.User
	createErr  error
	updated    int
	deleted    int
	lastUpdate *domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	m := make(map[uuid.UUID]*domain.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.updated++
	f.lastUpdate = user
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, id)
	f.deleted++
	return nil
}

type fakePollRepo struct {
	polls   map[uuid.UUID]*domain.Poll
	updated int
	deleted int
}

func newFakePollRepo(polls ...*domain.Poll) *fakePollRepo {
	m := make(map[uuid.UUID]*domain.Poll)
	for _, p := range polls {
		m[p.ID] = p
	}
	return &fakePollRepo{polls: m}
}

func (f *fakePollRepo) Create(_ context.Context, poll *domain.Poll) error {
	f.polls[poll.ID] = poll
	return nil
}

func (f *fakePollRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Poll, error) {
	if p, ok := f.polls[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPollNotFound
}

func (f *fakePollRepo) GetAll(_ context.Context) ([]*domain.Poll, error) {
	var out []*domain.Poll
	for _, p := range f.polls {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePollRepo) Update(_ context.Context, poll *domain.Poll) error {
	f.updated++
	f.polls[poll.ID] = poll
	return nil
}

func (f *fakePollRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.polls[id]; !ok {
		return domain.ErrPollNotFound
	}
	delete(f.polls, id)
	f.deleted++
	return nil
}

type fakeChoiceRepo struct {
	choices map[uuid.UUID]*domain.Choice
	updated int
	deleted int
}

func newFakeChoiceRepo(choices ...*domain.Choice) *fakeChoiceRepo {
	m := make(map[uuid.UUID]*domain.Choice)
	for _, c := range choices {
		m[c.ID] = c
	}
	return &fakeChoiceRepo{choices: m}
}

func (f *fakeChoiceRepo) Create(_ context.Context, choice *domain.Choice) error {
	f.choices[choice.ID] = choice
	return nil
}

func (f *fakeChoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Choice, error) {
	if c, ok := f.choices[id]; ok {
		return c, nil
	}
	return nil, domain.ErrChoiceNotFound
}

func (f *fakeChoiceRepo) GetAll(_ context.Context) ([]*domain.Choice, error) {
	var out []*domain.Choice
	for _, c := range f.choices {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeChoiceRepo) Update(_ context.Context, choice *domain.Choice) error {
	f.updated++
	f.choices[choice.ID] = choice
	return nil
}

func (f *fakeChoiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.choices[id]; !ok {
		return domain.ErrChoiceNotFound
	}
	delete(f.choices, id)
	f.deleted++
	return nil
}

// fakeVoteRepo runs the cast closure against in-memory state. It is not
// transactional; the serializable guarantee is exercised in the
// integration suite.
type fakeVoteRepo struct {
	choices map[uuid.UUID]*domain.Choice
	polls   map[uuid.UUID]*domain.Poll
	bans    []*domain.Ban
	votes   map[uuid.UUID]*domain.Vote
	deleted int
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{
		choices: make(map[uuid.UUID]*domain.Choice),
		polls:   make(map[uuid.UUID]*domain.Poll),
		votes:   make(map[uuid.UUID]*domain.Vote),
	}
}

func (f *fakeVoteRepo) CastAtomic(_ context.Context, fn func(tx ports.VoteTx) error) error {
	return fn(f)
}

func (f *fakeVoteRepo) ChoiceByID(_ context.Context, id uuid.UUID) (*domain.Choice, error) {
	if c, ok := f.choices[id]; ok {
		return c, nil
	}
	return nil, domain.ErrChoiceNotFound
}

func (f *fakeVoteRepo) PollByID(_ context.Context, id uuid.UUID) (*domain.Poll, error) {
	if p, ok := f.polls[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPollNotFound
}

func (f *fakeVoteRepo) BanExists(_ context.Context, pollOwnerID, userID uuid.UUID) (bool, error) {
	for _, b := range f.bans {
		if b.PollOwnerID == pollOwnerID && b.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVoteRepo) HasVotedInPoll(_ context.Context, userID, pollID uuid.UUID) (bool, error) {
	for _, v := range f.votes {
		c, ok := f.choices[v.ChoiceID]
		if ok && c.PollID == pollID && v.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeVoteRepo) InsertVote(_ context.Context, vote *domain.Vote) error {
	f.votes[vote.ID] = vote
	return nil
}

func (f *fakeVoteRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Vote, error) {
	if v, ok := f.votes[id]; ok {
		return v, nil
	}
	return nil, domain.ErrVoteNotFound
}

func (f *fakeVoteRepo) GetAll(_ context.Context) ([]*domain.Vote, error) {
	var out []*domain.Vote
	for _, v := range f.votes {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeVoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.votes[id]; !ok {
		return domain.ErrVoteNotFound
	}
	delete(f.votes, id)
	f.deleted++
	return nil
}

type fakeModeratorRepo struct {
	mods    map[uuid.UUID]*domain.Moderator
	updated int
	deleted int
}

func newFakeModeratorRepo(mods ...*domain.Moderator) *fakeModeratorRepo {
	m := make(map[uuid.UUID]*domain.Moderator)
	for _, mod := range mods {
		m[mod.ID] = mod
	}
	return &fakeModeratorRepo{mods: m}
}

func (f *fakeModeratorRepo) Create(_ context.Context, mod *domain.Moderator) error {
	f.mods[mod.ID] = mod
	return nil
}

func (f *fakeModeratorRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Moderator, error) {
	if m, ok := f.mods[id]; ok {
		return m, nil
	}
	return nil, domain.ErrModeratorNotFound
}

func (f *fakeModeratorRepo) GetAll(_ context.Context) ([]*domain.Moderator, error) {
	var out []*domain.Moderator
	for _, m := range f.mods {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeModeratorRepo) Update(_ context.Context, mod *domain.Moderator) error {
	f.updated++
	f.mods[mod.ID] = mod
	return nil
}

func (f *fakeModeratorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.mods[id]; !ok {
		return domain.ErrModeratorNotFound
	}
	delete(f.mods, id)
	f.deleted++
	return nil
}

func (f *fakeModeratorRepo) HasGrant(_ context.Context, userID uuid.UUID) (bool, error) {
	for _, m := range f.mods {
		if m.ModUser == userID {
			return true, nil
		}
	}
	return false, nil
}

type fakeBanRepo struct {
	bans []*domain.Ban
}

func (f *fakeBanRepo) Create(_ context.Context, ban *domain.Ban) error {
	f.bans = append(f.bans, ban)
	return nil
}

func (f *fakeBanRepo) GetAll(_ context.Context) ([]*domain.Ban, error) {
	return f.bans, nil
}

func (f *fakeBanRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Ban, error) {
	for _, b := range f.bans {
		if b.UserID == userID {
			return b, nil
		}
	}
	return nil, domain.ErrBanNotFound
}

func (f *fakeBanRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var kept []*domain.Ban
	var n int64
	for _, b := range f.bans {
		if b.UserID == userID {
			n++
			continue
		}
		kept = append(kept, b)
	}
	f.bans = kept
	return n, nil
}
