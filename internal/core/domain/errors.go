package domain

import "errors"

var (
	// Authentication and authorization.
	ErrUnauthenticated = errors.New("invalid credentials")
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrForbidden       = errors.New("access denied")

	// Missing resources.
	ErrUserNotFound      = errors.New("user not found")
	ErrPollNotFound      = errors.New("poll not found")
	ErrChoiceNotFound    = errors.New("choice not found")
	ErrVoteNotFound      = errors.New("vote not found")
	ErrModeratorNotFound = errors.New("moderator does not exist")
	ErrBanNotFound       = errors.New("ban not found")

	// Write rejections.
	ErrUserExists   = errors.New("user with username or email already exists")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflicting concurrent update")

	// Vote admission.
	ErrVotingClosed  = errors.New("voting is closed for this poll")
	ErrChoicesClosed = errors.New("poll is not accepting new choices")
	ErrBanned        = errors.New("user is banned from voting on this owner's polls")
	ErrAlreadyVoted  = errors.New("user has already voted on this poll")
)
