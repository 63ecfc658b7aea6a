package domain

import "errors"

var (
	ErrVoterNotRegistered        = errors.New("voter not registered")
	ErrDuplicateRegistration     = errors.New("voter already registered")
	ErrAlreadyVoted              = errors.New("voter has already voted")
	ErrCandidateNotFound         = errors.New("candidate not found")
	ErrInvalidPosition           = errors.New("unknown position")
	ErrInvalidBallotNumber       = errors.New("ballot number must have exactly two digits")
	ErrInvalidCandidateName      = errors.New("candidate name must have at least three characters")
	ErrMissingRegistrationNumber = errors.New("registration number is required")
	ErrMissingVoterName          = errors.New("voter name is required")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrUserNotFound              = errors.New("user not found")
	ErrUnauthorized              = errors.New("missing or invalid access token")
)
