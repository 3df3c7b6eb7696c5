package store

import "errors"

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrNoUserWasFound     = errors.New("no user was found")

	ErrIdeaNotFound = errors.New("idea not found")
	ErrNotIdeaOwner = errors.New("idea belongs to a different user")

	ErrExecutingQuery = errors.New("error executing query")
)
