package ports

import "errors"

// Repositories report these conditions regardless of backend.
var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("record already exists")
	ErrMissingReference = errors.New("referenced record does not exist")
)
