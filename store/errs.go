package store

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrNoBaseline = errors.New("no baseline recorded")
	ErrMigrate    = errors.New("migration error")
	ErrStale      = errors.New("stale patch pointer")
)
