package store

import "errors"

// Sentinel errors returned by [ConfigStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrEmptyStorePath is returned when a store is constructed without a
	// file path.
	ErrEmptyStorePath = errors.New("config store path is empty")

	// ErrInvalidEntry is returned by Set when the key or value cannot be
	// represented in the line-oriented KEY = value format (empty key, key
	// containing '=' or whitespace, key starting with '#', or a value that
	// spans several lines).
	ErrInvalidEntry = errors.New("invalid config entry")

	// ErrReadingStore is returned when the backing file exists but cannot be
	// read.
	ErrReadingStore = errors.New("failed to read config store")

	// ErrWritingStore is returned when the rewritten file cannot be
	// persisted.
	ErrWritingStore = errors.New("failed to write config store")

	// ErrLockingStore is returned when the advisory file lock guarding the
	// read-modify-write cannot be acquired or released.
	ErrLockingStore = errors.New("failed to lock config store")
)
