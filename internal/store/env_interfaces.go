package store

//go:generate mockgen -source=env_interfaces.go -destination=../mock/store_mock.go -package=mock

// Entry is a single KEY = value pair of the dotenv configuration file.
type Entry struct {
	Key   string
	Value string
}

// ConfigStore is the persistent key/value configuration backing the client.
// The only writer in normal operation is the token manager, which persists
// every freshly obtained token through Set.
type ConfigStore interface {
	// Path returns the location of the backing file.
	Path() string

	// Load reads every entry in file order. A missing file yields an empty
	// result, not an error.
	Load() ([]Entry, error)

	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool, error)

	// Set upserts key and rewrites the whole file. An existing key keeps its
	// position and is overwritten in place; a new key is appended.
	Set(key, value string) error
}
