package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-coreapi/internal/logger"
	"github.com/gofrs/flock"
)

// defaultFileMode is used when the dotenv file is created from scratch. The
// file holds credentials and tokens, so it is private to the owner.
const defaultFileMode fs.FileMode = 0o600

// maxLineSize bounds a single KEY = value line.
const maxLineSize = 16 << 20

// envFileStore is the dotenv-file implementation of [ConfigStore].
//
// Every Set is a whole-file read-modify-write. It is serialised inside the
// process by mu and across processes by an advisory lock on "<path>.lock";
// the rewritten content is written to a temporary file in the same directory
// and renamed over the original, so readers never observe a half-written file.
type envFileStore struct {
	path string

	mu   sync.Mutex
	lock *flock.Flock

	logger *logger.Logger
}

// NewEnvFileStore constructs a [ConfigStore] backed by the dotenv file at path.
// The file does not need to exist yet; it is created by the first Set.
func NewEnvFileStore(path string, log *logger.Logger) (ConfigStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyStorePath
	}

	return &envFileStore{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: log,
	}, nil
}

func (s *envFileStore) Path() string {
	return s.path
}

func (s *envFileStore) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *envFileStore) Get(key string) (string, bool, error) {
	entries, err := s.Load()
	if err != nil {
		return "", false, err
	}

	key = strings.TrimSpace(key)
	for _, e := range entries {
		if e.Key == key {
			return e.Value, true, nil
		}
	}
	return "", false, nil
}

func (s *envFileStore) Set(key, value string) error {
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if err := validateEntry(key, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrWritingStore, err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("%w: %v", ErrLockingStore, err)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn().Err(err).Str("path", s.path).Msg("failed to release config store lock")
		}
	}()

	entries, err := s.load()
	if err != nil {
		return err
	}

	entries = upsert(entries, key, value)
	if err = s.write(entries); err != nil {
		return err
	}

	s.logger.Debug().Str("path", s.path).Str("key", key).Int("entries", len(entries)).Msg("config store updated")
	return nil
}

func (s *envFileStore) load() ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadingStore, err)
	}
	defer f.Close()

	entries, err := parseEntries(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadingStore, err)
	}
	return entries, nil
}

func (s *envFileStore) write(entries []Entry) error {
	mode := defaultFileMode
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWritingStore, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if err = writeEntries(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrWritingStore, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", ErrWritingStore, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWritingStore, err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("%w: %v", ErrWritingStore, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrWritingStore, err)
	}

	return nil
}

// parseEntries reads KEY = value lines in order. Blank lines, lines starting
// with '#' and lines without '=' are skipped. A key seen twice keeps its first
// position and takes the last value.
func parseEntries(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		entries = upsert(entries, strings.TrimSpace(k), strings.TrimSpace(v))
	}

	return entries, scanner.Err()
}

func writeEntries(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s = %s\n", e.Key, e.Value); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func upsert(entries []Entry, key, value string) []Entry {
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Value = value
			return entries
		}
	}
	return append(entries, Entry{Key: key, Value: value})
}

func validateEntry(key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidEntry)
	}
	if strings.HasPrefix(key, "#") || strings.ContainsAny(key, "= \t\r\n") {
		return fmt.Errorf("%w: key %q", ErrInvalidEntry, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: multi-line value for key %q", ErrInvalidEntry, key)
	}
	return nil
}
