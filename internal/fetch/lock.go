package fetch

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another run already holds the cache.
var ErrLocked = errors.New("cache directory is in use by another run")

// Lock takes an exclusive advisory lock on the cache directory. Runs sharing
// a cache must not overlap; the returned func releases the lock.
func (f *Fetcher) Lock() (func() error, error) {
	lock := flock.New(filepath.Join(f.dir, ".lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return lock.Unlock, nil
}
