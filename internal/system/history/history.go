// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive prompt's history file.
package history

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Load passes the history file at path to read. A missing file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	if err = lock(f, false); err != nil {
		return fmt.Errorf("locking history: %w", err)
	}
	defer unlock(f) //nolint:errcheck

	if _, err = read(f); err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	return nil
}

// Save truncates the history file at path and passes it to write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("creating history: %w", err)
	}

	if err = lock(f, true); err != nil {
		f.Close()
		return fmt.Errorf("locking history: %w", err)
	}

	// Truncate only once the lock is held.
	if err = f.Truncate(0); err == nil {
		_, err = write(f)
	}

	unlock(f) //nolint:errcheck

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return fmt.Errorf("writing history: %w", err)
	}

	return nil
}
