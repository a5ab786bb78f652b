package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	kerrors "github.com/PolarWolf314/manuka/internal/errors"
)

// DirName is the store directory, relative to the working directory at
// invocation time.
const DirName = ".env"

// secretFileSuffix is appended to the key name to form the secret file name.
const secretFileSuffix = ".txt"

// Path returns the absolute path of the store directory without creating it.
func Path() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, DirName), nil
}

// EnsureStore creates the store directory if it does not exist and returns
// its path. Creation is idempotent: an existing directory is not an error.
func EnsureStore() (string, error) {
	storePath, err := Path()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(storePath, 0700); err != nil {
		return "", fmt.Errorf("failed to create %s (%v): %w", storePath, err, kerrors.ErrStoreUnavailable)
	}

	return storePath, nil
}

// SecretFilePath returns the path of the file backing the given key.
func SecretFilePath(storePath, key string) string {
	return filepath.Join(storePath, key+secretFileSuffix)
}

// AppendSecret appends value to the key's secret file, creating the file on
// first write. The raw value is written with no delimiter and no trailing
// newline; repeated appends to the same key concatenate values. The file is
// closed on all exit paths.
func AppendSecret(storePath, key, value string) error {
	secretPath := SecretFilePath(storePath, key)

	f, err := os.OpenFile(secretPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open %s (%v): %w", secretPath, err, kerrors.ErrSecretWriteFailed)
	}
	defer f.Close()

	if _, err := f.WriteString(value); err != nil {
		return fmt.Errorf("failed to write %s (%v): %w", secretPath, err, kerrors.ErrSecretWriteFailed)
	}

	return nil
}

// ListKeys returns the sorted key names currently present in the store.
// A missing store directory is not an error; it means no keys exist yet.
func ListKeys(storePath string) ([]string, error) {
	entries, err := os.ReadDir(storePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", storePath, err)
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, secretFileSuffix) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, secretFileSuffix))
	}

	sort.Strings(keys)
	return keys, nil
}
