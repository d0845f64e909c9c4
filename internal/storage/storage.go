package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound   = errors.New("key not found")
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

// Slot is a key-value store holding one opaque value per key.
type Slot interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// ValidateKey checks that a slot key is usable as a file name and a primary key.
func ValidateKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: empty key", ErrValidation)
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: invalid key %q", ErrValidation, key)
	}
	return nil
}
