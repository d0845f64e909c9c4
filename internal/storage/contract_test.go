package storage_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/markdown"
	"github.com/chris-regnier/moodctl/internal/storage/memory"
	"github.com/chris-regnier/moodctl/internal/storage/sqlite"
)

type storageFactory func(t *testing.T, dir string) storage.Slot

func markdownFactory(t *testing.T, dir string) storage.Slot {
	t.Helper()
	s, err := markdown.New(dir)
	if err != nil {
		t.Fatalf("creating markdown storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sqliteFactory(driver string) storageFactory {
	return func(t *testing.T, dir string) storage.Slot {
		t.Helper()
		s, err := sqlite.NewWithDriver(dir, driver)
		if err != nil {
			t.Fatalf("creating sqlite storage: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		return s
	}
}

const testKey = "my-app-data"

func runContractTests(t *testing.T, name string, factory storageFactory, durable bool) {
	t.Run(name, func(t *testing.T) {
		ctx := context.Background()

		t.Run("Get missing key", func(t *testing.T) {
			s := factory(t, t.TempDir())
			_, err := s.Get(ctx, testKey)
			if !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Get on empty store: err = %v, want ErrNotFound", err)
			}
		})

		t.Run("Set and Get", func(t *testing.T) {
			s := factory(t, t.TempDir())
			want := []byte(`{"moodList":[]}`)
			if err := s.Set(ctx, testKey, want); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := s.Get(ctx, testKey)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("Get = %q, want %q", got, want)
			}
		})

		t.Run("Overwrite", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Set(ctx, testKey, []byte("first value that is longer")); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Set(ctx, testKey, []byte("second")); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := s.Get(ctx, testKey)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if string(got) != "second" {
				t.Errorf("Get = %q, want %q", got, "second")
			}
		})

		t.Run("UTF-8 emoji preserved", func(t *testing.T) {
			s := factory(t, t.TempDir())
			want := []byte(`{"moodList":[{"mood":{"emoji":"🧑‍💻","description":"studious"},"timestamp":1}]}`)
			if err := s.Set(ctx, testKey, want); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := s.Get(ctx, testKey)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if !bytes.Equal(got, want) {
				t.Errorf("Get = %q, want %q", got, want)
			}
		})

		t.Run("Binary and whitespace values", func(t *testing.T) {
			s := factory(t, t.TempDir())
			for _, want := range [][]byte{
				{0xff, 0x00, 0xfe},
				[]byte("\n\nleading newlines\n"),
				[]byte("trailing spaces   "),
				{},
			} {
				if err := s.Set(ctx, testKey, want); err != nil {
					t.Fatalf("Set(%q): %v", want, err)
				}
				got, err := s.Get(ctx, testKey)
				if err != nil {
					t.Fatalf("Get: %v", err)
				}
				if !bytes.Equal(got, want) {
					t.Errorf("Get = %q, want %q", got, want)
				}
			}
		})

		t.Run("Keys are independent", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Set(ctx, "a", []byte("1")); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if _, err := s.Get(ctx, "b"); !errors.Is(err, storage.ErrNotFound) {
				t.Errorf("Get(b): err = %v, want ErrNotFound", err)
			}
		})

		t.Run("Empty key rejected", func(t *testing.T) {
			s := factory(t, t.TempDir())
			if err := s.Set(ctx, "  ", []byte("x")); !errors.Is(err, storage.ErrValidation) {
				t.Errorf("Set with empty key: err = %v, want ErrValidation", err)
			}
			if _, err := s.Get(ctx, ""); !errors.Is(err, storage.ErrValidation) {
				t.Errorf("Get with empty key: err = %v, want ErrValidation", err)
			}
		})

		if !durable {
			return
		}

		t.Run("Survives reopen", func(t *testing.T) {
			dir := t.TempDir()
			s := factory(t, dir)
			if err := s.Set(ctx, testKey, []byte("persisted")); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := s.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			reopened := factory(t, dir)
			got, err := reopened.Get(ctx, testKey)
			if err != nil {
				t.Fatalf("Get after reopen: %v", err)
			}
			if string(got) != "persisted" {
				t.Errorf("Get after reopen = %q, want %q", got, "persisted")
			}
		})
	})
}

func TestMarkdownStorage(t *testing.T) {
	runContractTests(t, "Markdown", markdownFactory, true)
}

func TestSQLiteStorage(t *testing.T) {
	runContractTests(t, "SQLite", sqliteFactory(sqlite.DriverLibSQL), true)
}

func TestSQLiteModerncStorage(t *testing.T) {
	runContractTests(t, "SQLiteModernc", sqliteFactory(sqlite.DriverModernc), true)
}

func TestMemoryStorage(t *testing.T) {
	runContractTests(t, "Memory", func(t *testing.T, dir string) storage.Slot {
		return memory.New()
	}, false)
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"my-app-data", false},
		{"", true},
		{"   ", true},
		{"a/b", true},
		{`a\b`, true},
		{"..", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := storage.ValidateKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
