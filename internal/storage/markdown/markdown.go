package markdown

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"github.com/chris-regnier/moodctl/internal/storage"
)

const (
	encodingText   = "text"
	encodingBase64 = "base64"
)

// Store implements storage.Slot using one Markdown file per key, with the
// value in the body and bookkeeping in YAML front-matter.
type Store struct {
	baseDir string // e.g. ~/.moodctl/slots/
}

// New creates a new Markdown file storage backend.
func New(dataDir string) (*Store, error) {
	slotsDir := filepath.Join(dataDir, "slots")
	if err := os.MkdirAll(slotsDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating slots directory: %v", storage.ErrStorage, err)
	}
	return &Store{baseDir: slotsDir}, nil
}

// Close is a no-op for the Markdown backend.
func (s *Store) Close() error {
	return nil
}

func (s *Store) slotPath(key string) string {
	return filepath.Join(s.baseDir, key+".md")
}

type frontMatter struct {
	Key       string `yaml:"key"`
	UpdatedAt string `yaml:"updated_at"`
	Encoding  string `yaml:"encoding"`
	Bytes     int    `yaml:"bytes"`
}

func (s *Store) marshal(key string, value []byte, now time.Time) []byte {
	encoding := encodingText
	body := string(value)
	if !utf8.Valid(value) || strings.HasPrefix(body, "\n") || strings.HasPrefix(body, "\r") {
		encoding = encodingBase64
		body = base64.StdEncoding.EncodeToString(value)
	}

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "key: %q\n", key)
	fmt.Fprintf(&b, "updated_at: %s\n", now.UTC().Format(time.RFC3339Nano))
	fmt.Fprintf(&b, "encoding: %s\n", encoding)
	fmt.Fprintf(&b, "bytes: %d\n", len(value))
	b.WriteString("---\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	return []byte(b.String())
}

func (s *Store) unmarshal(data []byte) ([]byte, error) {
	var fm frontMatter
	rest, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing front-matter: %v", storage.ErrStorage, err)
	}
	body := strings.TrimLeft(string(rest), "\r\n")

	switch fm.Encoding {
	case encodingBase64:
		value, err := base64.StdEncoding.DecodeString(strings.TrimSpace(body))
		if err != nil {
			return nil, fmt.Errorf("%w: decoding body: %v", storage.ErrStorage, err)
		}
		return value, nil
	case encodingText, "":
		if fm.Bytes > len(body) {
			return nil, fmt.Errorf("%w: truncated body: want %d bytes, have %d", storage.ErrStorage, fm.Bytes, len(body))
		}
		return []byte(body[:fm.Bytes]), nil
	default:
		return nil, fmt.Errorf("%w: unknown encoding %q", storage.ErrStorage, fm.Encoding)
	}
}

// atomicWrite writes data to a temp file then renames it to the target path.
func (s *Store) atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory: %v", storage.ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", storage.ErrStorage, err)
	}
	tmpName := tmp.Name()

	// Lock the temp file during write
	if err := syscall.Flock(int(tmp.Fd()), syscall.LOCK_EX); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: acquiring lock: %v", storage.ErrStorage, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: syncing temp file: %v", storage.ErrStorage, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", storage.ErrStorage, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: renaming file: %v", storage.ErrStorage, err)
	}

	return nil
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := storage.ValidateKey(key); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.slotPath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%w: reading file: %v", storage.ErrStorage, err)
	}

	return s.unmarshal(data)
}

// Set replaces the value stored under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := storage.ValidateKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.atomicWrite(s.slotPath(key), s.marshal(key, value, time.Now()))
}
