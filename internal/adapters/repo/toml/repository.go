package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/lora-bbs/internal/adapters/repo/document"
	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	documentFileMode = 0o600
	documentDirMode  = 0o700
	documentExt      = ".toml"
	tempFilePattern  = ".%s-*.toml.tmp"
)

// Repository keeps each document in its own TOML file under dir and rewrites
// the whole file on every save.
type Repository struct {
	dir string
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.MessageRepository = (*Repository)(nil)

func NewRepository(dir string) (*Repository, error) {
	if dir == "" {
		return nil, errors.New("storage directory is empty")
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve storage directory: %w", err)
	}

	return &Repository{dir: filepath.Clean(absDir)}, nil
}

func (r *Repository) documentPath(name string) string {
	return filepath.Join(r.dir, name+documentExt)
}

func (r *Repository) LoadPublicLog(ctx context.Context) (domain.PublicLog, error) {
	var file document.PublicLog
	if err := r.load(ctx, document.PublicLogName, &file); err != nil {
		return domain.PublicLog{}, err
	}
	if err := document.ValidateVersion(document.PublicLogName, file.Version); err != nil {
		return domain.PublicLog{}, err
	}

	return file.Domain(), nil
}

func (r *Repository) SavePublicLog(ctx context.Context, log domain.PublicLog) error {
	return r.save(ctx, document.PublicLogName, document.FromPublicLog(log))
}

func (r *Repository) LoadMailbox(ctx context.Context) (domain.Mailbox, error) {
	var file document.Mailbox
	if err := r.load(ctx, document.MailboxName, &file); err != nil {
		return nil, err
	}
	if err := document.ValidateVersion(document.MailboxName, file.Version); err != nil {
		return nil, err
	}

	return file.Domain(), nil
}

func (r *Repository) SaveMailbox(ctx context.Context, mailbox domain.Mailbox) error {
	return r.save(ctx, document.MailboxName, document.FromMailbox(mailbox))
}

func (r *Repository) LoadBoards(ctx context.Context) (domain.Boards, error) {
	var file document.Boards
	if err := r.load(ctx, document.BoardsName, &file); err != nil {
		return nil, err
	}
	if err := document.ValidateVersion(document.BoardsName, file.Version); err != nil {
		return nil, err
	}

	return file.Domain(), nil
}

func (r *Repository) SaveBoards(ctx context.Context, boards domain.Boards) error {
	return r.save(ctx, document.BoardsName, document.FromBoards(boards))
}

// load leaves out untouched when the file does not exist.
func (r *Repository) load(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := r.documentPath(name)
	mu := lockForPath(path)
	mu.RLock()
	defer mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s file: %w", name, err)
	}

	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s file: %w", name, err)
	}

	return nil
}

func (r *Repository) save(ctx context.Context, name string, file any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := r.documentPath(name)
	mu := lockForPath(path)
	mu.Lock()
	defer mu.Unlock()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode %s file: %w", name, err)
	}

	return writeFileAtomic(path, fmt.Sprintf(tempFilePattern, name), data)
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// writeFileAtomic replaces path through a temp file in the same directory so
// readers never see a half-written document.
func writeFileAtomic(path, pattern string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), documentDirMode); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), pattern)
	if err != nil {
		return fmt.Errorf("create temp document file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp document file: %w", err)
	}

	if err := tempFile.Chmod(documentFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp document file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp document file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace document file: %w", err)
	}

	cleanup = false

	return nil
}
