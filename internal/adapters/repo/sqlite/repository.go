package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/lora-bbs/internal/adapters/repo/document"
	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports"
	_ "github.com/mattn/go-sqlite3"
)

const databaseFile = "bbs.db"

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	name TEXT PRIMARY KEY,
	body TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

const upsertDocument = `
INSERT INTO documents (name, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`

// Repository stores each document as one JSON row of the documents table.
type Repository struct {
	db *sql.DB
}

var _ ports.MessageRepository = (*Repository)(nil)

func Open(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	path := filepath.Join(dir, databaseFile)
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=1&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) LoadPublicLog(ctx context.Context) (domain.PublicLog, error) {
	var doc document.PublicLog
	if err := r.load(ctx, document.PublicLogName, &doc); err != nil {
		return domain.PublicLog{}, err
	}
	if err := document.ValidateVersion(document.PublicLogName, doc.Version); err != nil {
		return domain.PublicLog{}, err
	}

	return doc.Domain(), nil
}

func (r *Repository) SavePublicLog(ctx context.Context, log domain.PublicLog) error {
	return r.save(ctx, document.PublicLogName, document.FromPublicLog(log))
}

func (r *Repository) LoadMailbox(ctx context.Context) (domain.Mailbox, error) {
	var doc document.Mailbox
	if err := r.load(ctx, document.MailboxName, &doc); err != nil {
		return nil, err
	}
	if err := document.ValidateVersion(document.MailboxName, doc.Version); err != nil {
		return nil, err
	}

	return doc.Domain(), nil
}

func (r *Repository) SaveMailbox(ctx context.Context, mailbox domain.Mailbox) error {
	return r.save(ctx, document.MailboxName, document.FromMailbox(mailbox))
}

func (r *Repository) LoadBoards(ctx context.Context) (domain.Boards, error) {
	var doc document.Boards
	if err := r.load(ctx, document.BoardsName, &doc); err != nil {
		return nil, err
	}
	if err := document.ValidateVersion(document.BoardsName, doc.Version); err != nil {
		return nil, err
	}

	return doc.Domain(), nil
}

func (r *Repository) SaveBoards(ctx context.Context, boards domain.Boards) error {
	return r.save(ctx, document.BoardsName, document.FromBoards(boards))
}

// load leaves out untouched when the row does not exist.
func (r *Repository) load(ctx context.Context, name string, out any) error {
	var body string
	err := r.db.QueryRowContext(ctx, "SELECT body FROM documents WHERE name = ?", name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("query %s document: %w", name, err)
	}

	if err := json.Unmarshal([]byte(body), out); err != nil {
		return fmt.Errorf("decode %s document: %w", name, err)
	}

	return nil
}

func (r *Repository) save(ctx context.Context, name string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", name, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s transaction: %w", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsertDocument, name, string(body)); err != nil {
		return fmt.Errorf("write %s document: %w", name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s document: %w", name, err)
	}

	return nil
}
