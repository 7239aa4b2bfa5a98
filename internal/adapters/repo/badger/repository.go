package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/lora-bbs/internal/adapters/repo/document"
	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports"
	"github.com/dgraph-io/badger/v4"
)

const keyPrefix = "doc:"

// Repository stores each document as one JSON value under "doc:<name>".
type Repository struct {
	db *badger.DB
}

var _ ports.MessageRepository = (*Repository)(nil)

func Open(dir string) (*Repository, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	return New(db), nil
}

func New(db *badger.DB) *Repository {
	return &Repository{db: db}
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

func (r *Repository) load(ctx context.Context, name string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + name))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s document: %w", name, err)
	}

	return nil
}

func (r *Repository) save(ctx context.Context, name string, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s document: %w", name, err)
	}

	if err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+name), data)
	}); err != nil {
		return fmt.Errorf("store %s document: %w", name, err)
	}

	return nil
}
