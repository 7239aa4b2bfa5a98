package ports

import (
	"context"

	"github.com/bnema/lora-bbs/internal/domain"
)

// MessageRepository persists the three BBS documents. Each Save rewrites the
// whole document; a missing document loads as its zero value.
type MessageRepository interface {
	LoadPublicLog(ctx context.Context) (domain.PublicLog, error)
	SavePublicLog(ctx context.Context, log domain.PublicLog) error
	LoadMailbox(ctx context.Context) (domain.Mailbox, error)
	SaveMailbox(ctx context.Context, mailbox domain.Mailbox) error
	LoadBoards(ctx context.Context) (domain.Boards, error)
	SaveBoards(ctx context.Context, boards domain.Boards) error
}
