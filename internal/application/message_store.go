package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports"
	"go.uber.org/zap"
)

const (
	PublicWindow = 10
	BoardWindow  = 5
)

// MessageStore owns the public log, the mailboxes and the bulletin boards.
// Every mutation rewrites its document before returning. Write failures are
// logged and otherwise ignored.
type MessageStore struct {
	repo  ports.MessageRepository
	clock ports.Clock
	log   *zap.Logger

	publicMu sync.Mutex
	public   domain.PublicLog

	mailMu  sync.Mutex
	mailbox domain.Mailbox

	boardsMu sync.Mutex
	boards   domain.Boards
}

// OpenMessageStore loads the three documents. A document that cannot be read
// starts empty (boards start seeded).
func OpenMessageStore(ctx context.Context, repo ports.MessageRepository, clock ports.Clock, log *zap.Logger) *MessageStore {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &MessageStore{repo: repo, clock: clock, log: log}

	public, err := repo.LoadPublicLog(ctx)
	if err != nil {
		log.Warn("load public log, starting empty", zap.Error(err))
		public = domain.PublicLog{}
	}
	s.public = public

	mailbox, err := repo.LoadMailbox(ctx)
	if err != nil {
		log.Warn("load mailbox, starting empty", zap.Error(err))
		mailbox = nil
	}
	if mailbox == nil {
		mailbox = domain.NewMailbox()
	}
	s.mailbox = mailbox

	boards, err := repo.LoadBoards(ctx)
	if err != nil {
		log.Warn("load boards, starting with defaults", zap.Error(err))
		boards = nil
	}
	if boards == nil {
		boards = domain.Boards{}
	}
	boards.EnsureDefaults()
	s.boards = boards

	return s
}

// PostPublic appends a formatted entry for sender and returns it.
func (s *MessageStore) PostPublic(ctx context.Context, sender, body string) (string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", domain.ErrEmptyMessage
	}

	s.publicMu.Lock()
	defer s.publicMu.Unlock()

	entry := domain.FormatPublic(s.clock.Now(), sender, body)
	s.public.Append(entry)
	s.persist("public log", s.repo.SavePublicLog(ctx, s.public))

	return entry, nil
}

func (s *MessageStore) RecentPublic() []string {
	s.publicMu.Lock()
	defer s.publicMu.Unlock()

	return s.public.Recent(PublicWindow)
}

func (s *MessageStore) SendPrivate(ctx context.Context, cmd SendPrivateCommand) error {
	recipient := strings.TrimSpace(cmd.Recipient)
	if recipient == "" {
		return domain.ErrMissingRecipient
	}
	body := strings.TrimSpace(cmd.Body)
	if body == "" {
		return domain.ErrEmptyMessage
	}

	s.mailMu.Lock()
	defer s.mailMu.Unlock()

	s.mailbox.Queue(recipient, cmd.Sender, domain.FormatPrivate(s.clock.Now(), body))
	s.persist("mailbox", s.repo.SaveMailbox(ctx, s.mailbox))

	return nil
}

// PendingPrivate lists queued entries for name without removing them.
func (s *MessageStore) PendingPrivate(name string) []domain.PrivateEntry {
	s.mailMu.Lock()
	defer s.mailMu.Unlock()

	return s.mailbox.Pending(name)
}

// DrainMailbox removes and returns every entry queued for name.
func (s *MessageStore) DrainMailbox(ctx context.Context, name string) []domain.PrivateEntry {
	s.mailMu.Lock()
	defer s.mailMu.Unlock()

	entries := s.mailbox.Drain(name)
	if len(entries) > 0 {
		s.persist("mailbox", s.repo.SaveMailbox(ctx, s.mailbox))
	}

	return entries
}

func (s *MessageStore) Categories() []string {
	s.boardsMu.Lock()
	defer s.boardsMu.Unlock()

	return s.boards.Categories()
}

// ReadBoard resolves category case-insensitively and returns its canonical
// name with the most recent posts.
func (s *MessageStore) ReadBoard(category string) (string, []domain.Post, error) {
	s.boardsMu.Lock()
	defer s.boardsMu.Unlock()

	canonical, ok := s.boards.Canonical(category)
	if !ok {
		return "", nil, fmt.Errorf("read board %q: %w", category, domain.ErrUnknownCategory)
	}

	return canonical, s.boards.Recent(canonical, BoardWindow), nil
}

func (s *MessageStore) PostBoard(ctx context.Context, cmd PostBoardCommand) error {
	body := strings.TrimSpace(cmd.Body)
	if body == "" {
		return domain.ErrEmptyMessage
	}

	s.boardsMu.Lock()
	defer s.boardsMu.Unlock()

	canonical, ok := s.boards.Canonical(cmd.Category)
	if !ok {
		return fmt.Errorf("post to board %q: %w", cmd.Category, domain.ErrUnknownCategory)
	}

	s.boards.Append(canonical, domain.Post{
		User:      cmd.User,
		Msg:       body,
		Timestamp: domain.FormatTimestamp(s.clock.Now()),
	})
	s.persist("boards", s.repo.SaveBoards(ctx, s.boards))

	return nil
}

func (s *MessageStore) Snapshot() Snapshot {
	var snapshot Snapshot

	s.publicMu.Lock()
	snapshot.Public = append([]string(nil), s.public.Entries...)
	s.publicMu.Unlock()

	s.mailMu.Lock()
	for recipient := range s.mailbox {
		snapshot.Mailboxes = append(snapshot.Mailboxes, MailboxCount{
			Recipient: recipient,
			Messages:  s.mailbox.Count(recipient),
		})
	}
	s.mailMu.Unlock()
	sort.Slice(snapshot.Mailboxes, func(i, j int) bool {
		return snapshot.Mailboxes[i].Recipient < snapshot.Mailboxes[j].Recipient
	})

	s.boardsMu.Lock()
	for _, category := range s.boards.Categories() {
		snapshot.Boards = append(snapshot.Boards, BoardSummary{
			Category: category,
			Posts:    append([]domain.Post(nil), s.boards[category]...),
		})
	}
	s.boardsMu.Unlock()

	return snapshot
}

func (s *MessageStore) persist(document string, err error) {
	if err != nil {
		s.log.Warn("persist document", zap.String("document", document), zap.Error(err))
	}
}
