package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	tomlrepo "github.com/bnema/lora-bbs/internal/adapters/repo/toml"
	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/bnema/lora-bbs/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var fixedNow = time.Date(2026, 10, 19, 21, 30, 0, 0, time.Local)

func newTestStore(t *testing.T) (*MessageStore, *mocks.MockMessageRepository) {
	t.Helper()

	repo := mocks.NewMockMessageRepository(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()

	repo.EXPECT().LoadPublicLog(mockAnyContext()).Return(domain.PublicLog{}, nil)
	repo.EXPECT().LoadMailbox(mockAnyContext()).Return(domain.NewMailbox(), nil)
	repo.EXPECT().LoadBoards(mockAnyContext()).Return(domain.SeedBoards(), nil)

	return OpenMessageStore(context.Background(), repo, clock, zap.NewNop()), repo
}

func TestOpenMessageStoreStartsEmptyWhenDocumentsAreUnreadable(t *testing.T) {
	repo := mocks.NewMockMessageRepository(t)
	core, logs := observer.New(zapcore.WarnLevel)

	repo.EXPECT().LoadPublicLog(mockAnyContext()).Return(domain.PublicLog{}, errors.New("decode chat_public: bad toml"))
	repo.EXPECT().LoadMailbox(mockAnyContext()).Return(nil, errors.New("decode private_chat: bad toml"))
	repo.EXPECT().LoadBoards(mockAnyContext()).Return(nil, errors.New("decode boards: bad toml"))

	store := OpenMessageStore(context.Background(), repo, nil, zap.New(core))

	assert.Empty(t, store.RecentPublic())
	assert.Empty(t, store.PendingPrivate("Bob"))
	assert.Equal(t, []string{"General", "LoRa", "Off-Topic"}, store.Categories())
	assert.Equal(t, 3, logs.Len())
}

func TestMessageStorePostPublicPersistsFormattedEntry(t *testing.T) {
	store, repo := newTestStore(t)

	repo.EXPECT().SavePublicLog(mockAnyContext(), mock.MatchedBy(func(log domain.PublicLog) bool {
		return len(log.Entries) == 1 && log.Entries[0] == "[2026-10-19 21:30:00] Alice: hola a todos"
	})).Return(nil).Once()

	entry, err := store.PostPublic(context.Background(), "Alice", "  hola a todos ")
	require.NoError(t, err)
	assert.Equal(t, "[2026-10-19 21:30:00] Alice: hola a todos", entry)
}

func TestMessageStorePostPublicRejectsEmptyBody(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.PostPublic(context.Background(), "Alice", "   ")
	require.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.Empty(t, store.RecentPublic())
}

func TestMessageStoreKeepsEntryWhenSaveFails(t *testing.T) {
	repo := mocks.NewMockMessageRepository(t)
	core, logs := observer.New(zapcore.WarnLevel)
	repo.EXPECT().LoadPublicLog(mockAnyContext()).Return(domain.PublicLog{}, nil)
	repo.EXPECT().LoadMailbox(mockAnyContext()).Return(domain.NewMailbox(), nil)
	repo.EXPECT().LoadBoards(mockAnyContext()).Return(domain.SeedBoards(), nil)
	repo.EXPECT().SavePublicLog(mockAnyContext(), mock.Anything).Return(errors.New("disk full"))

	store := OpenMessageStore(context.Background(), repo, nil, zap.New(core))

	_, err := store.PostPublic(context.Background(), "Alice", "hola")
	require.NoError(t, err)
	assert.Len(t, store.RecentPublic(), 1)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "persist document", entry.Message)
	assert.Equal(t, "public log", entry.ContextMap()["document"])
}

func TestMessageStoreRecentPublicReturnsLastTenOldestFirst(t *testing.T) {
	store, repo := newTestStore(t)
	repo.EXPECT().SavePublicLog(mockAnyContext(), mock.Anything).Return(nil).Times(12)

	for i := 1; i <= 12; i++ {
		_, err := store.PostPublic(context.Background(), "Alice", fmt.Sprintf("msg %d", i))
		require.NoError(t, err)
	}

	recent := store.RecentPublic()
	require.Len(t, recent, PublicWindow)
	assert.Equal(t, "[2026-10-19 21:30:00] Alice: msg 3", recent[0])
	assert.Equal(t, "[2026-10-19 21:30:00] Alice: msg 12", recent[9])
}

func TestMessageStoreMailboxIsReadOnce(t *testing.T) {
	store, repo := newTestStore(t)

	repo.EXPECT().SaveMailbox(mockAnyContext(), mock.MatchedBy(func(box domain.Mailbox) bool {
		return len(box["Bob"]["Alice"]) == 1
	})).Return(nil).Once()
	repo.EXPECT().SaveMailbox(mockAnyContext(), mock.MatchedBy(func(box domain.Mailbox) bool {
		_, ok := box["Bob"]
		return !ok
	})).Return(nil).Once()

	err := store.SendPrivate(context.Background(), SendPrivateCommand{Sender: "Alice", Recipient: "Bob", Body: "hola"})
	require.NoError(t, err)

	assert.Equal(t, []domain.PrivateEntry{{Sender: "Alice", Entry: "[2026-10-19 21:30:00] hola"}}, store.PendingPrivate("Bob"))

	drained := store.DrainMailbox(context.Background(), "Bob")
	assert.Equal(t, []domain.PrivateEntry{{Sender: "Alice", Entry: "[2026-10-19 21:30:00] hola"}}, drained)
	assert.Empty(t, store.PendingPrivate("Bob"))
	assert.Empty(t, store.Snapshot().Mailboxes)
}

func TestMessageStoreDrainEmptyMailboxDoesNotPersist(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Empty(t, store.DrainMailbox(context.Background(), "Nadie"))
}

func TestMessageStoreSendPrivateValidation(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.SendPrivate(context.Background(), SendPrivateCommand{Sender: "Alice", Recipient: " ", Body: "hola"})
	assert.ErrorIs(t, err, domain.ErrMissingRecipient)

	err = store.SendPrivate(context.Background(), SendPrivateCommand{Sender: "Alice", Recipient: "Bob", Body: " "})
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)

	assert.Empty(t, store.PendingPrivate("Bob"))
}

func TestMessageStoreReadBoardCapsWindowAndIgnoresCase(t *testing.T) {
	store, repo := newTestStore(t)
	repo.EXPECT().SaveBoards(mockAnyContext(), mock.Anything).Return(nil).Times(7)

	for i := 1; i <= 7; i++ {
		err := store.PostBoard(context.Background(), PostBoardCommand{User: "ana", Category: "lora", Body: fmt.Sprintf("Post %d", i)})
		require.NoError(t, err)
	}

	category, posts, err := store.ReadBoard("LORA")
	require.NoError(t, err)
	assert.Equal(t, "LoRa", category)
	require.Len(t, posts, BoardWindow)
	assert.Equal(t, "Post 3", posts[0].Msg)
	assert.Equal(t, domain.Post{User: "ana", Msg: "Post 7", Timestamp: "2026-10-19 21:30:00"}, posts[4])
}

func TestMessageStorePostBoardRejectsUnknownCategory(t *testing.T) {
	store, _ := newTestStore(t)
	before := store.Snapshot()

	err := store.PostBoard(context.Background(), PostBoardCommand{User: "ana", Category: "Ventas", Body: "hola"})
	require.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, _, err = store.ReadBoard("Ventas")
	require.ErrorIs(t, err, domain.ErrUnknownCategory)

	err = store.PostBoard(context.Background(), PostBoardCommand{User: "ana", Category: "General", Body: "  "})
	require.ErrorIs(t, err, domain.ErrEmptyMessage)

	assert.Equal(t, before, store.Snapshot())
}

func TestMessageStoreSurvivesRestartWithTomlRepository(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	repo, err := tomlrepo.NewRepository(dir)
	require.NoError(t, err)

	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(fixedNow)

	store := OpenMessageStore(context.Background(), repo, clock, zap.NewNop())
	_, err = store.PostPublic(context.Background(), "Alice", "hola")
	require.NoError(t, err)
	require.NoError(t, store.SendPrivate(context.Background(), SendPrivateCommand{Sender: "Alice", Recipient: "Bob", Body: "privado"}))
	require.NoError(t, store.PostBoard(context.Background(), PostBoardCommand{User: "Alice", Category: "off-topic", Body: "Mensaje Con Mayúsculas"}))

	reopened := OpenMessageStore(context.Background(), repo, clock, zap.NewNop())

	assert.Equal(t, []string{"[2026-10-19 21:30:00] Alice: hola"}, reopened.RecentPublic())
	assert.Equal(t, 1, len(reopened.PendingPrivate("Bob")))
	_, posts, err := reopened.ReadBoard("Off-Topic")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Mensaje Con Mayúsculas", posts[0].Msg)
}

func TestPresenceListsSortedNames(t *testing.T) {
	presence := NewPresence()
	presence.Add("zoe")
	presence.Add("Bob")
	presence.Add("alice")
	presence.Remove("zoe")

	assert.Equal(t, []string{"Bob", "alice"}, presence.List())
	assert.True(t, presence.Contains("Bob"))
	assert.False(t, presence.Contains("zoe"))
}

func mockAnyContext() interface{} {
	return mock.Anything
}
