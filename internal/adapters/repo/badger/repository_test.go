package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepositoryRoundTrip(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	public := domain.PublicLog{Entries: []string{"[2026-10-19 08:00:00] Alice: hola"}}
	mailbox := domain.NewMailbox()
	mailbox.Queue("Bob", "Alice", "[2026-10-19 08:02:00] hola")
	mailbox.Queue("Bob", "Alice", "[2026-10-19 08:03:00] ¿estás?")
	boards := domain.SeedBoards()
	boards.Append("Off-Topic", domain.Post{User: "ana", Msg: "Café", Timestamp: "2026-10-19 08:04:00"})

	require.NoError(t, repo.SavePublicLog(ctx, public))
	require.NoError(t, repo.SaveMailbox(ctx, mailbox))
	require.NoError(t, repo.SaveBoards(ctx, boards))

	gotPublic, err := repo.LoadPublicLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, public, gotPublic)

	gotMailbox, err := repo.LoadMailbox(ctx)
	require.NoError(t, err)
	assert.Equal(t, mailbox, gotMailbox)

	gotBoards, err := repo.LoadBoards(ctx)
	require.NoError(t, err)
	assert.Equal(t, boards, gotBoards)
}

func TestRepositoryMissingKeysLoadEmpty(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	public, err := repo.LoadPublicLog(ctx)
	require.NoError(t, err)
	assert.Empty(t, public.Entries)

	mailbox, err := repo.LoadMailbox(ctx)
	require.NoError(t, err)
	assert.Empty(t, mailbox)
}

func TestRepositoryCorruptValueReturnsError(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("doc:boards"), []byte("{broken"))
	}))

	_, err := New(db).LoadBoards(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "load boards document")
}

func TestRepositoryPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, repo.SavePublicLog(ctx, domain.PublicLog{Entries: []string{"uno"}}))
	require.NoError(t, repo.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.LoadPublicLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"uno"}, got.Entries)
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	repo := New(setupTestDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.SaveMailbox(ctx, domain.NewMailbox())
	assert.True(t, errors.Is(err, context.Canceled))
}
