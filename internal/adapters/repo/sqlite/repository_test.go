package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestRepository(t *testing.T, dir string) *Repository {
	t.Helper()

	repo, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepositoryRoundTripAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	public := domain.PublicLog{Entries: []string{"[2026-10-19 08:00:00] Alice: hola"}}
	mailbox := domain.NewMailbox()
	mailbox.Queue("Bob", "Alice", "[2026-10-19 08:02:00] ¿qué tal?")
	boards := domain.SeedBoards()
	boards.Append("General", domain.Post{User: "ana", Msg: "Hola", Timestamp: "2026-10-19 08:04:00"})

	repo, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, repo.SavePublicLog(ctx, public))
	require.NoError(t, repo.SaveMailbox(ctx, mailbox))
	require.NoError(t, repo.SaveBoards(ctx, boards))
	require.NoError(t, repo.Close())

	reopened := openTestRepository(t, dir)

	gotPublic, err := reopened.LoadPublicLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, public, gotPublic)

	gotMailbox, err := reopened.LoadMailbox(ctx)
	require.NoError(t, err)
	assert.Equal(t, mailbox, gotMailbox)

	gotBoards, err := reopened.LoadBoards(ctx)
	require.NoError(t, err)
	assert.Equal(t, boards, gotBoards)
}

func TestRepositorySaveReplacesWholeDocument(t *testing.T) {
	repo := openTestRepository(t, t.TempDir())
	ctx := context.Background()

	require.NoError(t, repo.SavePublicLog(ctx, domain.PublicLog{Entries: []string{"a", "b"}}))
	require.NoError(t, repo.SavePublicLog(ctx, domain.PublicLog{Entries: []string{"c"}}))

	got, err := repo.LoadPublicLog(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, got.Entries)

	var rows int
	require.NoError(t, repo.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestRepositoryMissingRowsLoadEmpty(t *testing.T) {
	repo := openTestRepository(t, t.TempDir())
	ctx := context.Background()

	public, err := repo.LoadPublicLog(ctx)
	require.NoError(t, err)
	assert.Empty(t, public.Entries)

	boards, err := repo.LoadBoards(ctx)
	require.NoError(t, err)
	assert.Nil(t, boards)
}

func TestRepositoryCorruptRowReturnsError(t *testing.T) {
	repo := openTestRepository(t, t.TempDir())

	_, err := repo.db.Exec(upsertDocument, "private_chat", "{not json")
	require.NoError(t, err)

	_, err = repo.LoadMailbox(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode private_chat document")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	repo := openTestRepository(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.SaveBoards(ctx, domain.SeedBoards())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
