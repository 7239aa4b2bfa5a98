package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/lora-bbs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	public := domain.PublicLog{Entries: []string{
		"[2026-10-19 08:00:00] Alice: hola",
		"[2026-10-19 08:01:00] Bob: buenas, \"amigos\"",
	}}
	mailbox := domain.NewMailbox()
	mailbox.Queue("Bob", "Alice", "[2026-10-19 08:02:00] nos vemos")
	mailbox.Queue("Bob", "Carol Ruiz", "[2026-10-19 08:03:00] ok")
	boards := domain.SeedBoards()
	boards.Append("LoRa", domain.Post{User: "ana", Msg: "SF12 llega lejos", Timestamp: "2026-10-19 08:04:00"})

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

func TestRepositoryMissingFilesLoadEmpty(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	ctx := context.Background()

	public, err := repo.LoadPublicLog(ctx)
	require.NoError(t, err)
	assert.Empty(t, public.Entries)

	mailbox, err := repo.LoadMailbox(ctx)
	require.NoError(t, err)
	assert.Empty(t, mailbox)

	boards, err := repo.LoadBoards(ctx)
	require.NoError(t, err)
	assert.Nil(t, boards)
}

func TestRepositoryDrainedRecipientIsNotWritten(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(t.TempDir())
	require.NoError(t, err)

	mailbox := domain.NewMailbox()
	mailbox.Queue("Bob", "Alice", "[ts] hola")
	mailbox.Drain("Bob")
	require.NoError(t, repo.SaveMailbox(context.Background(), mailbox))

	data, err := os.ReadFile(repo.documentPath("private_chat"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Bob")
}

func TestRepositorySaveEnforcesPermissionsAndVersion(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	repo, err := NewRepository(dir)
	require.NoError(t, err)

	require.NoError(t, repo.SavePublicLog(context.Background(), domain.PublicLog{Entries: []string{"x"}}))

	info, err := os.Stat(filepath.Join(dir, "chat_public.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(filepath.Join(dir, "chat_public.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")

	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boards.toml"), []byte("categories = ["), 0o600))

	repo, err := NewRepository(dir)
	require.NoError(t, err)

	_, err = repo.LoadBoards(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode boards file")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chat_public.toml"), []byte(strings.Join([]string{
		"version = 999",
		"entries = []",
		"",
	}, "\n")), 0o600))

	repo, err := NewRepository(dir)
	require.NoError(t, err)

	_, err = repo.LoadPublicLog(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported chat_public schema version")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo, err := NewRepository(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = repo.SaveBoards(ctx, domain.SeedBoards())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryRejectsEmptyDirectory(t *testing.T) {
	_, err := NewRepository("")
	require.Error(t, err)
}

func TestRepositoryConcurrentSavesAcrossInstancesKeepFileReadable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repoA, err := NewRepository(dir)
	require.NoError(t, err)
	repoB, err := NewRepository(dir)
	require.NoError(t, err)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			log := domain.PublicLog{Entries: []string{prefix + strconv.Itoa(i)}}
			errCh <- repo.SavePublicLog(context.Background(), log)
		}
	}

	go write(repoA, "a-")
	go write(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	public, err := repoA.LoadPublicLog(context.Background())
	require.NoError(t, err)
	assert.Len(t, public.Entries, 1)
}
