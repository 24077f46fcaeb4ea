package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthmate/healthmate/internal/models"
)

func newTestClient(t *testing.T) DbClient {
	t.Helper()
	client, err := NewDatabaseClient(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func mustCreateUser(t *testing.T, client DbClient, username string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Password: "pw"}
	require.NoError(t, client.CreateUser(context.Background(), u))
	return u
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	first := mustCreateUser(t, client, "alice")
	assert.Positive(t, first.ID)

	err := client.CreateUser(ctx, &models.User{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// the failed attempt must not touch the store
	n, err := client.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := client.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "pw", got.Password)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	client := newTestClient(t)

	got, err := client.GetUserByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListChatsByUser_FiltersByOwner(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	alice := mustCreateUser(t, client, "alice")
	bob := mustCreateUser(t, client, "bob")

	for _, chat := range []*models.ChatRecord{
		{UserID: alice.ID, Category: "General", UserMessage: "hi", AIResponse: "hello"},
		{UserID: bob.ID, Category: "General", UserMessage: "yo", AIResponse: "hey"},
		{UserID: alice.ID, Category: "Nutrition", UserMessage: "food?", AIResponse: "greens"},
	} {
		require.NoError(t, client.InsertChat(ctx, chat))
	}

	chats, err := client.ListChatsByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, chats, 2)
	for _, ch := range chats {
		assert.Equal(t, alice.ID, ch.UserID)
	}

	chats, err = client.ListChatsByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "yo", chats[0].UserMessage)
}

func TestRecentChats_DescendingByID(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	alice := mustCreateUser(t, client, "alice")
	for i := 0; i < 15; i++ {
		require.NoError(t, client.InsertChat(ctx, &models.ChatRecord{
			UserID: alice.ID, Category: "General", UserMessage: "m", AIResponse: "r",
		}))
	}

	recent, err := client.RecentChats(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	for i := 1; i < len(recent); i++ {
		assert.Greater(t, recent[i-1].ID, recent[i].ID)
	}
}

func TestCountByCategory(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	alice := mustCreateUser(t, client, "alice")
	for _, category := range []string{"Nutrition", "Nutrition", "Nutrition", "General", "General"} {
		require.NoError(t, client.InsertChat(ctx, &models.ChatRecord{
			UserID: alice.ID, Category: category, UserMessage: "m", AIResponse: "r",
		}))
	}

	counts, err := client.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Nutrition": 3, "General": 2}, counts)

	total, err := client.CountChats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	// Reopening the same file must not rerun the schema script.
	path := t.TempDir() + "/healthmate_test.db"

	client, err := NewDatabaseClient(context.Background(), path)
	require.NoError(t, err)
	mustCreateUser(t, client, "alice")
	require.NoError(t, client.Close())

	reopened, err := NewDatabaseClient(context.Background(), path)
	require.NoError(t, err)
	defer reopened.Close()

	n, err := reopened.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
