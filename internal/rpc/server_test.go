package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

var (
	testDB     *pg.DB
	testServer http.Handler
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(db.TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.RunMigrations(ctx, db.MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	manager := blogportal.NewManager(db.New(testDB))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testServer = New(logger, manager)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func call(t *testing.T, method string, params any) rpcResponse {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	testServer.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRPC_PostSearch(t *testing.T) {
	resp := call(t, "post.search", map[string]any{"query": "rust"})
	require.Nil(t, resp.Error)

	var posts []Post
	require.NoError(t, json.Unmarshal(resp.Result, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Intro to Rust", posts[0].Title)
	assert.True(t, posts[0].Published)
}

func TestRPC_PostGetAll(t *testing.T) {
	resp := call(t, "post.getAll", nil)
	require.Nil(t, resp.Error)

	var posts []Post
	require.NoError(t, json.Unmarshal(resp.Result, &posts))
	assert.Len(t, posts, 4)
}

func TestRPC_PostGetBySlug(t *testing.T) {
	resp := call(t, "post.getBySlug", map[string]any{"slug": "intro-to-go"})
	require.Nil(t, resp.Error)

	var post Post
	require.NoError(t, json.Unmarshal(resp.Result, &post))
	assert.Equal(t, "Intro to Go", post.Title)

	resp = call(t, "post.getBySlug", map[string]any{"slug": "no-such-slug"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)
}

func TestRPC_PostCreateValidation(t *testing.T) {
	resp := call(t, "post.create", map[string]any{
		"title":   "ab",
		"content": "0123456789",
	})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 400, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Title")
}

func TestRPC_PostLifecycle(t *testing.T) {
	resp := call(t, "post.create", map[string]any{
		"title":       "RPC Lifecycle Post",
		"content":     "Created over the wire, long enough to validate.",
		"published":   true,
		"categoryIds": []int{1},
	})
	require.Nil(t, resp.Error, "create failed")

	var postID int
	require.NoError(t, json.Unmarshal(resp.Result, &postID))
	require.NotZero(t, postID)

	resp = call(t, "post.update", map[string]any{
		"id":          postID,
		"title":       "RPC Lifecycle Post, Edited",
		"content":     "Edited over the wire, still long enough.",
		"categoryIds": []int{2},
	})
	require.Nil(t, resp.Error, "update failed")

	var post Post
	require.NoError(t, json.Unmarshal(resp.Result, &post))
	assert.Equal(t, "RPC Lifecycle Post, Edited", post.Title)
	assert.Equal(t, "rpc-lifecycle-post", post.Slug)
	assert.NotNil(t, post.UpdatedAt)
	require.Len(t, post.Categories, 1)
	assert.Equal(t, 2, post.Categories[0].ID)
	assert.True(t, post.Published, "published must be unchanged when omitted")

	resp = call(t, "post.delete", map[string]any{"id": postID})
	require.Nil(t, resp.Error)

	var deleted DeleteResult
	require.NoError(t, json.Unmarshal(resp.Result, &deleted))
	assert.True(t, deleted.Deleted)

	// deleting again reports nothing deleted, not an error
	resp = call(t, "post.delete", map[string]any{"id": postID})
	require.Nil(t, resp.Error)
	require.NoError(t, json.Unmarshal(resp.Result, &deleted))
	assert.False(t, deleted.Deleted)
}

func TestRPC_UpdateMissingPost(t *testing.T) {
	resp := call(t, "post.update", map[string]any{
		"id":      99999,
		"title":   "Ghost Post",
		"content": "Content for a post that is not there.",
	})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)
}

func TestRPC_CategoryProcedures(t *testing.T) {
	resp := call(t, "category.getAll", nil)
	require.Nil(t, resp.Error)

	var categories []Category
	require.NoError(t, json.Unmarshal(resp.Result, &categories))
	assert.Len(t, categories, 3)

	resp = call(t, "category.getById", map[string]any{"id": 1})
	require.Nil(t, resp.Error)

	var category Category
	require.NoError(t, json.Unmarshal(resp.Result, &category))
	assert.Equal(t, "Programming", category.Name)

	resp = call(t, "category.getById", map[string]any{"id": 99999})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)
}

func TestRPC_CategoryDuplicateSlug(t *testing.T) {
	resp := call(t, "category.create", map[string]any{"name": "Programming"})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 409, resp.Error.Code)
}
