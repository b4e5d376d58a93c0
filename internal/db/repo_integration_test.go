package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(TestDBURL)
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

	if err := ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := RunMigrations(ctx, MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := EnsureTablesExist(ctx, testDB, []string{"posts", "categories", "posts_to_categories"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func withTx(t *testing.T) (*pg.Tx, context.Context, *Repository) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return tx, ctx, New(tx)
}

func TestRepository_CreatePost_Integration(t *testing.T) {
	tx, ctx, repo := withTx(t)

	post := &Post{
		Title:     "Transaction Semantics",
		Slug:      "transaction-semantics",
		Content:   "Either the post and all its links land, or nothing does.",
		Published: true,
	}
	if err := repo.CreatePost(ctx, post, []int{1, 2}); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	if post.ID == 0 {
		t.Fatal("expected generated id on the post struct")
	}
	if post.CreatedAt.IsZero() {
		t.Error("expected createdAt to be stamped")
	}

	var links []PostToCategory
	err := tx.ModelContext(ctx, &links).
		Where(`"post_id" = ?`, post.ID).
		Select()
	if err != nil {
		t.Fatalf("select links: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 link rows, got %d", len(links))
	}
}

func TestRepository_CreatePost_InvalidCategoryAborts_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	post := &Post{
		Title:   "Broken Links",
		Slug:    "broken-links",
		Content: "The category id does not exist, the whole unit must abort.",
	}
	err := repo.CreatePost(ctx, post, []int{9999})
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
}

func TestRepository_UpdatePost_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	t.Run("MissingPostReturnsNil", func(t *testing.T) {
		now := time.Now()
		post, err := repo.UpdatePost(ctx, &Post{
			ID:        9999,
			Title:     "Ghost",
			Content:   "Content for a post that is not there.",
			UpdatedAt: &now,
		}, false, nil)
		if err != nil {
			t.Fatalf("UpdatePost failed: %v", err)
		}
		if post != nil {
			t.Errorf("expected nil, got %+v", post)
		}
	})

	t.Run("PublishedOnlyWrittenWhenRequested", func(t *testing.T) {
		now := time.Now()
		// setPublished=false with the zero value must not unpublish post 1
		post, err := repo.UpdatePost(ctx, &Post{
			ID:        1,
			Title:     "Intro to Go",
			Content:   "Updated content that stays long enough.",
			UpdatedAt: &now,
		}, false, []int{1})
		if err != nil {
			t.Fatalf("UpdatePost failed: %v", err)
		}
		if !post.Published {
			t.Error("published flag must be untouched when setPublished=false")
		}

		post, err = repo.UpdatePost(ctx, &Post{
			ID:        1,
			Title:     "Intro to Go",
			Content:   "Updated content that stays long enough.",
			UpdatedAt: &now,
		}, true, []int{1})
		if err != nil {
			t.Fatalf("UpdatePost failed: %v", err)
		}
		if post.Published {
			t.Error("expected published=false after explicit unpublish")
		}
	})
}

func TestRepository_SearchPosts_EscapesWildcards_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	// "%" would match everything unescaped; literally it matches nothing here
	posts, err := repo.SearchPosts(ctx, "%", nil)
	if err != nil {
		t.Fatalf("SearchPosts failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected LIKE wildcards to be escaped, got %d results", len(posts))
	}
}

func TestIsUniqueViolation_Integration(t *testing.T) {
	_, ctx, repo := withTx(t)

	err := repo.CreateCategory(ctx, &Category{Name: "Programming", Slug: "programming"})
	if err == nil {
		t.Fatal("expected unique violation for duplicate slug")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation should detect 23505, got %v", err)
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("IsUniqueViolation must not match arbitrary errors")
	}
}
