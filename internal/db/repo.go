package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pg/pg/v10"
)

// ErrNoInsertID signals that an insert did not produce a generated id. The
// surrounding transaction is rolled back, nothing is persisted.
var ErrNoInsertID = errors.New("insert returned no id")

type Repository struct {
	db pg.DBI
}

// New creates a Repository. Accepts pg.DBI so it works on a live *pg.DB as
// well as inside a *pg.Tx in tests.
func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (duplicate post or category slug).
func IsUniqueViolation(err error) bool {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}

// CreatePost inserts a post and its category links in one transaction and
// fills post.ID. Either the post and all links are persisted or nothing is.
func (r *Repository) CreatePost(ctx context.Context, post *Post, categoryIDs []int) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ModelContext(ctx, post).Insert(); err != nil {
			return fmt.Errorf("insert post: %w", err)
		}

		if post.ID == 0 {
			return ErrNoInsertID
		}

		return insertPostLinks(ctx, tx, post.ID, categoryIDs)
	})
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

// UpdatePost updates the post's fields and fully replaces its category links
// in one transaction. The published column is only written when setPublished
// is true. Returns the updated post with categories, or nil if no post with
// post.ID exists.
func (r *Repository) UpdatePost(ctx context.Context, post *Post, setPublished bool, categoryIDs []int) (*Post, error) {
	columns := []string{
		Columns.Post.Title,
		Columns.Post.Content,
		Columns.Post.UpdatedAt,
	}
	if setPublished {
		columns = append(columns, Columns.Post.Published)
	}

	var updated bool
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		res, err := tx.ModelContext(ctx, post).
			Column(columns...).
			WherePK().
			Update()
		if err != nil {
			return fmt.Errorf("update post row: %w", err)
		}

		if res.RowsAffected() == 0 {
			return nil
		}
		updated = true

		_, err = tx.ModelContext(ctx, (*PostToCategory)(nil)).
			Where(`"post_id" = ?`, post.ID).
			Delete()
		if err != nil {
			return fmt.Errorf("delete post links: %w", err)
		}

		return insertPostLinks(ctx, tx, post.ID, categoryIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	if !updated {
		return nil, nil
	}

	return r.PostByID(ctx, post.ID)
}

func insertPostLinks(ctx context.Context, tx *pg.Tx, postID int, categoryIDs []int) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]PostToCategory, len(categoryIDs))
	for i, categoryID := range categoryIDs {
		links[i] = PostToCategory{
			PostID:     postID,
			CategoryID: categoryID,
		}
	}

	if _, err := tx.ModelContext(ctx, &links).Insert(); err != nil {
		return fmt.Errorf("insert post links: %w", err)
	}

	return nil
}

// DeletePost removes the post row; the join rows go away via cascade.
// Returns false when no post with this id exists.
func (r *Repository) DeletePost(ctx context.Context, postID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."id" = ?`, postID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// Posts retrieves all posts regardless of published status, with categories,
// sorted by created_at DESC.
func (r *Repository) Posts(ctx context.Context) ([]Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Relation(Columns.Post.Categories).
		OrderExpr(`"t"."created_at" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostByID(ctx context.Context, postID int) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation(Columns.Post.Categories).
		Where(`"t"."id" = ?`, postID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *Repository) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	post := &Post{}
	err := r.db.ModelContext(ctx, post).
		Relation(Columns.Post.Categories).
		Where(`"t"."slug" = ?`, slug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}

	return post, nil
}

// SearchPosts retrieves published posts with optional case-insensitive
// substring matching on the title and optional category filtering.
// Results are sorted by created_at DESC and include categories.
func (r *Repository) SearchPosts(ctx context.Context, query string, categoryID *int) ([]Post, error) {
	var posts []Post
	q := r.db.ModelContext(ctx, &posts).
		Relation(Columns.Post.Categories).
		Where(`"t"."published" = ?`, true)

	if query != "" {
		q = q.Where(`"t"."title" ILIKE ?`, "%"+escapeLike(query)+"%")
	}

	if categoryID != nil {
		q = q.Where(`EXISTS (
			SELECT 1 FROM "posts_to_categories" "ptc"
			WHERE "ptc"."post_id" = "t"."id" AND "ptc"."category_id" = ?
		)`, *categoryID)
	}

	err := q.
		OrderExpr(`"t"."created_at" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return posts, nil
}

// escapeLike escapes LIKE wildcards so the query text matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func (r *Repository) CreateCategory(ctx context.Context, category *Category) error {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

// Categories retrieves all categories sorted by name.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."id" = ?`, categoryID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// DeleteCategory removes the category row; its join rows go away via cascade,
// referencing posts stay. Returns false when no category with this id exists.
func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"t"."id" = ?`, categoryID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}
