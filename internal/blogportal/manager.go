package blogportal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type Manager struct {
	db       *db.Repository
	validate *validator.Validate
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db:       repo,
		validate: validator.New(),
	}
}

func (m *Manager) validateStruct(s any) error {
	err := m.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return newValidationError(fieldErrs[0])
	}

	return err
}

// sanitizeCategoryIDs drops non-positive and duplicate ids.
func sanitizeCategoryIDs(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(ids))
	result := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

type CreatePostParams struct {
	Title       string `validate:"min=3"`
	Content     string `validate:"min=10"`
	Published   bool
	CategoryIDs []int
}

// CreatePost computes the slug from the title and writes the post row and its
// category links as one transaction. Returns the new post id.
func (m *Manager) CreatePost(ctx context.Context, params CreatePostParams) (int, error) {
	if err := m.validateStruct(params); err != nil {
		return 0, err
	}

	post := &db.Post{
		Title:     params.Title,
		Slug:      Slugify(params.Title),
		Content:   params.Content,
		Published: params.Published,
	}

	err := m.db.CreatePost(ctx, post, sanitizeCategoryIDs(params.CategoryIDs))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return 0, fmt.Errorf("slug %q: %w", post.Slug, ErrDuplicateSlug)
		}
		return 0, fmt.Errorf("db create post: %w", err)
	}

	return post.ID, nil
}

type UpdatePostParams struct {
	ID          int    `validate:"gt=0"`
	Title       string `validate:"min=3"`
	Content     string `validate:"min=10"`
	Published   *bool
	CategoryIDs []int
}

// UpdatePost updates the post's fields (published only when supplied), stamps
// updatedAt and fully replaces the category links: afterwards the post's link
// set exactly equals params.CategoryIDs. Returns nil when the post does not
// exist. The slug is never recomputed, edited titles keep their URL.
func (m *Manager) UpdatePost(ctx context.Context, params UpdatePostParams) (*Post, error) {
	if err := m.validateStruct(params); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &db.Post{
		ID:        params.ID,
		Title:     params.Title,
		Content:   params.Content,
		UpdatedAt: &now,
	}

	setPublished := params.Published != nil
	if setPublished {
		post.Published = *params.Published
	}

	dbPost, err := m.db.UpdatePost(ctx, post, setPublished, sanitizeCategoryIDs(params.CategoryIDs))
	if err != nil {
		return nil, fmt.Errorf("db update post: %w", err)
	} else if dbPost == nil {
		return nil, nil
	}

	result := NewPost(*dbPost)
	return &result, nil
}

// DeletePost removes the post; link rows are cleaned up by the cascade.
// Deleting a missing id is not an error, it reports deleted=false.
func (m *Manager) DeletePost(ctx context.Context, postID int) (bool, error) {
	deleted, err := m.db.DeletePost(ctx, postID)
	if err != nil {
		return false, fmt.Errorf("db delete post: %w", err)
	}

	return deleted, nil
}

// Posts retrieves all posts with their categories regardless of published
// status, sorted by createdAt DESC.
func (m *Manager) Posts(ctx context.Context) ([]Post, error) {
	dbPosts, err := m.db.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return NewPosts(dbPosts), nil
}

// PostBySlug returns the post with its categories, or nil when absent.
func (m *Manager) PostBySlug(ctx context.Context, slug string) (*Post, error) {
	dbPost, err := m.db.PostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get post by slug: %w", err)
	} else if dbPost == nil {
		return nil, nil
	}

	result := NewPost(*dbPost)
	return &result, nil
}

// SearchPosts returns published posts sorted by createdAt DESC. A blank query
// means no title filter; otherwise the query is matched case-insensitively as
// a substring against the title only.
func (m *Manager) SearchPosts(ctx context.Context, query string, categoryID *int) ([]Post, error) {
	dbPosts, err := m.db.SearchPosts(ctx, strings.TrimSpace(query), categoryID)
	if err != nil {
		return nil, fmt.Errorf("db search posts: %w", err)
	}

	return NewPosts(dbPosts), nil
}
