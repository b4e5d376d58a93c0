package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

//go:generate zenrpc

// PostService provides RPC methods for post operations.
type PostService struct {
	zenrpc.Service
	manager *blogportal.Manager
}

func NewPostService(manager *blogportal.Manager) *PostService {
	return &PostService{manager: manager}
}

// mapError translates domain failures to JSON-RPC errors. Validation errors
// carry the field-level message, duplicate slugs map to 409, everything else
// propagates as an internal error.
func mapError(err error) error {
	var validationErr *blogportal.ValidationError
	if errors.As(err, &validationErr) {
		return zenrpc.NewStringError(400, validationErr.Error())
	}

	if errors.Is(err, blogportal.ErrDuplicateSlug) {
		return zenrpc.NewStringError(409, "slug already exists")
	}

	return err
}

// Create creates a post together with its category links in one transaction
// and returns the new post id.
//
//zenrpc:title post title, at least 3 characters
//zenrpc:content markdown content, at least 10 characters
//zenrpc:published publish immediately, defaults to false
//zenrpc:categoryIds ids of categories to link, non-positive ids are dropped
//zenrpc:return id of the created post
//zenrpc:400 validation failed
//zenrpc:409 duplicate slug
//zenrpc:500 internal server error
func (s *PostService) Create(ctx context.Context, title, content string, published *bool, categoryIDs []int) (int, error) {
	params := blogportal.CreatePostParams{
		Title:       title,
		Content:     content,
		CategoryIDs: categoryIDs,
	}
	if published != nil {
		params.Published = *published
	}

	postID, err := s.manager.CreatePost(ctx, params)
	if err != nil {
		return 0, mapError(err)
	}

	return postID, nil
}

// Update updates the post's title, content and published flag (when supplied)
// and fully replaces its category links. Returns the updated post.
//
//zenrpc:id post numeric ID
//zenrpc:title post title, at least 3 characters
//zenrpc:content markdown content, at least 10 characters
//zenrpc:published new published flag, unchanged when omitted
//zenrpc:categoryIds full replacement set of category ids
//zenrpc:return the updated post with categories
//zenrpc:400 validation failed
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) Update(ctx context.Context, id int, title, content string, published *bool, categoryIDs []int) (*Post, error) {
	post, err := s.manager.UpdatePost(ctx, blogportal.UpdatePostParams{
		ID:          id,
		Title:       title,
		Content:     content,
		Published:   published,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		return nil, mapError(err)
	}

	if post == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	result := NewPost(*post)
	return &result, nil
}

// Delete removes the post; link rows are removed by the cascade. Deleting a
// missing id is not an error, the result reports deleted=false.
//
//zenrpc:id post numeric ID
//zenrpc:return delete outcome
//zenrpc:400 id must be positive
//zenrpc:500 internal server error
func (s *PostService) Delete(ctx context.Context, id int) (DeleteResult, error) {
	if id <= 0 {
		return DeleteResult{}, zenrpc.NewStringError(400, "id must be positive")
	}

	deleted, err := s.manager.DeletePost(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}

	return DeleteResult{ID: id, Deleted: deleted}, nil
}

// GetAll retrieves all posts with their categories regardless of published
// status, sorted by createdAt DESC.
//
//zenrpc:return list of posts with categories
//zenrpc:500 internal server error
func (s *PostService) GetAll(ctx context.Context) ([]Post, error) {
	posts, err := s.manager.Posts(ctx)
	if err != nil {
		return nil, err
	}

	return NewPosts(posts), nil
}

// GetBySlug retrieves a single post by its slug with categories.
//
//zenrpc:slug URL slug of the post
//zenrpc:return post with categories
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	post, err := s.manager.PostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if post == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	result := NewPost(*post)
	return &result, nil
}

// Search retrieves published posts sorted by createdAt DESC. A blank query
// means no title filter; otherwise the query is matched case-insensitively
// as a substring against the title.
//
//zenrpc:query optional title substring, matched case-insensitively
//zenrpc:categoryId optional category filter
//zenrpc:return list of published posts with categories, newest first
//zenrpc:500 internal server error
func (s *PostService) Search(ctx context.Context, query *string, categoryID *int) ([]Post, error) {
	q := ""
	if query != nil {
		q = *query
	}

	posts, err := s.manager.SearchPosts(ctx, q, categoryID)
	if err != nil {
		return nil, err
	}

	return NewPosts(posts), nil
}
