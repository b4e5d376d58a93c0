package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
)

// CategoryService provides RPC methods for category operations.
type CategoryService struct {
	zenrpc.Service
	manager *blogportal.Manager
}

func NewCategoryService(manager *blogportal.Manager) *CategoryService {
	return &CategoryService{manager: manager}
}

// Create inserts a category with a slug derived from its name.
//
//zenrpc:name category name, non-empty
//zenrpc:return the created category
//zenrpc:400 validation failed
//zenrpc:409 duplicate slug
//zenrpc:500 internal server error
func (s *CategoryService) Create(ctx context.Context, name string) (*Category, error) {
	category, err := s.manager.CreateCategory(ctx, blogportal.CreateCategoryParams{Name: name})
	if err != nil {
		return nil, mapError(err)
	}

	result := NewCategory(*category)
	return &result, nil
}

// GetAll retrieves all categories sorted by name.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *CategoryService) GetAll(ctx context.Context) ([]Category, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}

// GetByID retrieves a single category by ID.
//
//zenrpc:id category numeric ID
//zenrpc:return category
//zenrpc:400 id must be positive
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *CategoryService) GetByID(ctx context.Context, id int) (*Category, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	category, err := s.manager.CategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if category == nil {
		return nil, zenrpc.NewStringError(404, "category not found")
	}

	result := NewCategory(*category)
	return &result, nil
}

// Delete removes the category; its link rows are removed by the cascade and
// referencing posts stay. Deleting a missing id is not an error, the result
// reports deleted=false.
//
//zenrpc:id category numeric ID
//zenrpc:return delete outcome
//zenrpc:400 id must be positive
//zenrpc:500 internal server error
func (s *CategoryService) Delete(ctx context.Context, id int) (DeleteResult, error) {
	if id <= 0 {
		return DeleteResult{}, zenrpc.NewStringError(400, "id must be positive")
	}

	deleted, err := s.manager.DeleteCategory(ctx, id)
	if err != nil {
		return DeleteResult{}, err
	}

	return DeleteResult{ID: id, Deleted: deleted}, nil
}
