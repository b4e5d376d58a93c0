package blogportal

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type CreateCategoryParams struct {
	Name string `validate:"required"`
}

// CreateCategory computes the slug from the name and inserts the category.
func (m *Manager) CreateCategory(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	if err := m.validateStruct(params); err != nil {
		return nil, err
	}

	category := &db.Category{
		Name: params.Name,
		Slug: Slugify(params.Name),
	}

	if err := m.db.CreateCategory(ctx, category); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("slug %q: %w", category.Slug, ErrDuplicateSlug)
		}
		return nil, fmt.Errorf("db create category: %w", err)
	}

	result := NewCategory(*category)
	return &result, nil
}

// Categories retrieves all categories sorted by name.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// CategoryByID returns the category or nil when absent.
func (m *Manager) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	dbCategory, err := m.db.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if dbCategory == nil {
		return nil, nil
	}

	result := NewCategory(*dbCategory)
	return &result, nil
}

// DeleteCategory removes the category; its link rows are cleaned up by the
// cascade, referencing posts stay. Deleting a missing id reports
// deleted=false.
func (m *Manager) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	deleted, err := m.db.DeleteCategory(ctx, categoryID)
	if err != nil {
		return false, fmt.Errorf("db delete category: %w", err)
	}

	return deleted, nil
}
