package blogportal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation runs before any storage access, so these tests need no database.

func TestValidateCreatePostParams(t *testing.T) {
	m := NewManager(nil)

	tests := []struct {
		name      string
		params    CreatePostParams
		wantField string
	}{
		{
			name:   "Valid",
			params: CreatePostParams{Title: "Hello World", Content: "0123456789"},
		},
		{
			name:   "TitleExactlyThreeCharsPasses",
			params: CreatePostParams{Title: "abc", Content: "0123456789"},
		},
		{
			name:      "TitleTwoCharsFails",
			params:    CreatePostParams{Title: "ab", Content: "0123456789"},
			wantField: "Title",
		},
		{
			name:      "EmptyTitleFails",
			params:    CreatePostParams{Title: "", Content: "0123456789"},
			wantField: "Title",
		},
		{
			name:   "ContentExactlyTenCharsPasses",
			params: CreatePostParams{Title: "abc", Content: "0123456789"},
		},
		{
			name:      "ContentNineCharsFails",
			params:    CreatePostParams{Title: "abc", Content: "012345678"},
			wantField: "Content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.validateStruct(tt.params)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.NotEmpty(t, validationErr.Message)
		})
	}
}

func TestValidateUpdatePostParams(t *testing.T) {
	m := NewManager(nil)

	err := m.validateStruct(UpdatePostParams{ID: 0, Title: "abc", Content: "0123456789"})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ID", validationErr.Field)

	assert.NoError(t, m.validateStruct(UpdatePostParams{ID: 1, Title: "abc", Content: "0123456789"}))
}

func TestValidateCreateCategoryParams(t *testing.T) {
	m := NewManager(nil)

	err := m.validateStruct(CreateCategoryParams{Name: ""})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Name", validationErr.Field)

	assert.NoError(t, m.validateStruct(CreateCategoryParams{Name: "Go"}))
}

func TestSanitizeCategoryIDs(t *testing.T) {
	assert.Nil(t, sanitizeCategoryIDs(nil))
	assert.Empty(t, sanitizeCategoryIDs([]int{0, -1, -42}))
	assert.Equal(t, []int{1, 2, 3}, sanitizeCategoryIDs([]int{1, 2, 2, 0, 3, 1}))
}
