package blogportal

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func NewCategory(c db.Category) Category {
	return Category{Category: c}
}

func NewPost(p db.Post) Post {
	post := Post{Post: p}

	if len(p.Categories) > 0 {
		post.Categories = NewCategories(p.Categories)
	}

	return post
}
