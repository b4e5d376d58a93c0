package rpc

import "github.com/daniilsolovey/blog-portal/internal/blogportal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPost(p blogportal.Post) Post {
	return Post{
		ID:         p.ID,
		Title:      p.Title,
		Slug:       p.Slug,
		Content:    p.Content,
		Published:  p.Published,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		Categories: NewCategories(p.Categories),
	}
}

func NewCategory(c blogportal.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}

func NewPosts(list []blogportal.Post) []Post {
	return Map(list, NewPost)
}

func NewCategories(list []blogportal.Category) []Category {
	return Map(list, NewCategory)
}
