package blogportal

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewPosts(list []db.Post) []Post {
	return Map(list, NewPost)
}

func NewCategories(list []db.Category) []Category {
	return Map(list, NewCategory)
}

// CategoryIDs returns the ids of the post's categories in load order.
func (p Post) CategoryIDs() []int {
	ids := make([]int, len(p.Categories))
	for i := range p.Categories {
		ids[i] = p.Categories[i].ID
	}
	return ids
}
