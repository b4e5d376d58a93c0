package blogportal

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

type Category struct {
	db.Category
}

type Post struct {
	db.Post
	Categories []Category
}
