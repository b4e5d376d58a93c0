// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"

	"github.com/go-pg/pg/v10/orm"
)

func init() {
	// required for the Post.Categories many2many relation
	orm.RegisterTable((*PostToCategory)(nil))
}

var Columns = struct {
	Post struct {
		ID, Title, Slug, Content, Published, CreatedAt, UpdatedAt string

		Categories string
	}
	Category struct {
		ID, Name, Slug string
	}
	PostToCategory struct {
		PostID, CategoryID string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	Post: struct {
		ID, Title, Slug, Content, Published, CreatedAt, UpdatedAt string

		Categories string
	}{
		ID:        "id",
		Title:     "title",
		Slug:      "slug",
		Content:   "content",
		Published: "published",
		CreatedAt: "created_at",
		UpdatedAt: "updated_at",

		Categories: "Categories",
	},
	Category: struct {
		ID, Name, Slug string
	}{
		ID:   "id",
		Name: "name",
		Slug: "slug",
	},
	PostToCategory: struct {
		PostID, CategoryID string
	}{
		PostID:     "post_id",
		CategoryID: "category_id",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	Post struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	PostToCategory struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	PostToCategory: struct {
		Name, Alias string
	}{
		Name:  "posts_to_categories",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID        int        `pg:"id,pk"`
	Title     string     `pg:"title,use_zero"`
	Slug      string     `pg:"slug,use_zero"`
	Content   string     `pg:"content,use_zero"`
	Published bool       `pg:"published,use_zero"`
	CreatedAt time.Time  `pg:"created_at,use_zero"`
	UpdatedAt *time.Time `pg:"updated_at"`

	Categories []Category `pg:"many2many:posts_to_categories"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID   int    `pg:"id,pk"`
	Name string `pg:"name,use_zero"`
	Slug string `pg:"slug,use_zero"`
}

type PostToCategory struct {
	tableName struct{} `pg:"posts_to_categories,alias:t"`

	PostID     int `pg:"post_id,pk"`
	CategoryID int `pg:"category_id,pk"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}
