package entity

import (
	"regexp"
	"strings"
	"time"
)

// DefaultCategory is assigned when a blog is created without a category.
const DefaultCategory = "Article"

// Blog represents a published blog post.
type Blog struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Slug        string    `bson:"slug" json:"slug"`
	Description string    `bson:"description" json:"description"`
	Content     string    `bson:"content" json:"content"`
	AuthorID    string    `bson:"author_id" json:"author_id"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Category    string    `bson:"category" json:"category"`
	Tags        []string  `bson:"tags" json:"tags"`
	CommentIDs  []string  `bson:"comments" json:"comments"`
	Reactions   Reactions `bson:"reactions" json:"reactions"`
	IsDeleted   bool      `bson:"is_deleted" json:"-"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a blog title to its URL slug.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
