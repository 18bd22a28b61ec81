package usecasecontract

import (
	"context"

	"github.com/bereketsol/inkwell/internal/domain/entity"
)

// CreateBlogInput carries the caller-supplied fields for a new blog post.
type CreateBlogInput struct {
	Title       string
	Description string
	Content     string
	Category    string
	Tags        []string
	Image       string
}

// UpdateBlogInput carries the optional fields of a blog update; nil means
// "leave unchanged".
type UpdateBlogInput struct {
	Title       *string
	Description *string
	Content     *string
	Category    *string
	Tags        []string
	Image       *string
}

// HomepagePayload is the aggregate served by the homepage endpoint.
type HomepagePayload struct {
	Blogs                []entity.Blog            `json:"blogs"`
	RandomBlogByCategory map[string]entity.Blog   `json:"random_blog_by_category"`
	BlogsByCategory      map[string][]entity.Blog `json:"blogs_by_category"`
}

// BlogDetailPayload is the aggregate served by the blog detail endpoint. It
// embeds the full comment/reply tree, which is why any comment or reply write
// invalidates the owning blog's cached detail view.
type BlogDetailPayload struct {
	Blog         entity.Blog          `json:"blog"`
	Author       entity.AuthorSummary `json:"author"`
	Comments     []entity.CommentView `json:"comments"`
	CommentCount int                  `json:"comment_count"`
	RelatedBlogs []entity.Blog        `json:"related_blogs"`
}

// IBlogUseCase defines blog-related business logic.
type IBlogUseCase interface {
	CreateBlog(ctx context.Context, authorID string, in CreateBlogInput) (*entity.Blog, error)
	GetHomepage(ctx context.Context) (*HomepagePayload, error)
	GetBlogDetail(ctx context.Context, slug string) (*BlogDetailPayload, error)
	GetBlogsByCategory(ctx context.Context) (map[string][]entity.Blog, error)
	UpdateBlog(ctx context.Context, slug, userID string, in UpdateBlogInput) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, slug, userID string) error
}
