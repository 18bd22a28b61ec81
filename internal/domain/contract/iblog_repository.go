package contract

import (
	"context"

	"github.com/bereketsol/inkwell/internal/domain/entity"
)

// IBlogRepository represents the contract of the blog repository.
type IBlogRepository interface {
	IReactionRepository

	CreateBlog(ctx context.Context, blog *entity.Blog) error
	GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*entity.Blog, error)
	// GetBlogs returns all non-deleted blogs, newest first.
	GetBlogs(ctx context.Context) ([]*entity.Blog, error)
	GetBlogsByCategory(ctx context.Context, category string) ([]*entity.Blog, error)
	// GetCategories returns the distinct categories across all blogs.
	GetCategories(ctx context.Context) ([]string, error)
	// SampleBlogByCategory returns one random blog in the category.
	SampleBlogByCategory(ctx context.Context, category string) (*entity.Blog, error)
	// GetRelatedBlogs returns up to limit blogs sharing the category,
	// excluding the given blog.
	GetRelatedBlogs(ctx context.Context, category, excludeID string, limit int) ([]*entity.Blog, error)
	UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error
	DeleteBlog(ctx context.Context, blogID string) error

	// AddCommentID appends a comment id to the blog's ordered comment list.
	AddCommentID(ctx context.Context, blogID, commentID string) error
	RemoveCommentID(ctx context.Context, blogID, commentID string) error
	// FindBlogByCommentID resolves the blog that owns the given comment.
	FindBlogByCommentID(ctx context.Context, commentID string) (*entity.Blog, error)
}
