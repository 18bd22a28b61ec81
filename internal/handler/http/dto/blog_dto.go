package dto

import "github.com/bereketsol/inkwell/internal/domain/entity"

// CreateBlogRequest is the payload for creating a blog post.
type CreateBlogRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
}

// UpdateBlogRequest is the payload for updating a blog post; absent fields
// are left unchanged.
type UpdateBlogRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	Image       *string  `json:"image"`
}

// CommentRequest is the payload for creating or editing a comment or reply.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse carries a written comment together with the slug of the
// blog whose detail view embeds it.
type CommentResponse struct {
	Comment  *entity.Comment `json:"comment"`
	BlogSlug string          `json:"blog_slug"`
}

func ToCommentResponse(comment *entity.Comment, blogSlug string) CommentResponse {
	return CommentResponse{Comment: comment, BlogSlug: blogSlug}
}
