package usecasecontract

import (
	"context"

	"github.com/bereketsol/inkwell/internal/domain/entity"
)

// ICommentUseCase defines comment and reply business logic. The returned blog
// slug identifies the post whose detail view embeds the written comment.
type ICommentUseCase interface {
	AddComment(ctx context.Context, blogSlug, authorID, content string) (*entity.Comment, string, error)
	EditComment(ctx context.Context, commentID, authorID, content string) (string, error)
	DeleteComment(ctx context.Context, commentID string) (string, error)

	AddReply(ctx context.Context, parentCommentID, authorID, content string) (*entity.Comment, string, error)
	EditReply(ctx context.Context, replyID, authorID, content string) (string, error)
	DeleteReply(ctx context.Context, parentCommentID, replyID string) (string, error)
}
