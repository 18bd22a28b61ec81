package contract

import (
	"context"

	"github.com/bereketsol/inkwell/internal/domain/entity"
)

// ICommentRepository represents the contract of the comment repository.
// Replies share the collection, so the same repository serves both.
type ICommentRepository interface {
	IReactionRepository

	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, commentID string) (*entity.Comment, error)
	// GetByIDs returns the comments for the given ids, preserving input order.
	GetByIDs(ctx context.Context, commentIDs []string) ([]*entity.Comment, error)
	UpdateContent(ctx context.Context, commentID, content string) error
	Delete(ctx context.Context, commentID string) error

	// AddReplyID appends a reply id to the parent comment's reply list.
	AddReplyID(ctx context.Context, parentID, replyID string) error
	RemoveReplyID(ctx context.Context, parentID, replyID string) error
	// FindParentComment resolves the comment that holds replyID in its
	// reply list.
	FindParentComment(ctx context.Context, replyID string) (*entity.Comment, error)
}
