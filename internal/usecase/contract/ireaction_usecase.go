package usecasecontract

import (
	"context"

	"github.com/bereketsol/inkwell/internal/domain/entity"
)

// IReactionUseCase defines the reaction toggle operations. All three target
// kinds share one toggle semantic: clicking the opposite reaction switches
// sides, clicking the same reaction twice clears it.
type IReactionUseCase interface {
	ToggleBlogReaction(ctx context.Context, slug, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error)
	ToggleCommentReaction(ctx context.Context, commentID, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error)
	ToggleReplyReaction(ctx context.Context, replyID, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error)
}
