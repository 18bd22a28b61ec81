package contract

import (
	"context"

	"github.com/bereketsol/inkwell/internal/domain/entity"
)

// IReactionRepository is the storage capability a reactable entity kind
// exposes to the reaction engine. Blogs, comments and replies all satisfy it,
// which keeps the toggle logic generic over the three variants.
type IReactionRepository interface {
	// GetReactions returns the current reaction sets of the target.
	GetReactions(ctx context.Context, targetID string) (*entity.Reactions, error)
	// ApplyToggle applies one toggle as a single atomic field-level update:
	// the user is pulled from every set in remove and, when add is non-nil,
	// added to that set. It returns the post-update reaction sets.
	ApplyToggle(ctx context.Context, targetID, userID string, add *entity.ReactionType, remove []entity.ReactionType) (*entity.Reactions, error)
}
