package usecase

import (
	"context"
	"fmt"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/domain/entity"
	"github.com/bereketsol/inkwell/internal/infrastructure/metrics"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// ReactionUsecase implements the like/dislike toggle for blogs, comments and
// replies. The three variants share one toggle path parameterized by the
// repository that owns the target, so the mutual-exclusion rules live in
// exactly one place.
type ReactionUsecase struct {
	blogRepo    contract.IBlogRepository
	commentRepo contract.ICommentRepository
	invalidator *CacheInvalidator
	logger      usecasecontract.IAppLogger
}

// NewReactionUsecase creates and returns a new ReactionUsecase instance.
func NewReactionUsecase(blogRepo contract.IBlogRepository, commentRepo contract.ICommentRepository, invalidator *CacheInvalidator, logger usecasecontract.IAppLogger) *ReactionUsecase {
	return &ReactionUsecase{
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

var _ usecasecontract.IReactionUseCase = (*ReactionUsecase)(nil)

// ToggleBlogReaction toggles the user's reaction on the blog identified by
// slug and invalidates every cached view embedding the post.
func (u *ReactionUsecase) ToggleBlogReaction(ctx context.Context, slug, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
	if !reaction.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReactionType, reaction)
	}

	blog, err := u.blogRepo.GetBlogBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	result, err := u.toggle(ctx, u.blogRepo, entity.ReactionTargetBlog, blog.ID, userID, reaction)
	if err != nil {
		return nil, err
	}

	u.invalidator.InvalidateBlog(ctx, blog.Slug)
	return result, nil
}

// ToggleCommentReaction toggles the user's reaction on a comment. The owning
// blog's cached detail view embeds the comment, so it is invalidated too.
func (u *ReactionUsecase) ToggleCommentReaction(ctx context.Context, commentID, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
	if !reaction.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReactionType, reaction)
	}

	result, err := u.toggle(ctx, u.commentRepo, entity.ReactionTargetComment, commentID, userID, reaction)
	if err != nil {
		return nil, err
	}

	u.invalidateOwningBlog(ctx, commentID)
	return result, nil
}

// ToggleReplyReaction toggles the user's reaction on a reply, resolving the
// owning blog through the parent comment for invalidation.
func (u *ReactionUsecase) ToggleReplyReaction(ctx context.Context, replyID, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
	if !reaction.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReactionType, reaction)
	}

	result, err := u.toggle(ctx, u.commentRepo, entity.ReactionTargetReply, replyID, userID, reaction)
	if err != nil {
		return nil, err
	}

	parent, err := u.commentRepo.FindParentComment(ctx, replyID)
	if err != nil {
		u.logger.Warnf("reaction: reply '%s' has no parent comment, skipping cache invalidation: %v", replyID, err)
		return result, nil
	}
	u.invalidateOwningBlog(ctx, parent.ID)
	return result, nil
}

// toggle applies one reaction click. The decision is made against a snapshot
// of the current sets, then persisted as a single atomic add/remove update:
//   - user in the opposite set: the opposite membership is removed (a user is
//     never in both sets),
//   - user already in the requested set: the reaction is cleared (clicking
//     like twice un-likes),
//   - otherwise: the user is added to the requested set.
//
// The opposite set is always part of the remove list, even when the snapshot
// says the user is absent, so a racing opposite toggle cannot leave the user
// in both sets.
func (u *ReactionUsecase) toggle(ctx context.Context, repo contract.IReactionRepository, kind entity.ReactionTargetKind, targetID, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
	current, err := repo.GetReactions(ctx, targetID)
	if err != nil {
		return nil, err
	}

	remove := []entity.ReactionType{reaction.Opposite()}
	var add *entity.ReactionType
	if current.Has(reaction, userID) {
		remove = append(remove, reaction)
	} else {
		rt := reaction
		add = &rt
	}

	updated, err := repo.ApplyToggle(ctx, targetID, userID, add, remove)
	if err != nil {
		return nil, err
	}

	metrics.ReactionToggles.WithLabelValues(string(kind), string(reaction)).Inc()

	return &entity.ReactionResult{
		UserLiked:     updated.Has(entity.ReactionTypeLike, userID),
		UserDisliked:  updated.Has(entity.ReactionTypeDislike, userID),
		LikesCount:    len(updated.Likes),
		DislikesCount: len(updated.Dislikes),
	}, nil
}

// invalidateOwningBlog resolves the blog embedding the comment and clears its
// cached views. Resolution failures only degrade caching, never the toggle.
func (u *ReactionUsecase) invalidateOwningBlog(ctx context.Context, commentID string) {
	blog, err := u.blogRepo.FindBlogByCommentID(ctx, commentID)
	if err != nil {
		u.logger.Warnf("reaction: could not resolve owning blog of comment '%s', skipping cache invalidation: %v", commentID, err)
		return
	}
	u.invalidator.InvalidateBlog(ctx, blog.Slug)
}
