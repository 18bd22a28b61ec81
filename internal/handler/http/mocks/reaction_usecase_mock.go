package mocks

import (
	"context"
	"fmt"

	"github.com/bereketsol/inkwell/internal/domain/contract"
	"github.com/bereketsol/inkwell/internal/domain/entity"
	"github.com/bereketsol/inkwell/internal/usecase"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// MockReactionUsecase is a mock implementation of the reaction usecase.
type MockReactionUsecase struct {
	// Control mock behavior
	ShouldFailNotFound bool

	// Last call arguments, for assertions
	LastTargetID string
	LastUserID   string
	LastReaction entity.ReactionType

	// Return value
	MockResult entity.ReactionResult
}

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func NewMockReactionUsecase() *MockReactionUsecase {
	return &MockReactionUsecase{
		MockResult: entity.ReactionResult{
			UserLiked:     true,
			UserDisliked:  false,
			LikesCount:    3,
			DislikesCount: 1,
		},
	}
}

func (m *MockReactionUsecase) toggle(targetID, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
	m.LastTargetID = targetID
	m.LastUserID = userID
	m.LastReaction = reaction
	if !reaction.Valid() {
		return nil, fmt.Errorf("%w: %q", usecase.ErrInvalidReactionType, reaction)
	}
	if m.ShouldFailNotFound {
		return nil, fmt.Errorf("target %q: %w", targetID, contract.ErrNotFound)
	}
	return &m.MockResult, nil
}

func (m *MockReactionUsecase) ToggleBlogReaction(ctx context.Context, slug, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
	return m.toggle(slug, userID, reaction)
}

func (m *MockReactionUsecase) ToggleCommentReaction(ctx context.Context, commentID, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
	return m.toggle(commentID, userID, reaction)
}

func (m *MockReactionUsecase) ToggleReplyReaction(ctx context.Context, replyID, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
	return m.toggle(replyID, userID, reaction)
}
