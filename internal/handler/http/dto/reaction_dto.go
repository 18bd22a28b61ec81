package dto

import "github.com/bereketsol/inkwell/internal/domain/entity"

// ReactionRequest is the payload for toggling a reaction.
type ReactionRequest struct {
	ReactionType string `json:"reactionType" binding:"required"`
}

// ReactionResponse is the post-toggle state returned for immediate client
// feedback.
type ReactionResponse struct {
	UserLiked     bool `json:"userLiked"`
	UserDisliked  bool `json:"userDisliked"`
	LikesCount    int  `json:"likesCount"`
	DislikesCount int  `json:"dislikesCount"`
}

// ToReactionResponse converts an entity.ReactionResult to its DTO.
func ToReactionResponse(res entity.ReactionResult) ReactionResponse {
	return ReactionResponse{
		UserLiked:     res.UserLiked,
		UserDisliked:  res.UserDisliked,
		LikesCount:    res.LikesCount,
		DislikesCount: res.DislikesCount,
	}
}
