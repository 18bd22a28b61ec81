package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/inkwell/internal/domain/entity"
	"github.com/bereketsol/inkwell/internal/handler/http/dto"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// ReactionHandler serves the like/dislike toggle endpoints for blogs,
// comments and replies.
type ReactionHandler struct {
	reactionUC usecasecontract.IReactionUseCase
}

func NewReactionHandler(reactionUC usecasecontract.IReactionUseCase) *ReactionHandler {
	return &ReactionHandler{reactionUC: reactionUC}
}

// ReactToBlogHandler toggles the acting user's reaction on a blog post.
func (h *ReactionHandler) ReactToBlogHandler(c *gin.Context) {
	h.react(c, func(c *gin.Context, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
		return h.reactionUC.ToggleBlogReaction(c.Request.Context(), c.Param("slug"), userID, reaction)
	})
}

// ReactToCommentHandler toggles the acting user's reaction on a comment.
func (h *ReactionHandler) ReactToCommentHandler(c *gin.Context) {
	h.react(c, func(c *gin.Context, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
		return h.reactionUC.ToggleCommentReaction(c.Request.Context(), c.Param("commentID"), userID, reaction)
	})
}

// ReactToReplyHandler toggles the acting user's reaction on a reply.
func (h *ReactionHandler) ReactToReplyHandler(c *gin.Context) {
	h.react(c, func(c *gin.Context, userID string, reaction entity.ReactionType) (*entity.ReactionResult, error) {
		return h.reactionUC.ToggleReplyReaction(c.Request.Context(), c.Param("replyID"), userID, reaction)
	})
}

func (h *ReactionHandler) react(c *gin.Context, toggle func(*gin.Context, string, entity.ReactionType) (*entity.ReactionResult, error)) {
	userID, ok := ActingUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.ReactionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := toggle(c, userID, entity.ReactionType(req.ReactionType))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToReactionResponse(*result))
}
