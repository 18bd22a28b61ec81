package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/inkwell/internal/handler/http/dto"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// CommentHandler serves comment and reply endpoints.
type CommentHandler struct {
	commentUC usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUC usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{commentUC: commentUC}
}

func (h *CommentHandler) AddCommentHandler(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, blogSlug, err := h.commentUC.AddComment(c.Request.Context(), c.Param("slug"), userID, req.Content)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCommentResponse(comment, blogSlug))
}

func (h *CommentHandler) EditCommentHandler(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if _, err := h.commentUC.EditComment(c.Request.Context(), c.Param("commentID"), userID, req.Content); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Comment updated successfully")
}

func (h *CommentHandler) DeleteCommentHandler(c *gin.Context) {
	if _, ok := ActingUserID(c); !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if _, err := h.commentUC.DeleteComment(c.Request.Context(), c.Param("commentID")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Comment deleted successfully")
}

func (h *CommentHandler) AddReplyHandler(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	reply, blogSlug, err := h.commentUC.AddReply(c.Request.Context(), c.Param("commentID"), userID, req.Content)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCommentResponse(reply, blogSlug))
}

func (h *CommentHandler) EditReplyHandler(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if _, err := h.commentUC.EditReply(c.Request.Context(), c.Param("replyID"), userID, req.Content); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Reply updated successfully")
}

func (h *CommentHandler) DeleteReplyHandler(c *gin.Context) {
	if _, ok := ActingUserID(c); !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if _, err := h.commentUC.DeleteReply(c.Request.Context(), c.Param("commentID"), c.Param("replyID")); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Reply deleted successfully")
}
