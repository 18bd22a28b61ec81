package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/bereketsol/inkwell/internal/handler/http"
	"github.com/bereketsol/inkwell/internal/handler/http/dto"
	"github.com/bereketsol/inkwell/internal/handler/http/middleware"
	"github.com/bereketsol/inkwell/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}

func setupReactionRouter(h *handler.ReactionHandler, auth gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	group := r.Group("/")
	if auth != nil {
		group.Use(auth)
	}
	group.POST("/blogs/:slug/react", h.ReactToBlogHandler)
	group.POST("/comments/:commentID/react", h.ReactToCommentHandler)
	group.POST("/replies/:replyID/react", h.ReactToReplyHandler)
	return r
}

func postReaction(r *gin.Engine, path, reactionType string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(dto.ReactionRequest{ReactionType: reactionType})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestReactToBlog(t *testing.T) {
	mockUsecase := mocks.NewMockReactionUsecase()
	h := handler.NewReactionHandler(mockUsecase)
	r := setupReactionRouter(h, authAs("user-1"))

	w := postReaction(r, "/blogs/hello-world/react", "likes")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello-world", mockUsecase.LastTargetID)
	assert.Equal(t, "user-1", mockUsecase.LastUserID)

	var resp dto.ReactionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.UserLiked)
	assert.Equal(t, 3, resp.LikesCount)
	assert.Equal(t, 1, resp.DislikesCount)
}

func TestReactToBlog_Unauthenticated(t *testing.T) {
	h := handler.NewReactionHandler(mocks.NewMockReactionUsecase())
	r := setupReactionRouter(h, nil)

	w := postReaction(r, "/blogs/hello-world/react", "likes")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "not authenticated")
}

func TestReactToBlog_MissingReactionType(t *testing.T) {
	h := handler.NewReactionHandler(mocks.NewMockReactionUsecase())
	r := setupReactionRouter(h, authAs("user-1"))

	w := postReaction(r, "/blogs/hello-world/react", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReactToBlog_InvalidReactionType(t *testing.T) {
	h := handler.NewReactionHandler(mocks.NewMockReactionUsecase())
	r := setupReactionRouter(h, authAs("user-1"))

	w := postReaction(r, "/blogs/hello-world/react", "loves")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid reaction type")
}

func TestReactToBlog_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockReactionUsecase()
	mockUsecase.ShouldFailNotFound = true
	h := handler.NewReactionHandler(mockUsecase)
	r := setupReactionRouter(h, authAs("user-1"))

	w := postReaction(r, "/blogs/missing/react", "likes")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReactToComment(t *testing.T) {
	mockUsecase := mocks.NewMockReactionUsecase()
	h := handler.NewReactionHandler(mockUsecase)
	r := setupReactionRouter(h, authAs("user-1"))

	w := postReaction(r, "/comments/comment-1/react", "dislikes")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "comment-1", mockUsecase.LastTargetID)
	assert.Equal(t, "dislikes", string(mockUsecase.LastReaction))
}

func TestReactToReply(t *testing.T) {
	mockUsecase := mocks.NewMockReactionUsecase()
	h := handler.NewReactionHandler(mockUsecase)
	r := setupReactionRouter(h, authAs("user-1"))

	w := postReaction(r, "/replies/reply-1/react", "likes")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "reply-1", mockUsecase.LastTargetID)
}
