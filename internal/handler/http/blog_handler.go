package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/inkwell/internal/handler/http/dto"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// BlogHandler serves blog CRUD and the cached read endpoints.
type BlogHandler struct {
	blogUC usecasecontract.IBlogUseCase
}

func NewBlogHandler(blogUC usecasecontract.IBlogUseCase) *BlogHandler {
	return &BlogHandler{blogUC: blogUC}
}

// GetHomepageHandler serves the homepage aggregate. The route is wrapped by
// the homepage cache middleware.
func (h *BlogHandler) GetHomepageHandler(c *gin.Context) {
	payload, err := h.blogUC.GetHomepage(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, payload)
}

// GetBlogDetailHandler serves one post with its comment/reply tree. The
// route is wrapped by the detail cache middleware keyed on the slug.
func (h *BlogHandler) GetBlogDetailHandler(c *gin.Context) {
	payload, err := h.blogUC.GetBlogDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, payload)
}

// GetCategoriesHandler serves all blogs grouped by category. The route is
// wrapped by the category cache middleware.
func (h *BlogHandler) GetCategoriesHandler(c *gin.Context) {
	grouped, err := h.blogUC.GetBlogsByCategory(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"blogs_by_category": grouped})
}

// CreateBlogHandler creates a post authored by the acting user.
func (h *BlogHandler) CreateBlogHandler(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	blog, err := h.blogUC.CreateBlog(c.Request.Context(), userID, usecasecontract.CreateBlogInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
		Image:       req.Image,
	})
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, blog)
}

// UpdateBlogHandler updates the acting user's own post.
func (h *BlogHandler) UpdateBlogHandler(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	blog, err := h.blogUC.UpdateBlog(c.Request.Context(), c.Param("slug"), userID, usecasecontract.UpdateBlogInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Tags:        req.Tags,
		Image:       req.Image,
	})
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, blog)
}

// DeleteBlogHandler deletes the acting user's own post.
func (h *BlogHandler) DeleteBlogHandler(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.blogUC.DeleteBlog(c.Request.Context(), c.Param("slug"), userID); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Blog deleted successfully")
}
