package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bereketsol/inkwell/internal/handler/http/dto"
	usecasecontract "github.com/bereketsol/inkwell/internal/usecase/contract"
)

// UserHandler serves account registration, login and profile endpoints.
type UserHandler struct {
	userUC usecasecontract.IUserUseCase
}

func NewUserHandler(userUC usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{userUC: userUC}
}

func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUC.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.userUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(result.User),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

// GetCurrentUserHandler returns the authenticated user's profile.
func (h *UserHandler) GetCurrentUserHandler(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userUC.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
