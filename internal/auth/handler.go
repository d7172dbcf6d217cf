package auth

import (
	"net/http"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *AuthService
}

func NewAuthHandler(authService *AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (a *AuthHandler) Login(c *gin.Context) {
	var request LoginRequest

	// Parse and validate JSON request
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.Login(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (a *AuthHandler) CreateAdmin(c *gin.Context) {
	var request CreateAdminRequest

	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := a.authService.CreateAdmin(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusCreated, response)
}
