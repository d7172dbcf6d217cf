package settings

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *SettingsService
}

func NewSettingsHandler(settingsService *SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	response, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

// Save POST /api/settings
func (h *SettingsHandler) Save(c *gin.Context) {
	var request SaveRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.settingsService.Save(c.Request.Context(), &request, sharedContext.AdminIDOrZero(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}
