package class

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	classService *ClassService
}

func NewClassHandler(classService *ClassService) *ClassHandler {
	return &ClassHandler{
		classService: classService,
	}
}

func (h *ClassHandler) List(c *gin.Context) {
	var query ListClassesQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.classService.List(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (h *ClassHandler) Get(c *gin.Context) {
	classID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	response, err := h.classService.Get(c.Request.Context(), classID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (h *ClassHandler) Create(c *gin.Context) {
	var request CreateClassRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.classService.Create(c.Request.Context(), &request, sharedContext.AdminIDOrZero(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusCreated, response)
}

func (h *ClassHandler) Update(c *gin.Context) {
	classID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request UpdateClassRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.classService.Update(c.Request.Context(), classID, &request, sharedContext.AdminIDOrZero(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (h *ClassHandler) Delete(c *gin.Context) {
	classID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.classService.Delete(c.Request.Context(), classID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, gin.H{"id": classID})
}
