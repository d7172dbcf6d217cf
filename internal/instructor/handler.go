package instructor

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type InstructorHandler struct {
	instructorService *InstructorService
}

func NewInstructorHandler(instructorService *InstructorService) *InstructorHandler {
	return &InstructorHandler{
		instructorService: instructorService,
	}
}

func (h *InstructorHandler) List(c *gin.Context) {
	var query ListInstructorsQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.instructorService.List(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (h *InstructorHandler) Create(c *gin.Context) {
	var request CreateInstructorRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.instructorService.Create(c.Request.Context(), &request, sharedContext.AdminIDOrZero(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusCreated, response)
}

func (h *InstructorHandler) Update(c *gin.Context) {
	instructorID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request UpdateInstructorRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.instructorService.Update(c.Request.Context(), instructorID, &request, sharedContext.AdminIDOrZero(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (h *InstructorHandler) Delete(c *gin.Context) {
	instructorID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.instructorService.Delete(c.Request.Context(), instructorID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, gin.H{"id": instructorID})
}
