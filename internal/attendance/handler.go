package attendance

import (
	"net/http"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	attendanceService *AttendanceService
}

func NewAttendanceHandler(attendanceService *AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// Update POST /api/attendance/update
func (h *AttendanceHandler) Update(c *gin.Context) {
	var request UpdateRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.attendanceService.Update(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

// Roster GET /api/classes/:id/attendance
func (h *AttendanceHandler) Roster(c *gin.Context) {
	classID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	response, err := h.attendanceService.Roster(c.Request.Context(), classID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}
