package reservation

import (
	"net/http"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationService *ReservationService
}

func NewReservationHandler(reservationService *ReservationService) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
	}
}

// Book POST /api/reservation
func (h *ReservationHandler) Book(c *gin.Context) {
	var request BookRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.reservationService.Book(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusCreated, response)
}

// Cancel POST /api/reservation/cancel
// A missing reservation_id is rejected by binding, before the service touches the database.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	var request CancelRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.reservationService.Cancel(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

// AvailableClasses GET /api/reservation/classes
func (h *ReservationHandler) AvailableClasses(c *gin.Context) {
	var query AvailableClassesQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.reservationService.AvailableClasses(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

// MyReservations GET /api/reservation/my
func (h *ReservationHandler) MyReservations(c *gin.Context) {
	var query MyReservationsQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.reservationService.MyReservations(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}
