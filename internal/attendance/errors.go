package attendance

import (
	"net/http"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
)

const (
	reservationNotFound = "ATTENDANCE_NO_RESERVATION" // errInfo
	invalidStatus       = "ATTENDANCE_INVALID_STATUS" // errInfo
)

var (
	ErrReservationNotFound = sharedError.NewDomainError(reservationNotFound)
	ErrInvalidStatus       = sharedError.NewDomainError(invalidStatus)
)

func init() {
	sharedError.RegisterDomainErrorResponse(reservationNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ATTENDANCE-001",
		Message: "예약 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidStatus, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ATTENDANCE-002",
		Message: "출석 상태는 pending, attended, absent 중 하나여야 합니다.",
	})
}
