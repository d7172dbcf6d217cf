package reservation

import (
	"net/http"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
)

const (
	reservationNotFound  = "RESERVATION_NOT_FOUND"  // errInfo
	fullyBooked          = "RESERVATION_FULL"       // errInfo
	alreadyReserved      = "RESERVATION_DUPLICATE"  // errInfo
	classNotFound        = "RESERVATION_NO_CLASS"   // errInfo
	pastClass            = "RESERVATION_PAST_CLASS" // errInfo
	notReservationHolder = "RESERVATION_NOT_OWNER"  // errInfo
)

var (
	ErrReservationNotFound  = sharedError.NewDomainError(reservationNotFound)
	ErrFullyBooked          = sharedError.NewDomainError(fullyBooked)
	ErrAlreadyReserved      = sharedError.NewDomainError(alreadyReserved)
	ErrClassNotFound        = sharedError.NewDomainError(classNotFound)
	ErrPastClass            = sharedError.NewDomainError(pastClass)
	ErrNotReservationHolder = sharedError.NewDomainError(notReservationHolder)
)

func init() {
	sharedError.RegisterDomainErrorResponse(reservationNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "RESERVATION-001",
		Message: "예약 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(fullyBooked, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "RESERVATION-002",
		Message: "예약이 마감된 수업입니다.",
	})

	sharedError.RegisterDomainErrorResponse(alreadyReserved, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "RESERVATION-003",
		Message: "이미 예약된 수업입니다.",
	})

	sharedError.RegisterDomainErrorResponse(classNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "RESERVATION-004",
		Message: "수업을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(pastClass, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "RESERVATION-005",
		Message: "지난 수업은 예약할 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(notReservationHolder, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "RESERVATION-006",
		Message: "본인의 예약만 취소할 수 있습니다.",
	})
}
