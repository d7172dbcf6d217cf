package class

import (
	"net/http"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
)

const (
	classNotFound      = "CLASS_NOT_FOUND"      // errInfo
	invalidTimeRange   = "CLASS_INVALID_TIME"   // errInfo
	instructorNotFound = "CLASS_NO_INSTRUCTOR"  // errInfo
	capacityBelowBook  = "CLASS_CAPACITY_BELOW" // errInfo
	invalidDateRange   = "CLASS_INVALID_PERIOD" // errInfo
)

var (
	ErrClassNotFound      = sharedError.NewDomainError(classNotFound)
	ErrInvalidTimeRange   = sharedError.NewDomainError(invalidTimeRange)
	ErrInstructorNotFound = sharedError.NewDomainError(instructorNotFound)
	ErrCapacityBelowBook  = sharedError.NewDomainError(capacityBelowBook)
	ErrInvalidDateRange   = sharedError.NewDomainError(invalidDateRange)
)

func init() {
	sharedError.RegisterDomainErrorResponse(classNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CLASS-001",
		Message: "수업을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidTimeRange, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CLASS-002",
		Message: "종료 시간은 시작 시간 이후여야 합니다.",
	})

	sharedError.RegisterDomainErrorResponse(instructorNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "CLASS-003",
		Message: "강사 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(capacityBelowBook, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "CLASS-004",
		Message: "정원은 현재 예약 인원보다 작을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidDateRange, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "CLASS-005",
		Message: "조회 종료일은 시작일 이후여야 합니다.",
	})
}
