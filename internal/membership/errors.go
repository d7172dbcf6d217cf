package membership

import (
	"net/http"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
)

const (
	historyNotFound = "MEMBERSHIP_NOT_FOUND"        // errInfo
	invalidPeriod   = "MEMBERSHIP_INVALID_PERIOD"   // errInfo
	memberNotFound  = "MEMBERSHIP_MEMBER_NOT_FOUND" // errInfo
	noSessions      = "MEMBERSHIP_NO_SESSIONS"      // errInfo
)

var (
	ErrHistoryNotFound = sharedError.NewDomainError(historyNotFound)
	ErrInvalidPeriod   = sharedError.NewDomainError(invalidPeriod)
	ErrMemberNotFound  = sharedError.NewDomainError(memberNotFound)
	ErrNoSessions      = sharedError.NewDomainError(noSessions)
)

func init() {
	sharedError.RegisterDomainErrorResponse(historyNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBERSHIP-001",
		Message: "회원권 내역을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidPeriod, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBERSHIP-002",
		Message: "종료일은 시작일 이후여야 합니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "MEMBERSHIP-003",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(noSessions, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBERSHIP-004",
		Message: "회원권 횟수를 입력해 주세요.",
	})
}
