package auth

import (
	"net/http"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
)

const (
	incorrectEmailPassword = "INCORRECT_EMAIL_PASSWORD" // errInfo
	adminAlreadyExists     = "ADMIN_ALREADY_EXISTS"     // errInfo
)

var (
	ErrInCorrectEmailPassword = sharedError.NewDomainError(incorrectEmailPassword)
	ErrAdminAlreadyExists     = sharedError.NewDomainError(adminAlreadyExists)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectEmailPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "이메일 또는 비밀번호가 일치하지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(adminAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "AUTH-004",
		Message: "이미 등록된 관리자 이메일입니다.",
	})
}
