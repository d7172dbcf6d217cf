package kakao

import (
	"net/http"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
)

const (
	memberAlreadyLinked = "KAKAO_MEMBER_ALREADY_LINKED" // errInfo
	userAlreadyMapped   = "KAKAO_USER_ALREADY_MAPPED"   // errInfo
	memberNotFound      = "KAKAO_MEMBER_NOT_FOUND"      // errInfo
	mappingNotFound     = "KAKAO_MAPPING_NOT_FOUND"     // errInfo
	phoneMismatch       = "KAKAO_PHONE_MISMATCH"        // errInfo
)

var (
	ErrMemberAlreadyLinked = sharedError.NewDomainError(memberAlreadyLinked)
	ErrUserAlreadyMapped   = sharedError.NewDomainError(userAlreadyMapped)
	ErrMemberNotFound      = sharedError.NewDomainError(memberNotFound)
	ErrMappingNotFound     = sharedError.NewDomainError(mappingNotFound)
	ErrPhoneMismatch       = sharedError.NewDomainError(phoneMismatch)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberAlreadyLinked, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "KAKAO-001",
		Message: "이미 다른 카카오 계정과 연결된 회원입니다.",
	})

	sharedError.RegisterDomainErrorResponse(userAlreadyMapped, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "KAKAO-002",
		Message: "이미 회원과 연결된 카카오 계정입니다.",
	})

	sharedError.RegisterDomainErrorResponse(memberNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "KAKAO-003",
		Message: "회원 정보를 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(mappingNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "KAKAO-004",
		Message: "연결된 회원 정보가 없습니다. 먼저 본인 인증을 해주세요.",
	})

	sharedError.RegisterDomainErrorResponse(phoneMismatch, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "KAKAO-005",
		Message: "입력한 전화번호와 일치하지 않는 회원입니다.",
	})
}
