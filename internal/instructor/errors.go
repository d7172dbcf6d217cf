package instructor

import (
	"net/http"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
)

const (
	instructorNotFound = "INSTRUCTOR_NOT_FOUND" // errInfo
)

var (
	ErrInstructorNotFound = sharedError.NewDomainError(instructorNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(instructorNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "INSTRUCTOR-001",
		Message: "강사 정보를 찾을 수 없습니다.",
	})
}
