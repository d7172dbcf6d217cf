package settings

import (
	"net/http"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
)

const (
	nothingToSave = "SETTINGS_EMPTY" // errInfo
)

var (
	ErrNothingToSave = sharedError.NewDomainError(nothingToSave)
)

func init() {
	sharedError.RegisterDomainErrorResponse(nothingToSave, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "SETTINGS-001",
		Message: "변경할 설정이 없습니다.",
	})
}
