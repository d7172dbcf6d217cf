package dashboard

import (
	"net/http"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
)

const (
	invalidMonth = "DASHBOARD_INVALID_MONTH" // errInfo
	exportFailed = "DASHBOARD_EXPORT_FAILED" // errInfo
)

var (
	ErrInvalidMonth = sharedError.NewDomainError(invalidMonth)
	ErrExportFailed = sharedError.NewDomainError(exportFailed)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidMonth, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "DASHBOARD-001",
		Message: "조회 월은 YYYY-MM 형식이어야 합니다.",
	})

	sharedError.RegisterDomainErrorResponse(exportFailed, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "DASHBOARD-002",
		Message: "정산 파일 생성에 실패했습니다.",
	})
}
