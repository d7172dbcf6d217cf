package dashboard

import (
	"fmt"
	"net/http"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DashboardHandler struct {
	dashboardService *DashboardService
}

func NewDashboardHandler(dashboardService *DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	response, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (h *DashboardHandler) Settlement(c *gin.Context) {
	var query SettlementQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.dashboardService.Settlement(c.Request.Context(), query.Month)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (h *DashboardHandler) Export(c *gin.Context) {
	var query SettlementQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	report, content, err := h.dashboardService.Export(c.Request.Context(), query.Month)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=settlement-%s.xlsx", report.Month))
	c.Data(http.StatusOK, xlsxContentType, content)
}
