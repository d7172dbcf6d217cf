package membership

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	membershipService *MembershipService
}

func NewMembershipHandler(membershipService *MembershipService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

// ListByMember GET /api/members/:id/memberships
func (h *MembershipHandler) ListByMember(c *gin.Context) {
	memberID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	response, err := h.membershipService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

// Purchase POST /api/members/:id/memberships
func (h *MembershipHandler) Purchase(c *gin.Context) {
	memberID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request PurchaseRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.membershipService.Purchase(c.Request.Context(), memberID, &request, sharedContext.AdminIDOrZero(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusCreated, response)
}

// Adjust PATCH /api/memberships/:id
func (h *MembershipHandler) Adjust(c *gin.Context) {
	historyID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request AdjustRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.membershipService.Adjust(c.Request.Context(), historyID, &request, sharedContext.AdminIDOrZero(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}
