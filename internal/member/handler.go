package member

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) List(c *gin.Context) {
	var query ListMembersQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.memberService.List(c.Request.Context(), &query)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (h *MemberHandler) Get(c *gin.Context) {
	memberID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	response, err := h.memberService.Get(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var request CreateMemberRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.Create(c.Request.Context(), &request, sharedContext.AdminIDOrZero(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusCreated, response)
}

func (h *MemberHandler) Update(c *gin.Context) {
	memberID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	var request UpdateMemberRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.Update(c.Request.Context(), memberID, &request, sharedContext.AdminIDOrZero(c))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	memberID, ok := handler.PathID(c, "id")
	if !ok {
		return
	}

	if err := h.memberService.Delete(c.Request.Context(), memberID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, gin.H{"id": memberID})
}
