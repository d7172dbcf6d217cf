package kakao

import (
	"net/http"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type KakaoHandler struct {
	kakaoService *KakaoService
}

func NewKakaoHandler(kakaoService *KakaoService) *KakaoHandler {
	return &KakaoHandler{
		kakaoService: kakaoService,
	}
}

// Auth POST /api/member/auth
func (h *KakaoHandler) Auth(c *gin.Context) {
	var request AuthRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.kakaoService.Authenticate(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

// Link POST /api/member/link
func (h *KakaoHandler) Link(c *gin.Context) {
	var request LinkRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.kakaoService.Link(c.Request.Context(), &request)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}

// Lookup GET /api/member/kakao/:kakao_user_id
func (h *KakaoHandler) Lookup(c *gin.Context) {
	response, err := h.kakaoService.Lookup(c.Request.Context(), c.Param("kakao_user_id"))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	handler.RespondSuccess(c, http.StatusOK, response)
}
