package context

import (
	"net/http"
	"strconv"

	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Context keys for storing admin authentication information
const (
	AdminIDKey    = "admin_id"
	AdminEmailKey = "admin_email"
)

func GetAdminID(c *gin.Context) (uint32, bool) {
	adminID, exists := c.Get(AdminIDKey)
	if !exists {
		return 0, false
	}

	idStr, ok := adminID.(string)
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(id), true
}

// AdminIDOrZero returns the authenticated admin id for audit columns, 0 on public routes
func AdminIDOrZero(c *gin.Context) uint32 {
	id, _ := GetAdminID(c)
	return id
}

// AdminEmail returns the authenticated admin email, "" on public routes
func AdminEmail(c *gin.Context) string {
	return c.GetString(AdminEmailKey)
}

// RequireAdminID retrieves the authenticated admin's ID from the Gin context.
// If it is missing, an authentication error response is sent and false is returned.
func RequireAdminID(c *gin.Context) (uint32, bool) {
	adminID, ok := GetAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-000",
			Message: "로그인을 해주세요.",
		})
		c.Abort()
		logger.FromContext(c.Request.Context()).Error("[API] context에 관리자 ID가 존재하지 않습니다.")
		return 0, false
	}
	return adminID, true
}
