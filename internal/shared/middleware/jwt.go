package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/config"
	sharedContext "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/studio-manager/go-api-server/internal/shared/token"
	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

var unauthorized = sharedError.ErrorResponse{
	Status:  http.StatusUnauthorized,
	Code:    "AUTH-000",
	Message: "로그인을 해주세요.",
}

// 만료된 토큰은 AUTH-001, 나머지 인증 실패는 AUTH-000
func init() {
	for _, errInfo := range []string{missingToken, invalidToken, invalidClaims} {
		sharedError.RegisterDomainErrorResponse(errInfo, unauthorized)
	}

	sharedError.RegisterDomainErrorResponse(expiredToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "로그인이 만료되었습니다. 다시 로그인해 주세요.",
	})
}

// AccessTokenValidator is the part of the JWT manager the middleware needs
type AccessTokenValidator interface {
	ValidateAccessToken(tokenString string) (*token.Claims, error)
}

// JWT protects the admin API with a bearer access token
func JWT(cfg *config.Config) gin.HandlerFunc {
	return JWTWith(token.NewJWTManager(cfg))
}

func JWTWith(validator AccessTokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		raw, err := extractToken(c)
		if err != nil {
			log.Warn("JWT 토큰 추출 실패",
				"error", err.Error(),
				"client_ip", c.ClientIP(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			abortUnauthorized(c, err)
			return
		}

		claims, err := validator.ValidateAccessToken(raw)
		if err != nil {
			log.Warn("JWT 토큰 검증 실패",
				"error", err.Error(),
				"client_ip", c.ClientIP(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			abortUnauthorized(c, mapTokenError(err))
			return
		}

		c.Set(sharedContext.AdminIDKey, claims.AdminID)
		c.Set(sharedContext.AdminEmailKey, claims.Email)
		c.Request = c.Request.WithContext(logger.With(c.Request.Context(), "admin_id", claims.AdminID))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	resp, ok := sharedError.ResolveDomainError(err)
	if !ok {
		resp = unauthorized
	}
	c.AbortWithStatusJSON(resp.Status, resp)
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidToken
	}

	return strings.TrimSpace(parts[1]), nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
