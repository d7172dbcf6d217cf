package middleware

import (
	"time"

	"github.com/changhyeonkim/studio-manager/go-api-server/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// exposedHeaders are readable by the admin web client: the request id for support tickets
// and the file name of the settlement export
var exposedHeaders = []string{RequestIDHeader, "Content-Disposition"}

func CORS(cfg *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    exposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}

	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
		// 와일드카드 origin에는 credential을 허용할 수 없음
		corsConfig.AllowCredentials = false
	}

	return cors.New(corsConfig)
}
