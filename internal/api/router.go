package api

import (
	"currency-mask/internal/config"
	"currency-mask/internal/session"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the session API onto a gin engine.
func NewRouter(manager *session.Manager, defaults config.Field) *gin.Engine {
	handler := NewHandler(manager, defaults)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	v1 := r.Group("/v1")
	{
		v1.POST("/sessions", handler.CreateSession)
		v1.GET("/sessions/:id", handler.GetSession)
		v1.POST("/sessions/:id/text", handler.ChangeText)
		v1.POST("/sessions/:id/value", handler.SetValue)
		v1.PUT("/sessions/:id/options", handler.Reconfigure)
		v1.DELETE("/sessions/:id", handler.DeleteSession)
		v1.POST("/preview", handler.Preview)
	}

	return r
}
