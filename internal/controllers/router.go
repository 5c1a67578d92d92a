package controllers

import (
	"github.com/fsdevblog/tinyurl/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterParams зависимости роутера.
type RouterParams struct {
	URLService  ShortURLStore
	PingService ConnectionChecker
	BaseURL     string
	Logger      *zap.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(gin.Recovery())
	r.Use(middlewares.GzipMiddleware())

	shortURLController := NewShortURLController(params.URLService, params.BaseURL)
	qrController := NewQRController(params.URLService, params.BaseURL)

	if params.PingService != nil {
		pingController := NewPingController(params.PingService)
		r.GET("/ping", pingController.Ping)
	}

	r.GET("/:shortID", shortURLController.Redirect)
	r.POST("/", shortURLController.CreateShortURL)

	api := r.Group("/api")
	api.POST("/shorten", shortURLController.CreateShortURL)
	api.GET("/urls/:shortID", shortURLController.Stats)
	api.PATCH("/urls/:shortID/expiry", shortURLController.UpdateExpiry)
	api.GET("/urls/:shortID/qr", qrController.QRCode)
	api.GET("/aliases/:alias", shortURLController.AliasAvailability)
	return r
}
