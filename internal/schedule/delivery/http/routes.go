package http

import (
	"github.com/gin-gonic/gin"

	"calendar-converter/internal/middleware"
)

// RegisterRoutes maps the convert endpoints under rg. All of them are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	convert := rg.Group("/convert", mw.RateLimit())
	{
		convert.POST("/text", h.ConvertText)
		convert.POST("/file", h.ConvertFile)
		convert.POST("/image", h.ConvertImage)
	}
}
