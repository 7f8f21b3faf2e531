package http

import (
	"github.com/gin-gonic/gin"

	"calendar-converter/internal/schedule"
	"calendar-converter/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	ConvertText(c *gin.Context)
	ConvertFile(c *gin.Context)
	ConvertImage(c *gin.Context)
}

type handler struct {
	l              log.Logger
	uc             schedule.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for the schedule domain.
// maxUploadMB bounds request bodies; zero or less means 10 MB.
func New(l log.Logger, uc schedule.UseCase, maxUploadMB int) Handler {
	if maxUploadMB <= 0 {
		maxUploadMB = 10
	}
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}
