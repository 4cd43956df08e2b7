package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/server"
)

func wireRouter(h Handlers, log *logger.Logger) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:                  log,
		OwnerHandler:         h.Owner,
		PropertyHandler:      h.Property,
		PropertyImageHandler: h.PropertyImage,
		PropertyTraceHandler: h.PropertyTrace,
	})
}
