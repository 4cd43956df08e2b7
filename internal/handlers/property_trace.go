package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/realista-backend/internal/commands"
	"github.com/yungbote/realista-backend/internal/services"
	"github.com/yungbote/realista-backend/internal/types"
)

type PropertyTraceHandler struct {
	traceService services.PropertyTraceService
	create       *commands.Pipeline[commands.CreatePropertyTrace, types.PropertyTrace]
}

func NewPropertyTraceHandler(
	traceService services.PropertyTraceService,
	create *commands.Pipeline[commands.CreatePropertyTrace, types.PropertyTrace],
) *PropertyTraceHandler {
	return &PropertyTraceHandler{traceService: traceService, create: create}
}

// GET /api/property-traces/:id
func (h *PropertyTraceHandler) Get(c *gin.Context) {
	respond(c, h.traceService.Get(c.Request.Context(), c.Param("id")))
}

// GET /api/properties/:id/traces
func (h *PropertyTraceHandler) ListByProperty(c *gin.Context) {
	respond(c, h.traceService.ListByProperty(c.Request.Context(), c.Param("id")))
}

// POST /api/property-traces
func (h *PropertyTraceHandler) Create(c *gin.Context) {
	var cmd commands.CreatePropertyTrace
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadBody[types.PropertyTrace](c)
		return
	}
	respond(c, h.create.Send(c.Request.Context(), cmd))
}
