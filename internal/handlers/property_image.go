package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/realista-backend/internal/commands"
	"github.com/yungbote/realista-backend/internal/services"
	"github.com/yungbote/realista-backend/internal/types"
)

type PropertyImageHandler struct {
	imageService services.PropertyImageService
	create       *commands.Pipeline[commands.CreatePropertyImage, types.PropertyImage]
	update       *commands.Pipeline[commands.UpdatePropertyImage, types.PropertyImage]
}

func NewPropertyImageHandler(
	imageService services.PropertyImageService,
	create *commands.Pipeline[commands.CreatePropertyImage, types.PropertyImage],
	update *commands.Pipeline[commands.UpdatePropertyImage, types.PropertyImage],
) *PropertyImageHandler {
	return &PropertyImageHandler{imageService: imageService, create: create, update: update}
}

// GET /api/property-images
func (h *PropertyImageHandler) List(c *gin.Context) {
	p, f := parseListQuery(c)
	respondPaged(c, h.imageService.List(c.Request.Context(), p, f))
}

// GET /api/properties/:id/images
func (h *PropertyImageHandler) ListByProperty(c *gin.Context) {
	respond(c, h.imageService.ListByProperty(c.Request.Context(), c.Param("id")))
}

// POST /api/property-images
func (h *PropertyImageHandler) Create(c *gin.Context) {
	var cmd commands.CreatePropertyImage
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadBody[types.PropertyImage](c)
		return
	}
	respond(c, h.create.Send(c.Request.Context(), cmd))
}

// PUT /api/property-images/:id
func (h *PropertyImageHandler) Update(c *gin.Context) {
	var cmd commands.UpdatePropertyImage
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadBody[types.PropertyImage](c)
		return
	}
	cmd.ID = c.Param("id")
	respond(c, h.update.Send(c.Request.Context(), cmd))
}
