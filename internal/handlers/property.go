package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/realista-backend/internal/commands"
	"github.com/yungbote/realista-backend/internal/services"
	"github.com/yungbote/realista-backend/internal/types"
)

type PropertyHandler struct {
	propertyService services.PropertyService
	create          *commands.Pipeline[commands.CreateProperty, types.Property]
	update          *commands.Pipeline[commands.UpdateProperty, types.Property]
	changePrice     *commands.Pipeline[commands.ChangePropertyPrice, types.Property]
	remove          *commands.Pipeline[commands.DeleteProperty, bool]
}

func NewPropertyHandler(
	propertyService services.PropertyService,
	create *commands.Pipeline[commands.CreateProperty, types.Property],
	update *commands.Pipeline[commands.UpdateProperty, types.Property],
	changePrice *commands.Pipeline[commands.ChangePropertyPrice, types.Property],
	remove *commands.Pipeline[commands.DeleteProperty, bool],
) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		create:          create,
		update:          update,
		changePrice:     changePrice,
		remove:          remove,
	}
}

// GET /api/properties
func (h *PropertyHandler) List(c *gin.Context) {
	p, f := parseListQuery(c)
	respondPaged(c, h.propertyService.List(c.Request.Context(), p, f))
}

// GET /api/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	respond(c, h.propertyService.Get(c.Request.Context(), c.Param("id")))
}

// POST /api/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var cmd commands.CreateProperty
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadBody[types.Property](c)
		return
	}
	respond(c, h.create.Send(c.Request.Context(), cmd))
}

// PUT /api/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	var cmd commands.UpdateProperty
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadBody[types.Property](c)
		return
	}
	cmd.ID = c.Param("id")
	respond(c, h.update.Send(c.Request.Context(), cmd))
}

// PATCH /api/properties/:id/price
func (h *PropertyHandler) ChangePrice(c *gin.Context) {
	var cmd commands.ChangePropertyPrice
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadBody[types.Property](c)
		return
	}
	cmd.ID = c.Param("id")
	respond(c, h.changePrice.Send(c.Request.Context(), cmd))
}

// DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	respond(c, h.remove.Send(c.Request.Context(), commands.DeleteProperty{ID: c.Param("id")}))
}
