package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/realista-backend/internal/commands"
	"github.com/yungbote/realista-backend/internal/services"
	"github.com/yungbote/realista-backend/internal/types"
)

type OwnerHandler struct {
	ownerService services.OwnerService
	create       *commands.Pipeline[commands.CreateOwner, types.Owner]
	update       *commands.Pipeline[commands.UpdateOwner, types.Owner]
	remove       *commands.Pipeline[commands.DeleteOwner, bool]
}

func NewOwnerHandler(
	ownerService services.OwnerService,
	create *commands.Pipeline[commands.CreateOwner, types.Owner],
	update *commands.Pipeline[commands.UpdateOwner, types.Owner],
	remove *commands.Pipeline[commands.DeleteOwner, bool],
) *OwnerHandler {
	return &OwnerHandler{
		ownerService: ownerService,
		create:       create,
		update:       update,
		remove:       remove,
	}
}

// GET /api/owners
func (h *OwnerHandler) List(c *gin.Context) {
	p, f := parseListQuery(c)
	respondPaged(c, h.ownerService.List(c.Request.Context(), p, f))
}

// GET /api/owners/:id
func (h *OwnerHandler) Get(c *gin.Context) {
	respond(c, h.ownerService.Get(c.Request.Context(), c.Param("id")))
}

// POST /api/owners
func (h *OwnerHandler) Create(c *gin.Context) {
	var cmd commands.CreateOwner
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadBody[types.Owner](c)
		return
	}
	respond(c, h.create.Send(c.Request.Context(), cmd))
}

// PUT /api/owners/:id
func (h *OwnerHandler) Update(c *gin.Context) {
	var cmd commands.UpdateOwner
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respondBadBody[types.Owner](c)
		return
	}
	cmd.ID = c.Param("id")
	respond(c, h.update.Send(c.Request.Context(), cmd))
}

// DELETE /api/owners/:id
func (h *OwnerHandler) Delete(c *gin.Context) {
	respond(c, h.remove.Send(c.Request.Context(), commands.DeleteOwner{ID: c.Param("id")}))
}
