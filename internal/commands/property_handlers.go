package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/realista-backend/internal/pkg/errs"
	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/repos"
	"github.com/yungbote/realista-backend/internal/results"
	"github.com/yungbote/realista-backend/internal/types"
)

type CreatePropertyHandler struct {
	properties repos.PropertyRepo
	log        *logger.Logger
}

func NewCreatePropertyHandler(properties repos.PropertyRepo, baseLog *logger.Logger) *CreatePropertyHandler {
	return &CreatePropertyHandler{properties: properties, log: baseLog.With("handler", "CreateProperty")}
}

func (h *CreatePropertyHandler) Handle(ctx context.Context, cmd CreateProperty) results.Result[types.Property] {
	code := cmd.CodeInternal
	if code == "" {
		code = newInternalCode()
	}
	created, err := h.properties.Add(ctx, types.Property{
		Name:         cmd.Name,
		Address:      cmd.Address,
		Price:        cmd.Price,
		CodeInternal: code,
		Year:         cmd.Year,
		IDOwner:      cmd.IDOwner,
	})
	if err != nil {
		h.log.Error("persist property", "error", err)
		return results.Unexpected[types.Property]("could not save property")
	}
	return results.Created(created)
}

type UpdatePropertyHandler struct {
	properties repos.PropertyRepo
	log        *logger.Logger
}

func NewUpdatePropertyHandler(properties repos.PropertyRepo, baseLog *logger.Logger) *UpdatePropertyHandler {
	return &UpdatePropertyHandler{properties: properties, log: baseLog.With("handler", "UpdateProperty")}
}

func (h *UpdatePropertyHandler) Handle(ctx context.Context, cmd UpdateProperty) results.Result[types.Property] {
	updated, err := h.properties.Update(ctx, types.Property{
		ID:           cmd.ID,
		Name:         cmd.Name,
		Address:      cmd.Address,
		Price:        cmd.Price,
		CodeInternal: cmd.CodeInternal,
		Year:         cmd.Year,
		IDOwner:      cmd.IDOwner,
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return results.NotFound[types.Property]("property not found")
		}
		h.log.Error("replace property", "error", err)
		return results.Unexpected[types.Property]("could not update property")
	}
	return results.Ok(updated)
}

type ChangePropertyPriceHandler struct {
	properties repos.PropertyRepo
	log        *logger.Logger
}

func NewChangePropertyPriceHandler(properties repos.PropertyRepo, baseLog *logger.Logger) *ChangePropertyPriceHandler {
	return &ChangePropertyPriceHandler{properties: properties, log: baseLog.With("handler", "ChangePropertyPrice")}
}

// Handle loads the property, mutates the price, and replaces the full
// document. There is no optimistic concurrency; a record deleted
// between the read and the write surfaces as not found.
func (h *ChangePropertyPriceHandler) Handle(ctx context.Context, cmd ChangePropertyPrice) results.Result[types.Property] {
	prop, err := h.properties.GetByID(ctx, cmd.ID)
	if err != nil {
		h.log.Error("load property", "error", err)
		return results.Unexpected[types.Property]("could not load property")
	}
	if prop == nil {
		return results.NotFound[types.Property]("property not found")
	}
	prop.Price = cmd.Price
	updated, err := h.properties.Update(ctx, *prop)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return results.NotFound[types.Property]("property not found")
		}
		h.log.Error("replace property", "error", err)
		return results.Unexpected[types.Property]("could not change property price")
	}
	return results.Ok(updated)
}

type DeletePropertyHandler struct {
	properties repos.PropertyRepo
	log        *logger.Logger
}

func NewDeletePropertyHandler(properties repos.PropertyRepo, baseLog *logger.Logger) *DeletePropertyHandler {
	return &DeletePropertyHandler{properties: properties, log: baseLog.With("handler", "DeleteProperty")}
}

func (h *DeletePropertyHandler) Handle(ctx context.Context, cmd DeleteProperty) results.Result[bool] {
	removed, err := h.properties.Delete(ctx, cmd.ID)
	if err != nil {
		h.log.Error("delete property", "error", err)
		return results.Unexpected[bool]("could not delete property")
	}
	if !removed {
		return results.NotFound[bool]("property not found")
	}
	return results.Ok(true)
}

func newInternalCode() string {
	return fmt.Sprintf("PROP-%s", strings.ToUpper(uuid.NewString()[:8]))
}
