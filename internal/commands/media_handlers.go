package commands

import (
	"context"
	"errors"

	"github.com/yungbote/realista-backend/internal/pkg/errs"
	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/repos"
	"github.com/yungbote/realista-backend/internal/results"
	"github.com/yungbote/realista-backend/internal/types"
)

type CreatePropertyImageHandler struct {
	images repos.PropertyImageRepo
	log    *logger.Logger
}

func NewCreatePropertyImageHandler(images repos.PropertyImageRepo, baseLog *logger.Logger) *CreatePropertyImageHandler {
	return &CreatePropertyImageHandler{images: images, log: baseLog.With("handler", "CreatePropertyImage")}
}

func (h *CreatePropertyImageHandler) Handle(ctx context.Context, cmd CreatePropertyImage) results.Result[types.PropertyImage] {
	created, err := h.images.Add(ctx, types.PropertyImage{
		IDProperty: cmd.IDProperty,
		File:       cmd.File,
		Enabled:    cmd.Enabled,
	})
	if err != nil {
		h.log.Error("persist property image", "error", err)
		return results.Unexpected[types.PropertyImage]("could not save property image")
	}
	return results.Created(created)
}

type UpdatePropertyImageHandler struct {
	images repos.PropertyImageRepo
	log    *logger.Logger
}

func NewUpdatePropertyImageHandler(images repos.PropertyImageRepo, baseLog *logger.Logger) *UpdatePropertyImageHandler {
	return &UpdatePropertyImageHandler{images: images, log: baseLog.With("handler", "UpdatePropertyImage")}
}

func (h *UpdatePropertyImageHandler) Handle(ctx context.Context, cmd UpdatePropertyImage) results.Result[types.PropertyImage] {
	updated, err := h.images.Update(ctx, types.PropertyImage{
		ID:         cmd.ID,
		IDProperty: cmd.IDProperty,
		File:       cmd.File,
		Enabled:    cmd.Enabled,
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return results.NotFound[types.PropertyImage]("property image not found")
		}
		h.log.Error("replace property image", "error", err)
		return results.Unexpected[types.PropertyImage]("could not update property image")
	}
	return results.Ok(updated)
}

type CreatePropertyTraceHandler struct {
	traces repos.PropertyTraceRepo
	log    *logger.Logger
}

func NewCreatePropertyTraceHandler(traces repos.PropertyTraceRepo, baseLog *logger.Logger) *CreatePropertyTraceHandler {
	return &CreatePropertyTraceHandler{traces: traces, log: baseLog.With("handler", "CreatePropertyTrace")}
}

func (h *CreatePropertyTraceHandler) Handle(ctx context.Context, cmd CreatePropertyTrace) results.Result[types.PropertyTrace] {
	created, err := h.traces.Add(ctx, types.PropertyTrace{
		IDProperty: cmd.IDProperty,
		DateSale:   cmd.DateSale,
		Name:       cmd.Name,
		Value:      cmd.Value,
		Tax:        cmd.Tax,
	})
	if err != nil {
		h.log.Error("persist property trace", "error", err)
		return results.Unexpected[types.PropertyTrace]("could not save property trace")
	}
	return results.Created(created)
}
