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

type CreateOwnerHandler struct {
	owners repos.OwnerRepo
	log    *logger.Logger
}

func NewCreateOwnerHandler(owners repos.OwnerRepo, baseLog *logger.Logger) *CreateOwnerHandler {
	return &CreateOwnerHandler{owners: owners, log: baseLog.With("handler", "CreateOwner")}
}

func (h *CreateOwnerHandler) Handle(ctx context.Context, cmd CreateOwner) results.Result[types.Owner] {
	created, err := h.owners.Add(ctx, types.Owner{
		Name:      cmd.Name,
		Address:   cmd.Address,
		Birthdate: cmd.Birthdate,
		Photo:     cmd.Photo,
	})
	if err != nil {
		h.log.Error("persist owner", "error", err)
		return results.Unexpected[types.Owner]("could not save owner")
	}
	return results.Created(created)
}

type UpdateOwnerHandler struct {
	owners repos.OwnerRepo
	log    *logger.Logger
}

func NewUpdateOwnerHandler(owners repos.OwnerRepo, baseLog *logger.Logger) *UpdateOwnerHandler {
	return &UpdateOwnerHandler{owners: owners, log: baseLog.With("handler", "UpdateOwner")}
}

func (h *UpdateOwnerHandler) Handle(ctx context.Context, cmd UpdateOwner) results.Result[types.Owner] {
	updated, err := h.owners.Update(ctx, types.Owner{
		ID:        cmd.ID,
		Name:      cmd.Name,
		Address:   cmd.Address,
		Birthdate: cmd.Birthdate,
		Photo:     cmd.Photo,
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return results.NotFound[types.Owner]("owner not found")
		}
		h.log.Error("replace owner", "error", err)
		return results.Unexpected[types.Owner]("could not update owner")
	}
	return results.Ok(updated)
}

type DeleteOwnerHandler struct {
	owners repos.OwnerRepo
	log    *logger.Logger
}

func NewDeleteOwnerHandler(owners repos.OwnerRepo, baseLog *logger.Logger) *DeleteOwnerHandler {
	return &DeleteOwnerHandler{owners: owners, log: baseLog.With("handler", "DeleteOwner")}
}

func (h *DeleteOwnerHandler) Handle(ctx context.Context, cmd DeleteOwner) results.Result[bool] {
	removed, err := h.owners.Delete(ctx, cmd.ID)
	if err != nil {
		h.log.Error("delete owner", "error", err)
		return results.Unexpected[bool]("could not delete owner")
	}
	if !removed {
		return results.NotFound[bool]("owner not found")
	}
	return results.Ok(true)
}
