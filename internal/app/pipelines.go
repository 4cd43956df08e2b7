package app

import (
	"github.com/yungbote/realista-backend/internal/commands"
	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/types"
)

// Pipelines holds one validate-then-dispatch pipeline per command.
type Pipelines struct {
	CreateOwner         *commands.Pipeline[commands.CreateOwner, types.Owner]
	UpdateOwner         *commands.Pipeline[commands.UpdateOwner, types.Owner]
	DeleteOwner         *commands.Pipeline[commands.DeleteOwner, bool]
	CreateProperty      *commands.Pipeline[commands.CreateProperty, types.Property]
	UpdateProperty      *commands.Pipeline[commands.UpdateProperty, types.Property]
	ChangePropertyPrice *commands.Pipeline[commands.ChangePropertyPrice, types.Property]
	DeleteProperty      *commands.Pipeline[commands.DeleteProperty, bool]
	CreatePropertyImage *commands.Pipeline[commands.CreatePropertyImage, types.PropertyImage]
	UpdatePropertyImage *commands.Pipeline[commands.UpdatePropertyImage, types.PropertyImage]
	CreatePropertyTrace *commands.Pipeline[commands.CreatePropertyTrace, types.PropertyTrace]
}

func wirePipelines(r Repos, log *logger.Logger) Pipelines {
	log.Info("Wiring command pipelines...")
	return Pipelines{
		CreateOwner: commands.NewPipeline(log,
			commands.NewCreateOwnerHandler(r.Owner, log),
			commands.CreateOwnerValidators()...),
		UpdateOwner: commands.NewPipeline(log,
			commands.NewUpdateOwnerHandler(r.Owner, log),
			commands.UpdateOwnerValidators()...),
		DeleteOwner: commands.NewPipeline(log,
			commands.NewDeleteOwnerHandler(r.Owner, log),
			commands.DeleteOwnerValidators()...),
		CreateProperty: commands.NewPipeline(log,
			commands.NewCreatePropertyHandler(r.Property, log),
			commands.CreatePropertyValidators(r.Owner)...),
		UpdateProperty: commands.NewPipeline(log,
			commands.NewUpdatePropertyHandler(r.Property, log),
			commands.UpdatePropertyValidators(r.Owner)...),
		ChangePropertyPrice: commands.NewPipeline(log,
			commands.NewChangePropertyPriceHandler(r.Property, log),
			commands.ChangePropertyPriceValidators()...),
		DeleteProperty: commands.NewPipeline(log,
			commands.NewDeletePropertyHandler(r.Property, log),
			commands.DeletePropertyValidators()...),
		CreatePropertyImage: commands.NewPipeline(log,
			commands.NewCreatePropertyImageHandler(r.PropertyImage, log),
			commands.CreatePropertyImageValidators(r.Property)...),
		UpdatePropertyImage: commands.NewPipeline(log,
			commands.NewUpdatePropertyImageHandler(r.PropertyImage, log),
			commands.UpdatePropertyImageValidators(r.Property)...),
		CreatePropertyTrace: commands.NewPipeline(log,
			commands.NewCreatePropertyTraceHandler(r.PropertyTrace, log),
			commands.CreatePropertyTraceValidators(r.Property)...),
	}
}
