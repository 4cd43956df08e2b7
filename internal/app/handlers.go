package app

import (
	"github.com/yungbote/realista-backend/internal/handlers"
	"github.com/yungbote/realista-backend/internal/pkg/logger"
)

type Handlers struct {
	Owner         *handlers.OwnerHandler
	Property      *handlers.PropertyHandler
	PropertyImage *handlers.PropertyImageHandler
	PropertyTrace *handlers.PropertyTraceHandler
}

func wireHandlers(services Services, pipelines Pipelines, log *logger.Logger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Owner: handlers.NewOwnerHandler(services.Owner,
			pipelines.CreateOwner, pipelines.UpdateOwner, pipelines.DeleteOwner),
		Property: handlers.NewPropertyHandler(services.Property,
			pipelines.CreateProperty, pipelines.UpdateProperty,
			pipelines.ChangePropertyPrice, pipelines.DeleteProperty),
		PropertyImage: handlers.NewPropertyImageHandler(services.PropertyImage,
			pipelines.CreatePropertyImage, pipelines.UpdatePropertyImage),
		PropertyTrace: handlers.NewPropertyTraceHandler(services.PropertyTrace,
			pipelines.CreatePropertyTrace),
	}
}
