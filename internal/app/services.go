package app

import (
	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/services"
)

type Services struct {
	Owner         services.OwnerService
	Property      services.PropertyService
	PropertyImage services.PropertyImageService
	PropertyTrace services.PropertyTraceService
}

func wireServices(r Repos, log *logger.Logger) Services {
	log.Info("Wiring services...")
	return Services{
		Owner:         services.NewOwnerService(r.Owner, r.Property, log),
		Property:      services.NewPropertyService(r.Property, r.Owner, r.PropertyImage, r.PropertyTrace, log),
		PropertyImage: services.NewPropertyImageService(r.PropertyImage, r.Property, log),
		PropertyTrace: services.NewPropertyTraceService(r.PropertyTrace, r.Property, log),
	}
}
