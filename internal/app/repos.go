package app

import (
	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/repos"
	"github.com/yungbote/realista-backend/internal/store"
)

type Repos struct {
	Owner         repos.OwnerRepo
	Property      repos.PropertyRepo
	PropertyImage repos.PropertyImageRepo
	PropertyTrace repos.PropertyTraceRepo
}

func wireRepos(st store.Store, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Owner:         repos.NewOwnerRepo(st, log),
		Property:      repos.NewPropertyRepo(st, log),
		PropertyImage: repos.NewPropertyImageRepo(st, log),
		PropertyTrace: repos.NewPropertyTraceRepo(st, log),
	}
}
