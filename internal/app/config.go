package app

import (
	"github.com/yungbote/realista-backend/internal/pkg/logger"
	"github.com/yungbote/realista-backend/internal/utils"
)

type Config struct {
	Port string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port: utils.GetEnv("PORT", "8080", log),
	}
}
