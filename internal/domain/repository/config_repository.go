package repository

import (
	"github.com/dskyberg/instance-count/internal/shared/types"
)

// ConfigRepository locates and loads the optional configuration file.
type ConfigRepository interface {
	ConfigPath() string
	LoadConfigFile(filePath string) (*types.Config, error)
}
