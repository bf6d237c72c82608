package config

import (
	"fmt"

	"task-manager/internal/errors"
	"task-manager/internal/store"
	"task-manager/internal/store/memory"
	"task-manager/internal/store/sqlite"
)

// CreateStore creates the task store selected by the configuration
func CreateStore(config *Config) (store.TaskStore, error) {
	switch config.Store.Driver {
	case StoreDriverSQLite:
		s, err := sqlite.NewInMemory()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		return s, nil
	case StoreDriverMemory, "":
		return memory.New(), nil
	default:
		return nil, errors.NewInvalidInputError("store.driver", config.Store.Driver,
			fmt.Sprintf("unknown store driver %q", config.Store.Driver))
	}
}
