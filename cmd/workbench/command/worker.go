package command

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load datasets
	items, err := cfg.Storage.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("building item catalog: %w", err)
	}
	index, err := cfg.Storage.BuildIndex()
	if err != nil {
		return nil, fmt.Errorf("building recipe index: %w", err)
	}
	if err := index.CheckItems(items); err != nil {
		return nil, fmt.Errorf("checking recipes: %w", err)
	}
	slog.Info("datasets ready", "items", items.Len(), "recipes", index.Len())

	bench, err := cfg.Session.BuildWorkbench(items, index)
	if err != nil {
		return nil, fmt.Errorf("creating workbench: %w", err)
	}

	bus, err := cfg.Bus.BuildBus()
	if err != nil {
		return nil, fmt.Errorf("creating session bus: %w", err)
	}

	session, err := cfg.Session.BuildSession(bench, bus)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return service.WorkerList{
		"bus":     bus,
		"session": session,
	}, nil
}
