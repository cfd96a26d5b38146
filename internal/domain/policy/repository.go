package policy

import (
	"context"

	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

type Store interface {
	GetEvent(
		ctx context.Context,
		id uint,
	) (*models.Event, error)

	// GetSettings retorna (nil, nil) quando não existe linha no escopo —
	// ausência é entrada válida para a resolução, não erro.
	GetSettings(
		ctx context.Context,
		entityType string,
		entityID uint,
	) (*models.Settings, error)

	PutSettings(
		ctx context.Context,
		settings *models.Settings,
	) error
}
