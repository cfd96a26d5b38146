package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) GetEvent(
	ctx context.Context,
	id uint,
) (*models.Event, error) {

	var ev models.Event
	if err := r.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// GetSettings devolve (nil, nil) quando o escopo não tem linha própria —
// a resolução trata ausência como "herda do pai".
func (r *SettingsGormRepository) GetSettings(
	ctx context.Context,
	entityType string,
	entityID uint,
) (*models.Settings, error) {

	var set models.Settings
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		First(&set).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &set, nil
}

// PutSettings faz upsert pelo par (entity_type, entity_id); o
// updated_at novo muda o fingerprint e expira o cache naturalmente.
func (r *SettingsGormRepository) PutSettings(
	ctx context.Context,
	set *models.Settings,
) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entity_type"}, {Name: "entity_id"}},
			UpdateAll: true,
		}).
		Create(set).Error
}
