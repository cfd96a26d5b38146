package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/attendance-tracker/internal/domain/record"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

type AttendanceGormRepository struct {
	db *gorm.DB
}

func NewAttendanceGormRepository(db *gorm.DB) *AttendanceGormRepository {
	return &AttendanceGormRepository{db: db}
}

// --------------------------------------------------
// Event
// --------------------------------------------------

func (r *AttendanceGormRepository) GetEvent(
	ctx context.Context,
	id uint,
) (*models.Event, error) {

	var ev models.Event
	if err := r.db.WithContext(ctx).First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

// --------------------------------------------------
// Record
// --------------------------------------------------

func (r *AttendanceGormRepository) CreateRecord(
	ctx context.Context,
	rec *models.Record,
) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *AttendanceGormRepository) GetRecord(
	ctx context.Context,
	id uint,
) (*models.Record, error) {

	var rec models.Record
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *AttendanceGormRepository) GetRecordByUserEvent(
	ctx context.Context,
	userID uint,
	eventID uint,
) (*models.Record, error) {

	var rec models.Record
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *AttendanceGormRepository) ListPendingRecords(
	ctx context.Context,
	eventID uint,
	before time.Time,
) ([]models.Record, error) {

	var recs []models.Record
	if err := r.db.WithContext(ctx).
		Where(
			"event_id = ? AND status = 'pending' AND event_start_time < ?",
			eventID,
			before,
		).
		Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// SaveRecord aplica a mutação com guarda de versão e grava a auditoria
// na mesma transação. UPDATE ... WHERE id = ? AND version = <observada>
// afetando zero linhas significa que alguém salvou antes.
func (r *AttendanceGormRepository) SaveRecord(
	ctx context.Context,
	rec *models.Record,
	entry *models.AuditLog,
) error {

	observed := rec.Version
	rec.Version = observed + 1

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Record{}).
			Where("id = ? AND version = ?", rec.ID, observed).
			Select("*").
			Omit("id", "created_at").
			Updates(rec)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrVersionConflict
		}

		if entry != nil {
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		rec.Version = observed
		return err
	}
	return nil
}
