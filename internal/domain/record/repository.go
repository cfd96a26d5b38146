package record

import (
	"context"
	"time"

	"github.com/BruksfildServices01/attendance-tracker/internal/httperr"
	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

var ErrVersionConflict = httperr.ErrBusiness("version_conflict")

type Store interface {
	// -------- Event --------
	GetEvent(
		ctx context.Context,
		id uint,
	) (*models.Event, error)

	// -------- Record --------
	CreateRecord(
		ctx context.Context,
		rec *models.Record,
	) error

	GetRecord(
		ctx context.Context,
		id uint,
	) (*models.Record, error)

	GetRecordByUserEvent(
		ctx context.Context,
		userID uint,
		eventID uint,
	) (*models.Record, error)

	ListPendingRecords(
		ctx context.Context,
		eventID uint,
		before time.Time,
	) ([]models.Record, error)

	// SaveRecord persiste a mutação com checagem otimista de versão e
	// grava a entrada de auditoria na mesma transação. Conflito de
	// versão retorna ErrVersionConflict; nada é escrito parcialmente.
	SaveRecord(
		ctx context.Context,
		rec *models.Record,
		entry *models.AuditLog,
	) error
}
