package audit

import (
	"log"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/attendance-tracker/internal/models"
)

// Dispatcher grava entradas fora do caminho da request, para mutações
// que não exigem atomicidade com o registro (settings, memberships,
// login). Mutações do engine NÃO passam por aqui — vão na transação.

type Dispatcher struct {
	db    *gorm.DB
	queue chan *models.AuditLog
}

func NewDispatcher(db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		queue: make(chan *models.AuditLog, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for entry := range d.queue {
		if err := d.db.Create(entry).Error; err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(entry *models.AuditLog) {
	if d == nil {
		return
	}
	select {
	case d.queue <- entry:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Println("audit queue full, dropping event")
	}
}
