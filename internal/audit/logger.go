package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/models"
)

// Logger grava eventos de auditoria na tabela audit_logs. Metadata é
// serializado como JSON; falha de serialização grava o evento sem
// metadata em vez de perder o registro.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	return l.db.Create(&models.AuditLog{
		PetShopID: ev.PetShopID,
		UserID:    ev.UserID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
	}).Error
}
