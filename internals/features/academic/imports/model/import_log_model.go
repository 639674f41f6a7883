// file: internals/features/academic/imports/model/import_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ImportLogModel guarda el manifiesto por-fila de cada carga masiva
// (subjects/students). Auditoría: el import nunca aborta el lote.
type ImportLogModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Resource string    `gorm:"type:varchar(40);not null;index;column:resource" json:"resource"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;column:user_id" json:"user_id"`
	RowCount int       `gorm:"not null;column:row_count" json:"row_count"`
	OkCount  int       `gorm:"not null;column:ok_count" json:"ok_count"`
	// manifiesto [{row, ok, id?, error?}, ...]
	Manifest  datatypes.JSON `gorm:"type:jsonb;not null;column:manifest" json:"manifest"`
	CreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
}

func (ImportLogModel) TableName() string { return "import_logs" }
