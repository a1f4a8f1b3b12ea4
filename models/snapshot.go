package models

import (
	"time"

	"gorm.io/datatypes"
)

// PlanSnapshot is the demo-mode cache row. A single fixed key holds the whole
// serialized plan, overwritten wholesale on every persisted mutation, so only
// one demo plan survives a reload.
type PlanSnapshot struct {
	Key       string         `gorm:"primaryKey;type:varchar(100)" json:"key"`
	Data      datatypes.JSON `json:"data"`
	UpdatedAt time.Time      `json:"updated_at"`
}
