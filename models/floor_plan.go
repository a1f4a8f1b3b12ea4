package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Zone is a labelled area drawn on the plan for orientation. Zones are
// display-only: nothing checks tables against their bounds.
type Zone struct {
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type FloorPlan struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`
	Width     float64        `gorm:"not null" json:"width"`
	Height    float64        `gorm:"not null" json:"height"`
	Zones     datatypes.JSON `json:"zones"`
	Active    bool           `gorm:"not null;default:true" json:"active"`
	Tables    []Table        `gorm:"foreignKey:FloorPlanID;constraint:OnDelete:CASCADE" json:"tables"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Default logical canvas a new plan is authored in.
const (
	DefaultPlanWidth  = 1000.0
	DefaultPlanHeight = 700.0
)

// ZoneList decodes the zone metadata. Malformed JSON reads as no zones so a
// bad row never takes down rendering.
func (fp *FloorPlan) ZoneList() []Zone {
	if len(fp.Zones) == 0 {
		return nil
	}
	var zones []Zone
	if err := json.Unmarshal(fp.Zones, &zones); err != nil {
		return nil
	}
	return zones
}

// SetZones encodes the zone list onto the plan.
func (fp *FloorPlan) SetZones(zones []Zone) error {
	raw, err := json.Marshal(zones)
	if err != nil {
		return err
	}
	fp.Zones = datatypes.JSON(raw)
	return nil
}

// TableByID returns the table with the given id, or nil.
func (fp *FloorPlan) TableByID(id uint) *Table {
	for i := range fp.Tables {
		if fp.Tables[i].ID == id {
			return &fp.Tables[i]
		}
	}
	return nil
}
