package persistence

import (
	"context"

	"github.com/openfloor/planboard/models"
)

// ConnectionMode is resolved once at session start and never changes
// afterwards: a session that loses the backend mid-flight keeps failing
// individual calls rather than demoting itself to demo mode.
type ConnectionMode string

const (
	ModeLive ConnectionMode = "live"
	ModeDemo ConnectionMode = "demo"
)

// TableSpec describes a table being added to a plan. Width/height are derived
// from the shape by the backend.
type TableSpec struct {
	TableNumber string              `json:"table_number"`
	X           float64             `json:"x"`
	Y           float64             `json:"y"`
	Shape       models.TableShape   `json:"shape"`
	Capacity    int                 `json:"capacity"`
	Section     models.TableSection `json:"section"`
}

// TableFields is a partial update: nil means "leave unchanged".
type TableFields struct {
	TableNumber    *string              `json:"table_number,omitempty"`
	X              *float64             `json:"x,omitempty"`
	Y              *float64             `json:"y,omitempty"`
	Width          *float64             `json:"width,omitempty"`
	Height         *float64             `json:"height,omitempty"`
	Shape          *models.TableShape   `json:"shape,omitempty"`
	Capacity       *int                 `json:"capacity,omitempty"`
	Section        *models.TableSection `json:"section,omitempty"`
	Status         *models.TableStatus  `json:"status,omitempty"`
	Accessible     *bool                `json:"accessible,omitempty"`
	AssignedServer *string              `json:"assigned_server,omitempty"`
}

// Apply copies the set fields onto a table.
func (f TableFields) Apply(t *models.Table) {
	if f.TableNumber != nil {
		t.TableNumber = *f.TableNumber
	}
	if f.X != nil {
		t.PosX = *f.X
	}
	if f.Y != nil {
		t.PosY = *f.Y
	}
	if f.Width != nil {
		t.Width = *f.Width
	}
	if f.Height != nil {
		t.Height = *f.Height
	}
	if f.Shape != nil {
		t.Shape = *f.Shape
	}
	if f.Capacity != nil {
		t.Capacity = *f.Capacity
	}
	if f.Section != nil {
		t.Section = *f.Section
	}
	if f.Status != nil {
		t.Status = *f.Status
	}
	if f.Accessible != nil {
		t.Accessible = *f.Accessible
	}
	if f.AssignedServer != nil {
		t.AssignedServer = *f.AssignedServer
	}
}

type PositionUpdate struct {
	TableID uint    `json:"table_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Adapter is the persistence contract the editor talks through. Live mode
// calls the remote service; demo mode mirrors an in-memory plan to a local
// snapshot. The editor never distinguishes them beyond Mode().
type Adapter interface {
	Mode() ConnectionMode
	ListPlans(ctx context.Context) ([]models.FloorPlan, error)
	CreatePlan(ctx context.Context, name, preset string) (*models.FloorPlan, error)
	AddTable(ctx context.Context, planID uint, spec TableSpec) (*models.Table, error)
	UpdateTable(ctx context.Context, tableID uint, fields TableFields) error
	BatchUpdatePositions(ctx context.Context, planID uint, updates []PositionUpdate) error
	DeleteTable(ctx context.Context, tableID uint) error
}
