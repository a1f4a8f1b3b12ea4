package models

import "time"

// TableShape affects default size and render rounding only, never collision.
type TableShape string

const (
	ShapeRectangle TableShape = "rectangle"
	ShapeCircle    TableShape = "circle"
	ShapeSquare    TableShape = "square"
)

// TableSection is the functional area a table belongs to, independent of the
// visual zone labels drawn on the plan.
type TableSection string

const (
	SectionDining        TableSection = "dining"
	SectionBar           TableSection = "bar"
	SectionPatio         TableSection = "patio"
	SectionKitchen       TableSection = "kitchen"
	SectionStorage       TableSection = "storage"
	SectionBathrooms     TableSection = "bathrooms"
	SectionWaiting       TableSection = "waiting"
	SectionPrivateDining TableSection = "private_dining"
)

type TableStatus string

const (
	StatusAvailable TableStatus = "available"
	StatusOccupied  TableStatus = "occupied"
	StatusReserved  TableStatus = "reserved"
	StatusCleaning  TableStatus = "cleaning"
)

// StatusCycle is the order a secondary click walks through.
var StatusCycle = [4]TableStatus{StatusAvailable, StatusOccupied, StatusReserved, StatusCleaning}

// Next returns the status after s in the cycle. An unknown value indexes as
// -1, so its successor is the cycle head.
func (s TableStatus) Next() TableStatus {
	idx := -1
	for i, v := range StatusCycle {
		if v == s {
			idx = i
			break
		}
	}
	return StatusCycle[(idx+1+len(StatusCycle))%len(StatusCycle)]
}

// DefaultSize returns the width/height a freshly shaped table gets.
func (s TableShape) DefaultSize() (width, height float64) {
	switch s {
	case ShapeCircle:
		return 70, 70
	case ShapeSquare:
		return 80, 80
	case ShapeRectangle:
		return 100, 70
	}
	return 100, 70
}

// Label returns the display name for a section.
func (s TableSection) Label() string {
	switch s {
	case SectionDining:
		return "Dining"
	case SectionBar:
		return "Bar"
	case SectionPatio:
		return "Patio"
	case SectionKitchen:
		return "Kitchen"
	case SectionStorage:
		return "Storage"
	case SectionBathrooms:
		return "Bathrooms"
	case SectionWaiting:
		return "Waiting"
	case SectionPrivateDining:
		return "Private Dining"
	}
	return string(s)
}

// Color returns the badge color for a status.
func (s TableStatus) Color() string {
	switch s {
	case StatusAvailable:
		return "#22c55e"
	case StatusOccupied:
		return "#ef4444"
	case StatusReserved:
		return "#f59e0b"
	case StatusCleaning:
		return "#3b82f6"
	}
	return "#6b7280"
}

// Color returns the fill color tables in a section are drawn with.
func (s TableSection) Color() string {
	switch s {
	case SectionDining:
		return "#8b5cf6"
	case SectionBar:
		return "#ec4899"
	case SectionPatio:
		return "#14b8a6"
	case SectionKitchen:
		return "#f97316"
	case SectionStorage:
		return "#64748b"
	case SectionBathrooms:
		return "#06b6d4"
	case SectionWaiting:
		return "#eab308"
	case SectionPrivateDining:
		return "#a855f7"
	}
	return "#6b7280"
}

type Table struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	FloorPlanID    uint         `gorm:"index;not null" json:"floor_plan_id"`
	TableNumber    string       `gorm:"type:varchar(50);not null" json:"table_number"`
	PosX           float64      `gorm:"not null;default:0" json:"x"`
	PosY           float64      `gorm:"not null;default:0" json:"y"`
	Width          float64      `gorm:"not null" json:"width"`
	Height         float64      `gorm:"not null" json:"height"`
	Shape          TableShape   `gorm:"type:varchar(20);not null;default:'rectangle'" json:"shape"`
	Capacity       int          `gorm:"not null;default:4" json:"capacity"`
	Section        TableSection `gorm:"type:varchar(30);not null;default:'dining'" json:"section"`
	Status         TableStatus  `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	Accessible     bool         `gorm:"not null;default:false" json:"accessible"`
	AssignedServer string       `gorm:"type:varchar(100)" json:"assigned_server"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
