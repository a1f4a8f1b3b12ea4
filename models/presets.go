package models

import "fmt"

// Preset size classes accepted by plan creation. An empty preset yields a
// blank plan.
const (
	PresetSmall  = "small"
	PresetMedium = "medium"
	PresetLarge  = "large"
)

func presetTableCount(preset string) int {
	switch preset {
	case PresetSmall:
		return 6
	case PresetMedium:
		return 10
	case PresetLarge:
		return 16
	}
	return 0
}

// NewPresetPlan builds a plan seeded for the given size class. Tables are laid
// out on a simple grid with shape-default sizes; every fourth table is a
// circle, every third a square.
func NewPresetPlan(name, preset string) FloorPlan {
	if name == "" {
		name = "Main Floor"
	}
	plan := FloorPlan{
		Name:   name,
		Width:  DefaultPlanWidth,
		Height: DefaultPlanHeight,
		Active: true,
	}
	plan.SetZones([]Zone{
		{Name: "Dining Room", Kind: string(SectionDining), X: 40, Y: 40, Width: 600, Height: 400},
		{Name: "Bar", Kind: string(SectionBar), X: 700, Y: 40, Width: 260, Height: 200},
		{Name: "Patio", Kind: string(SectionPatio), X: 40, Y: 480, Width: 400, Height: 180},
	})

	count := presetTableCount(preset)
	cols := 4
	for i := 0; i < count; i++ {
		shape := ShapeRectangle
		if (i+1)%4 == 0 {
			shape = ShapeCircle
		} else if (i+1)%3 == 0 {
			shape = ShapeSquare
		}
		w, h := shape.DefaultSize()
		col := i % cols
		row := i / cols
		plan.Tables = append(plan.Tables, Table{
			TableNumber: fmt.Sprintf("T%d", i+1),
			PosX:        60 + float64(col)*140,
			PosY:        60 + float64(row)*120,
			Width:       w,
			Height:      h,
			Shape:       shape,
			Capacity:    4,
			Section:     SectionDining,
			Status:      StatusAvailable,
		})
	}
	return plan
}
