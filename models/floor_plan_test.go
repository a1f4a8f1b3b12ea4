package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestZoneListRoundTrip(t *testing.T) {
	var fp FloorPlan
	err := fp.SetZones([]Zone{
		{Name: "Dining Room", Kind: "dining", X: 10, Y: 10, Width: 300, Height: 200},
		{Name: "Bar", Kind: "bar", X: 350, Y: 10, Width: 100, Height: 100},
	})
	assert.NoError(t, err)

	zones := fp.ZoneList()
	assert.Len(t, zones, 2)
	assert.Equal(t, "Dining Room", zones[0].Name)
}

func TestZoneListMalformedReadsAsEmpty(t *testing.T) {
	fp := FloorPlan{Zones: datatypes.JSON([]byte("{not json"))}
	assert.Nil(t, fp.ZoneList())

	fp.Zones = nil
	assert.Nil(t, fp.ZoneList())
}

func TestPresetPlanSeeding(t *testing.T) {
	cases := []struct {
		preset string
		tables int
	}{
		{PresetSmall, 6},
		{PresetMedium, 10},
		{PresetLarge, 16},
		{"", 0},
	}
	for _, tc := range cases {
		plan := NewPresetPlan("Test", tc.preset)
		assert.Len(t, plan.Tables, tc.tables, "preset %q", tc.preset)
		assert.Equal(t, DefaultPlanWidth, plan.Width)
		assert.Equal(t, DefaultPlanHeight, plan.Height)
		assert.NotEmpty(t, plan.ZoneList())

		// seeded tables carry shape-default sizes and stay inside the plan
		for _, tbl := range plan.Tables {
			w, h := tbl.Shape.DefaultSize()
			assert.Equal(t, w, tbl.Width)
			assert.Equal(t, h, tbl.Height)
			assert.LessOrEqual(t, tbl.PosX+tbl.Width, plan.Width)
			assert.LessOrEqual(t, tbl.PosY+tbl.Height, plan.Height)
		}
	}
}

func TestTableByID(t *testing.T) {
	plan := FloorPlan{Tables: []Table{{ID: 3, TableNumber: "T3"}}}
	assert.NotNil(t, plan.TableByID(3))
	assert.Nil(t, plan.TableByID(4))
}
