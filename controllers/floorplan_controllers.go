package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openfloor/planboard/hub"
	"github.com/openfloor/planboard/models"
	"github.com/openfloor/planboard/utils"
)

type FloorPlanController struct {
	DB *gorm.DB
}

func NewFloorPlanController(db *gorm.DB) *FloorPlanController {
	return &FloorPlanController{DB: db}
}

// GetAllFloorPlans -> list every plan with its tables nested
func (fc *FloorPlanController) GetAllFloorPlans(c *gin.Context) {
	var plans []models.FloorPlan
	if err := fc.DB.Preload("Tables").Find(&plans).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of floor plans", plans)
}

// GetFloorPlanByID -> detail of one plan
func (fc *FloorPlanController) GetFloorPlanByID(c *gin.Context) {
	planID := c.Param("plan_id")
	var plan models.FloorPlan
	if err := fc.DB.Preload("Tables").First(&plan, planID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Floor plan detail", plan)
}

// CreateFloorPlan -> new layout, optionally seeded from a preset size class
func (fc *FloorPlanController) CreateFloorPlan(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Preset string `json:"preset"` // small | medium | large | ""
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	plan := models.NewPresetPlan(req.Name, req.Preset)
	if err := fc.DB.Create(&plan).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastPlanCreate(plan)
	utils.InfoLogger.Printf("New floor plan created: %s (preset=%q, %d tables)", plan.Name, req.Preset, len(plan.Tables))
	utils.RespondJSON(c, http.StatusCreated, "Floor plan created successfully", plan)
}

// AddTable -> add a table to a plan; size is defaulted from the shape
func (fc *FloorPlanController) AddTable(c *gin.Context) {
	planID := c.Param("plan_id")
	var plan models.FloorPlan
	if err := fc.DB.First(&plan, planID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		TableNumber string              `json:"table_number" binding:"required"`
		X           float64             `json:"x"`
		Y           float64             `json:"y"`
		Shape       models.TableShape   `json:"shape"`
		Capacity    int                 `json:"capacity"`
		Section     models.TableSection `json:"section"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Shape == "" {
		req.Shape = models.ShapeRectangle
	}
	if req.Capacity <= 0 {
		req.Capacity = 4
	}
	if req.Section == "" {
		req.Section = models.SectionDining
	}
	w, h := req.Shape.DefaultSize()

	table := models.Table{
		FloorPlanID: plan.ID,
		TableNumber: req.TableNumber,
		PosX:        req.X,
		PosY:        req.Y,
		Width:       w,
		Height:      h,
		Shape:       req.Shape,
		Capacity:    req.Capacity,
		Section:     req.Section,
		Status:      models.StatusAvailable,
	}
	if err := fc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastTableCreate(table)
	utils.InfoLogger.Printf("Table %s added to plan %d", table.TableNumber, plan.ID)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTable -> partial update of any subset of table fields
func (fc *FloorPlanController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")
	var table models.Table
	if err := fc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		TableNumber    *string              `json:"table_number"`
		X              *float64             `json:"x"`
		Y              *float64             `json:"y"`
		Width          *float64             `json:"width"`
		Height         *float64             `json:"height"`
		Shape          *models.TableShape   `json:"shape"`
		Capacity       *int                 `json:"capacity"`
		Section        *models.TableSection `json:"section"`
		Status         *models.TableStatus  `json:"status"`
		Accessible     *bool                `json:"accessible"`
		AssignedServer *string              `json:"assigned_server"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	updates := map[string]interface{}{}
	if req.TableNumber != nil {
		updates["table_number"] = *req.TableNumber
	}
	if req.X != nil {
		updates["pos_x"] = *req.X
	}
	if req.Y != nil {
		updates["pos_y"] = *req.Y
	}
	if req.Width != nil {
		updates["width"] = *req.Width
	}
	if req.Height != nil {
		updates["height"] = *req.Height
	}
	if req.Shape != nil {
		updates["shape"] = *req.Shape
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Section != nil {
		updates["section"] = *req.Section
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Accessible != nil {
		updates["accessible"] = *req.Accessible
	}
	if req.AssignedServer != nil {
		updates["assigned_server"] = *req.AssignedServer
	}
	if len(updates) == 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("no fields to update"))
		return
	}

	if err := fc.DB.Model(&table).Updates(updates).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := fc.DB.First(&table, table.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastTableUpdate(table)
	utils.InfoLogger.Printf("Table %d updated (%d field(s))", table.ID, len(updates))
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// BatchUpdatePositions -> apply one batch of dragged positions in a single
// transaction; whichever batch lands last wins
func (fc *FloorPlanController) BatchUpdatePositions(c *gin.Context) {
	planID := c.Param("plan_id")
	var plan models.FloorPlan
	if err := fc.DB.First(&plan, planID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Updates []struct {
			TableID uint    `json:"table_id" binding:"required"`
			X       float64 `json:"x"`
			Y       float64 `json:"y"`
		} `json:"updates" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := fc.DB.Transaction(func(tx *gorm.DB) error {
		for _, u := range req.Updates {
			res := tx.Model(&models.Table{}).
				Where("id = ? AND floor_plan_id = ?", u.TableID, plan.ID).
				Updates(map[string]interface{}{"pos_x": u.X, "pos_y": u.Y})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("table %d not on plan %d", u.TableID, plan.ID)
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hub.BroadcastPositionsUpdate(plan.ID, len(req.Updates))
	utils.InfoLogger.Printf("Plan %d: %d position(s) saved", plan.ID, len(req.Updates))
	utils.RespondJSON(c, http.StatusOK, "Positions updated", gin.H{
		"plan_id": plan.ID,
		"count":   len(req.Updates),
	})
}

// DeleteTable -> remove a table by id
func (fc *FloorPlanController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")
	var table models.Table
	if err := fc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := fc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastTableDelete(table.ID)
	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{
		"id": table.ID,
	})
}
