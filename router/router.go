package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openfloor/planboard/controllers"
	"github.com/openfloor/planboard/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// per-IP ceiling (50 requests per second per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	planCtrl := controllers.NewFloorPlanController(db)

	// ----------------------------------------------------------------
	//                      HEALTH / REALTIME
	// ----------------------------------------------------------------
	// Health is what editor sessions probe once at start to pick live vs
	// demo mode, so it also checks the database.
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ws", controllers.LayoutStreamHandler)

	// ----------------------------------------------------------------
	//                      FLOOR PLAN ROUTES
	// ----------------------------------------------------------------
	r.GET("/floor-plans", planCtrl.GetAllFloorPlans)
	r.GET("/floor-plans/:plan_id", planCtrl.GetFloorPlanByID)
	r.PATCH("/floor-plans/:plan_id/positions", planCtrl.BatchUpdatePositions)
	r.PATCH("/tables/:table_id", planCtrl.UpdateTable)

	// Structural mutations fan out reloads to every client, so they get a
	// tighter limiter.
	structural := r.Group("/")
	structural.Use(middlewares.NewStructuralRateLimiter())
	{
		structural.POST("/floor-plans", planCtrl.CreateFloorPlan)
		structural.POST("/floor-plans/:plan_id/tables", planCtrl.AddTable)
		structural.DELETE("/tables/:table_id", planCtrl.DeleteTable)
	}

	return r
}
