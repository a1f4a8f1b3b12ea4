package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/openfloor/planboard/config"
	"github.com/openfloor/planboard/models"
	"github.com/openfloor/planboard/router"
	"github.com/openfloor/planboard/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seedDefaultPlan(db)

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.FloorPlan{},
		&models.Table{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seedDefaultPlan makes sure a fresh database starts with one usable layout.
func seedDefaultPlan(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.FloorPlan{}).Count(&count).Error; err != nil {
		utils.ErrorLogger.Printf("Error counting floor plans: %v", err)
		return
	}
	if count > 0 {
		return
	}
	plan := models.NewPresetPlan("Main Floor", models.PresetMedium)
	if err := db.Create(&plan).Error; err != nil {
		utils.ErrorLogger.Printf("Error seeding default plan: %v", err)
		return
	}
	utils.InfoLogger.Printf("Seeded default plan %q with %d tables", plan.Name, len(plan.Tables))
}
