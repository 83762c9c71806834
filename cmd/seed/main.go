package main

import (
	"log"
	"os"
	"time"

	"cholestofit-be/internal/model"
	"cholestofit-be/pkg/billing"
	"cholestofit-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a demo account with a realistic health log for local development.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	email := "demo@cholestofit.dev"

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Demo user %s already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: bcrypt failed:", err)
	}
	hashStr := string(hash)

	user := model.User{
		Id:           uuid.New(),
		Email:        email,
		FullName:     "Demo Patient",
		PasswordHash: &hashStr,
		Role:         "user",
		Status:       "active",
		Plan:         billing.FreePlanCode,
		BalanceCents: 2500,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Error: failed to create demo user:", err)
	}

	now := time.Now()
	pulse := 72
	notes := "fasting sample"

	readings := []model.BloodPressureRecord{
		{Id: uuid.New(), UserId: user.Id, Systolic: 128, Diastolic: 82, Pulse: &pulse, MeasuredAt: now.AddDate(0, 0, -2)},
		{Id: uuid.New(), UserId: user.Id, Systolic: 124, Diastolic: 79, MeasuredAt: now.AddDate(0, 0, -1)},
	}
	for i := range readings {
		if err := db.Create(&readings[i]).Error; err != nil {
			log.Fatal("Error: failed to seed blood pressure:", err)
		}
	}

	panel := model.LipidPanel{
		Id: uuid.New(), UserId: user.Id,
		TotalCholesterol: 212, Ldl: 138, Hdl: 48, Triglycerides: 160,
		MeasuredAt: now.AddDate(0, 0, -10), Notes: &notes,
	}
	if err := db.Create(&panel).Error; err != nil {
		log.Fatal("Error: failed to seed lipid panel:", err)
	}

	calories := 540
	satFat := 7.5
	entry := model.NutritionEntry{
		Id: uuid.New(), UserId: user.Id,
		MealType: "lunch", Description: "Grilled salmon with rice and salad",
		Calories: &calories, SaturatedFatGrams: &satFat,
		ConsumedAt: now.Add(-6 * time.Hour),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Fatal("Error: failed to seed nutrition entry:", err)
	}

	log.Printf("✅ Seeded demo user %s (password: demo-password)", email)
}
