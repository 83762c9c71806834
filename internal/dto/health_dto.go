// FILE: internal/dto/health_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Blood Pressure ---

type CreateBloodPressureRequest struct {
	Systolic   int       `json:"systolic" validate:"required,min=40,max=300"`
	Diastolic  int       `json:"diastolic" validate:"required,min=20,max=200"`
	Pulse      *int      `json:"pulse,omitempty" validate:"omitempty,min=20,max=250"`
	MeasuredAt time.Time `json:"measured_at" validate:"required"`
	Notes      *string   `json:"notes,omitempty"`
}

type UpdateBloodPressureRequest struct {
	Systolic   *int       `json:"systolic,omitempty" validate:"omitempty,min=40,max=300"`
	Diastolic  *int       `json:"diastolic,omitempty" validate:"omitempty,min=20,max=200"`
	Pulse      *int       `json:"pulse,omitempty" validate:"omitempty,min=20,max=250"`
	MeasuredAt *time.Time `json:"measured_at,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

type BloodPressureResponse struct {
	Id         uuid.UUID `json:"id"`
	Systolic   int       `json:"systolic"`
	Diastolic  int       `json:"diastolic"`
	Pulse      *int      `json:"pulse,omitempty"`
	MeasuredAt time.Time `json:"measured_at"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// --- Lipid Panel ---

type CreateLipidPanelRequest struct {
	TotalCholesterol int       `json:"total_cholesterol" validate:"required,min=50,max=1000"`
	Ldl              int       `json:"ldl" validate:"required,min=10,max=600"`
	Hdl              int       `json:"hdl" validate:"required,min=5,max=200"`
	Triglycerides    int       `json:"triglycerides" validate:"required,min=10,max=3000"`
	MeasuredAt       time.Time `json:"measured_at" validate:"required"`
	Notes            *string   `json:"notes,omitempty"`
}

type UpdateLipidPanelRequest struct {
	TotalCholesterol *int       `json:"total_cholesterol,omitempty" validate:"omitempty,min=50,max=1000"`
	Ldl              *int       `json:"ldl,omitempty" validate:"omitempty,min=10,max=600"`
	Hdl              *int       `json:"hdl,omitempty" validate:"omitempty,min=5,max=200"`
	Triglycerides    *int       `json:"triglycerides,omitempty" validate:"omitempty,min=10,max=3000"`
	MeasuredAt       *time.Time `json:"measured_at,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
}

type LipidPanelResponse struct {
	Id               uuid.UUID `json:"id"`
	TotalCholesterol int       `json:"total_cholesterol"`
	Ldl              int       `json:"ldl"`
	Hdl              int       `json:"hdl"`
	Triglycerides    int       `json:"triglycerides"`
	MeasuredAt       time.Time `json:"measured_at"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// --- Nutrition Diary ---

type CreateNutritionEntryRequest struct {
	MealType          string    `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	Description       string    `json:"description" validate:"required,min=2"`
	Calories          *int      `json:"calories,omitempty" validate:"omitempty,min=0,max=10000"`
	FatGrams          *float64  `json:"fat_grams,omitempty" validate:"omitempty,min=0"`
	SaturatedFatGrams *float64  `json:"saturated_fat_grams,omitempty" validate:"omitempty,min=0"`
	ConsumedAt        time.Time `json:"consumed_at" validate:"required"`
}

type UpdateNutritionEntryRequest struct {
	MealType          *string    `json:"meal_type,omitempty" validate:"omitempty,oneof=breakfast lunch dinner snack"`
	Description       *string    `json:"description,omitempty" validate:"omitempty,min=2"`
	Calories          *int       `json:"calories,omitempty" validate:"omitempty,min=0,max=10000"`
	FatGrams          *float64   `json:"fat_grams,omitempty" validate:"omitempty,min=0"`
	SaturatedFatGrams *float64   `json:"saturated_fat_grams,omitempty" validate:"omitempty,min=0"`
	ConsumedAt        *time.Time `json:"consumed_at,omitempty"`
}

type NutritionEntryResponse struct {
	Id                uuid.UUID `json:"id"`
	MealType          string    `json:"meal_type"`
	Description       string    `json:"description"`
	Calories          *int      `json:"calories,omitempty"`
	FatGrams          *float64  `json:"fat_grams,omitempty"`
	SaturatedFatGrams *float64  `json:"saturated_fat_grams,omitempty"`
	ConsumedAt        time.Time `json:"consumed_at"`
	CreatedAt         time.Time `json:"created_at"`
}

// --- Shared list query ---

type HealthListQuery struct {
	From   *time.Time `query:"from"`
	To     *time.Time `query:"to"`
	Limit  int        `query:"limit"`
	Offset int        `query:"offset"`
}
