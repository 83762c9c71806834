// FILE: internal/entity/health_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// BloodPressureRecord is a single blood pressure reading in mmHg.
type BloodPressureRecord struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Systolic   int
	Diastolic  int
	Pulse      *int
	MeasuredAt time.Time
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LipidPanel holds lab results in mg/dL.
type LipidPanel struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	TotalCholesterol int
	Ldl              int
	Hdl              int
	Triglycerides    int
	MeasuredAt       time.Time
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NutritionEntry is one food diary line.
type NutritionEntry struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	MealType          MealType
	Description       string
	Calories          *int
	FatGrams          *float64
	SaturatedFatGrams *float64
	ConsumedAt        time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
