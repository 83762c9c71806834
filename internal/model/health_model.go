package model

import (
	"time"

	"github.com/google/uuid"
)

type BloodPressureRecord struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Systolic   int       `gorm:"not null"`
	Diastolic  int       `gorm:"not null"`
	Pulse      *int
	MeasuredAt time.Time `gorm:"not null;index"`
	Notes      *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (BloodPressureRecord) TableName() string {
	return "blood_pressure_records"
}

type LipidPanel struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;index"`
	TotalCholesterol int       `gorm:"not null"`
	Ldl              int       `gorm:"not null"`
	Hdl              int       `gorm:"not null"`
	Triglycerides    int       `gorm:"not null"`
	MeasuredAt       time.Time `gorm:"not null;index"`
	Notes            *string   `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (LipidPanel) TableName() string {
	return "lipid_panels"
}

type NutritionEntry struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID `gorm:"type:uuid;not null;index"`
	MealType          string    `gorm:"type:varchar(20);not null"`
	Description       string    `gorm:"type:text;not null"`
	Calories          *int
	FatGrams          *float64
	SaturatedFatGrams *float64
	ConsumedAt        time.Time `gorm:"not null;index"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (NutritionEntry) TableName() string {
	return "nutrition_entries"
}
